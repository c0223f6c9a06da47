package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/sms"
)

const welcomeMessage = "You now have access to DocShare. Sign in with this mobile number to view shared documents."

// SMSGateway sends admin notifications over a delivery channel
type SMSGateway struct {
	channel sms.Channel
}

// NewSMSGateway creates a gateway on top of channel
func NewSMSGateway(channel sms.Channel) *SMSGateway {
	return &SMSGateway{channel: channel}
}

// SendWelcome tells a newly added user they can sign in.
// Nothing is sent when the channel has no provider behind it.
func (g *SMSGateway) SendWelcome(ctx context.Context, mobile string) error {
	if g.channel == nil || !g.channel.Configured() {
		logger.Debug("Welcome SMS skipped, channel not configured", logger.Mobile(mobile))
		return nil
	}

	res, err := g.channel.Send(ctx, mobile, welcomeMessage)
	if err != nil {
		return fmt.Errorf("send welcome sms via %s: %w", g.channel.Name(), err)
	}

	logger.Info("Welcome SMS sent",
		logger.Mobile(mobile),
		logger.String("channel", g.channel.Name()),
		logger.String("provider_id", res.ProviderID))
	return nil
}
