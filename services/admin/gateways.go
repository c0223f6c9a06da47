package admin

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/docshare/services/admin AdminGW

// AdminGW notifies users about changes an admin made
type AdminGW interface {
	SendWelcome(ctx context.Context, mobile string) error
}
