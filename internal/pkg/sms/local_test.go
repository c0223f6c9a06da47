package sms

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		assert.Regexp(t, `^\d{6}$`, code)
	}
}

func TestLocalChannel_RoundTrip(t *testing.T) {
	mr, client := setupMiniredis(t)
	ch := NewLocalChannel(client, 10*time.Minute, false)
	ctx := context.Background()
	mobile := "+15551234567"

	_, err := ch.StartVerification(ctx, mobile)
	require.NoError(t, err)

	code, err := mr.Get(constants.OTPCodeKey(mobile))
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, mr.TTL(constants.OTPCodeKey(mobile)))

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	status, err := ch.CheckVerification(ctx, mobile, wrong)
	require.NoError(t, err)
	assert.Equal(t, StatusDenied, status)

	status, err = ch.CheckVerification(ctx, mobile, code)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, status)

	// consumed
	status, err = ch.CheckVerification(ctx, mobile, code)
	require.NoError(t, err)
	assert.Equal(t, StatusDenied, status)
}

func TestLocalChannel_ExpiredCode(t *testing.T) {
	mr, client := setupMiniredis(t)
	ch := NewLocalChannel(client, time.Minute, false)
	ctx := context.Background()

	_, err := ch.StartVerification(ctx, "+15551234567")
	require.NoError(t, err)
	code, _ := mr.Get(constants.OTPCodeKey("+15551234567"))

	mr.FastForward(2 * time.Minute)

	status, err := ch.CheckVerification(ctx, "+15551234567", code)
	require.NoError(t, err)
	assert.Equal(t, StatusDenied, status)
}

func TestLocalChannel_RedisDown(t *testing.T) {
	mr, client := setupMiniredis(t)
	ch := NewLocalChannel(client, time.Minute, false)
	mr.Close()

	_, err := ch.StartVerification(context.Background(), "+15551234567")
	assert.True(t, apperror.Is(err, apperror.KindDependencyUnavailable))

	_, err = ch.CheckVerification(context.Background(), "+15551234567", "123456")
	assert.True(t, apperror.Is(err, apperror.KindDependencyUnavailable))
}

func TestDisabled(t *testing.T) {
	var ch Channel = Disabled{}

	assert.False(t, ch.Configured())
	_, err := ch.Send(context.Background(), "+15551234567", "hi")
	assert.True(t, apperror.Is(err, apperror.KindDependencyUnavailable))
}
