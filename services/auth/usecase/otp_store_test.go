package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/docshare/internal/pkg/apperror"
	jwtpkg "github.com/piresc/docshare/internal/pkg/jwt"
	"github.com/piresc/docshare/internal/pkg/lockout"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/pkg/otp"
	"github.com/piresc/docshare/internal/pkg/session"
	"github.com/piresc/docshare/internal/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeFixture runs the usecase against the memory store and the real TOTP engine,
// with one clock shared by the engine and the guard
type storeFixture struct {
	uc     *AuthUC
	store  *store.Memory
	engine *otp.TOTPEngine
	mu     sync.Mutex
	now    time.Time
}

func newStoreFixture(t *testing.T) *storeFixture {
	t.Helper()
	f := &storeFixture{store: store.NewMemory(), now: testNow}
	clock := f.clock

	f.engine = otp.NewTOTPEngine(models.OTPConfig{Issuer: "DocShare", Skew: 1}).WithClock(clock)
	guard := lockout.NewGuard(models.LockoutConfig{MaxAttempts: 5, Window: 15 * time.Minute}).WithClock(clock)
	sessions := session.NewSessionManager(f.store, jwtpkg.NewSigner(models.JWTConfig{Secret: "test-secret"}),
		models.SessionConfig{TTL: time.Hour})
	f.uc = NewAuthUC(f.store, f.engine, sessions, guard)
	return f
}

func (f *storeFixture) clock() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *storeFixture) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func (f *storeFixture) addUser(t *testing.T, mobile string) *models.User {
	t.Helper()
	u := &models.User{ID: uuid.NewString(), MobileNumber: mobile, IsVerified: true, CreatedAt: testNow, UpdatedAt: testNow}
	require.NoError(t, f.store.CreateUser(context.Background(), u))
	return u
}

func (f *storeFixture) code(t *testing.T, secret string) string {
	t.Helper()
	code, err := f.engine.CurrentCode(secret, f.clock())
	require.NoError(t, err)
	return code
}

// wrongCode returns a code rejected at the current time under skew 1
func (f *storeFixture) wrongCode(t *testing.T, secret string) string {
	t.Helper()
	valid := map[string]bool{}
	for _, offset := range []time.Duration{-30 * time.Second, 0, 30 * time.Second} {
		code, err := f.engine.CurrentCode(secret, f.clock().Add(offset))
		require.NoError(t, err)
		valid[code] = true
	}
	for i := 0; ; i++ {
		if candidate := fmt.Sprintf("%06d", i); !valid[candidate] {
			return candidate
		}
	}
}

func TestVerifyOTP_UnlocksAfterWindow(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()
	u := f.addUser(t, testMobile)

	ch, err := f.uc.RequestOTP(ctx, testMobile)
	require.NoError(t, err)
	require.NotEmpty(t, ch.Secret)
	wrong := f.wrongCode(t, ch.Secret)

	for i := 0; i < 5; i++ {
		f.advance(10 * time.Second)
		_, err := f.uc.VerifyOTP(ctx, testMobile, wrong)
		require.True(t, apperror.Is(err, apperror.KindInvalidCredential), "attempt %d: %v", i+1, err)
	}

	_, err = f.uc.VerifyOTP(ctx, testMobile, f.code(t, ch.Secret))
	require.True(t, apperror.Is(err, apperror.KindLocked), "got %v", err)
	assert.Equal(t, 15*time.Minute, apperror.RetryAfter(err))

	f.advance(15 * time.Minute)

	resp, err := f.uc.VerifyOTP(ctx, testMobile, f.code(t, ch.Secret))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)

	stored, err := f.store.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.LoginAttempts)
	assert.True(t, stored.TOTPEnabled)
	require.NotNil(t, stored.LastLogin)
	assert.True(t, stored.LastLogin.Equal(f.clock()))
}

func TestVerifyOTP_StillLockedInsideWindow(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()
	f.addUser(t, testMobile)

	ch, err := f.uc.RequestOTP(ctx, testMobile)
	require.NoError(t, err)
	wrong := f.wrongCode(t, ch.Secret)
	for i := 0; i < 5; i++ {
		_, _ = f.uc.VerifyOTP(ctx, testMobile, wrong)
	}

	f.advance(15*time.Minute - time.Second)
	_, err = f.uc.VerifyOTP(ctx, testMobile, f.code(t, ch.Secret))
	assert.True(t, apperror.Is(err, apperror.KindLocked))
	assert.Equal(t, time.Second, apperror.RetryAfter(err))
}

func TestRequestOTP_ConcurrentFirstRequestsShareSecret(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()
	u := f.addUser(t, testMobile)

	const callers = 8
	secrets := make([]string, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ch, err := f.uc.RequestOTP(ctx, testMobile)
			errs[i] = err
			if err == nil {
				secrets[i] = ch.Secret
			}
		}(i)
	}
	wg.Wait()

	stored, err := f.store.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, stored.Secret(), secrets[i], "caller %d", i)
	}

	_, err = f.uc.VerifyOTP(ctx, testMobile, f.code(t, stored.Secret()))
	assert.NoError(t, err)
}
