package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/constants"
	"github.com/piresc/docshare/internal/pkg/lockout"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/pkg/otp"
	otpmocks "github.com/piresc/docshare/internal/pkg/otp/mocks"
	sessionmocks "github.com/piresc/docshare/internal/pkg/session/mocks"
	"github.com/piresc/docshare/services/auth/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMobile = "+15551234567"

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *AuthUC
	repo     *mocks.MockAuthRepo
	engine   *otpmocks.MockEngine
	sessions *sessionmocks.MockManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:     mocks.NewMockAuthRepo(ctrl),
		engine:   otpmocks.NewMockEngine(ctrl),
		sessions: sessionmocks.NewMockManager(ctrl),
	}
	guard := lockout.NewGuard(models.LockoutConfig{MaxAttempts: 5, Window: 15 * time.Minute}).
		WithClock(func() time.Time { return testNow })
	f.uc = NewAuthUC(f.repo, f.engine, f.sessions, guard)
	return f
}

func verifiedUser() *models.User {
	return &models.User{ID: "u1", MobileNumber: testMobile, IsVerified: true}
}

func TestRequestOTP_Rejections(t *testing.T) {
	recent := testNow.Add(-time.Minute)

	tests := []struct {
		name     string
		mobile   string
		setup    func(f *fixture)
		wantKind apperror.Kind
		wantMsg  string
	}{
		{
			name:     "invalid format",
			mobile:   "5551234567",
			wantKind: apperror.KindInvalidInput,
			wantMsg:  constants.MsgInvalidMobile,
		},
		{
			name:   "unknown number",
			mobile: testMobile,
			setup: func(f *fixture) {
				f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).
					Return(nil, apperror.New(apperror.KindNotFound, "user not found"))
			},
			wantKind: apperror.KindNotFound,
			wantMsg:  constants.MsgInvalidMobileOrOTP,
		},
		{
			name:   "unverified user",
			mobile: testMobile,
			setup: func(f *fixture) {
				f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).
					Return(&models.User{ID: "u1", MobileNumber: testMobile}, nil)
			},
			wantKind: apperror.KindNotFound,
			wantMsg:  constants.MsgInvalidMobileOrOTP,
		},
		{
			name:   "locked user",
			mobile: testMobile,
			setup: func(f *fixture) {
				u := verifiedUser()
				u.LoginAttempts = 5
				u.LastAttemptAt = &recent
				f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(u, nil)
			},
			wantKind: apperror.KindLocked,
			wantMsg:  constants.MsgAccountLocked,
		},
		{
			name:   "store unavailable",
			mobile: testMobile,
			setup: func(f *fixture) {
				f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).
					Return(nil, apperror.Dependency("users", context.DeadlineExceeded))
			},
			wantKind: apperror.KindDependencyUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			_, err := f.uc.RequestOTP(context.Background(), tt.mobile)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, apperror.PublicMessage(err))
			}
		})
	}
}

func TestRequestOTP_LockedCarriesRetryAfter(t *testing.T) {
	f := newFixture(t)
	last := testNow.Add(-5 * time.Minute)
	u := verifiedUser()
	u.LoginAttempts = 5
	u.LastAttemptAt = &last
	f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(u, nil)

	_, err := f.uc.RequestOTP(context.Background(), testMobile)
	assert.Equal(t, 10*time.Minute, apperror.RetryAfter(err))
}

func TestRequestOTP_NewSecretIsPersisted(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(verifiedUser(), nil)
	f.engine.EXPECT().Request(gomock.Any(), gomock.Any()).Return(&otp.Challenge{
		Method:     otp.MethodTOTP,
		NewSecret:  true,
		Secret:     "JBSWY3DPEHPK3PXP",
		OTPAuthURL: "otpauth://totp/DocShare:+15551234567?secret=JBSWY3DPEHPK3PXP",
		QRCode:     "data:image/png;base64,AAAA",
	}, nil)
	f.repo.EXPECT().SetTOTPSecret(gomock.Any(), "u1", "JBSWY3DPEHPK3PXP").Return(nil)

	ch, err := f.uc.RequestOTP(context.Background(), "+1 (555) 123-4567")
	require.NoError(t, err)
	assert.Equal(t, "totp", ch.Method)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", ch.Secret)
	assert.NotEmpty(t, ch.QRCode)
	assert.Equal(t, msgTOTPEnrollment, ch.Message)
}

func TestRequestOTP_ConcurrentSecretIsReissued(t *testing.T) {
	f := newFixture(t)
	stored := verifiedUser()
	secret := "KRSXG5CTMVRXEZLU"
	stored.TOTPSecret = &secret

	gomock.InOrder(
		f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(verifiedUser(), nil),
		f.engine.EXPECT().Request(gomock.Any(), gomock.Any()).
			Return(&otp.Challenge{Method: otp.MethodTOTP, NewSecret: true, Secret: "JBSWY3DPEHPK3PXP"}, nil),
		f.repo.EXPECT().SetTOTPSecret(gomock.Any(), "u1", "JBSWY3DPEHPK3PXP").
			Return(apperror.New(apperror.KindConflict, "totp secret already issued")),
		f.repo.EXPECT().GetUserByID(gomock.Any(), "u1").Return(stored, nil),
		f.engine.EXPECT().Request(gomock.Any(), stored).
			Return(&otp.Challenge{Method: otp.MethodTOTP, Secret: secret}, nil),
	)

	ch, err := f.uc.RequestOTP(context.Background(), testMobile)
	require.NoError(t, err)
	assert.Equal(t, secret, ch.Secret)
}

func TestRequestOTP_AlreadyEnabled(t *testing.T) {
	f := newFixture(t)
	u := verifiedUser()
	u.TOTPEnabled = true
	f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(u, nil)
	f.engine.EXPECT().Request(gomock.Any(), u).Return(&otp.Challenge{Method: otp.MethodTOTP, AlreadyEnabled: true}, nil)

	ch, err := f.uc.RequestOTP(context.Background(), testMobile)
	require.NoError(t, err)
	assert.True(t, ch.AlreadyEnabled)
	assert.Empty(t, ch.Secret)
	assert.Empty(t, ch.QRCode)
	assert.Equal(t, msgTOTPEnabled, ch.Message)
}

func TestRequestOTP_ProviderSent(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(verifiedUser(), nil)
	f.engine.EXPECT().Request(gomock.Any(), gomock.Any()).Return(&otp.Challenge{Method: otp.MethodSMS, Sent: true}, nil)

	ch, err := f.uc.RequestOTP(context.Background(), testMobile)
	require.NoError(t, err)
	assert.Equal(t, "sms", ch.Method)
	assert.Equal(t, msgOTPSent, ch.Message)
}

func TestRequestOTP_StaleCounterIsResetFirst(t *testing.T) {
	f := newFixture(t)
	old := testNow.Add(-16 * time.Minute)
	u := verifiedUser()
	u.LoginAttempts = 5
	u.LastAttemptAt = &old

	gomock.InOrder(
		f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(u, nil),
		f.repo.EXPECT().ResetLoginAttempts(gomock.Any(), "u1").Return(nil),
		f.engine.EXPECT().Request(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, got *models.User) (*otp.Challenge, error) {
				assert.Zero(t, got.LoginAttempts)
				return &otp.Challenge{Method: otp.MethodSMS, Sent: true}, nil
			}),
	)

	_, err := f.uc.RequestOTP(context.Background(), testMobile)
	require.NoError(t, err)
}

func TestVerifyOTP_Success(t *testing.T) {
	f := newFixture(t)
	u := verifiedUser()
	secret := "JBSWY3DPEHPK3PXP"
	u.TOTPSecret = &secret
	expires := testNow.Add(24 * time.Hour)

	f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(u, nil)
	f.engine.EXPECT().Check(gomock.Any(), u, "123456").Return(true, nil)
	f.repo.EXPECT().RecordLoginSuccess(gomock.Any(), "u1", testNow).Return(nil)
	f.engine.EXPECT().Strategy().Return(models.StrategyTOTP)
	f.repo.EXPECT().EnableTOTP(gomock.Any(), "u1").Return(nil)
	f.sessions.EXPECT().Create(gomock.Any(), "u1", models.PrincipalUser).
		Return(&models.IssuedToken{Token: "tok", SessionID: "sid", ExpiresAt: expires}, nil)

	resp, err := f.uc.VerifyOTP(context.Background(), testMobile, "123456")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, expires, resp.ExpiresAt)
	assert.Equal(t, "u1", resp.Principal.PrincipalID())
	assert.Equal(t, models.PrincipalUser, resp.Principal.PrincipalType())
}

func TestVerifyOTP_ProviderSkipsEnable(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(verifiedUser(), nil)
	f.engine.EXPECT().Check(gomock.Any(), gomock.Any(), "654321").Return(true, nil)
	f.repo.EXPECT().RecordLoginSuccess(gomock.Any(), "u1", testNow).Return(nil)
	f.engine.EXPECT().Strategy().Return(models.StrategyProvider)
	f.sessions.EXPECT().Create(gomock.Any(), "u1", models.PrincipalUser).
		Return(&models.IssuedToken{Token: "tok"}, nil)

	_, err := f.uc.VerifyOTP(context.Background(), testMobile, "654321")
	require.NoError(t, err)
}

func TestVerifyOTP_WrongCodeIncrements(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(verifiedUser(), nil)
	f.engine.EXPECT().Check(gomock.Any(), gomock.Any(), "000000").Return(false, nil)
	f.repo.EXPECT().IncrementLoginAttempts(gomock.Any(), "u1", testNow).Return(1, nil)

	_, err := f.uc.VerifyOTP(context.Background(), testMobile, "000000")
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidCredential, apperror.KindOf(err))
	assert.Equal(t, constants.MsgInvalidMobileOrOTP, apperror.PublicMessage(err))
}

func TestVerifyOTP_IncrementFailureStillRejects(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(verifiedUser(), nil)
	f.engine.EXPECT().Check(gomock.Any(), gomock.Any(), "000000").Return(false, nil)
	f.repo.EXPECT().IncrementLoginAttempts(gomock.Any(), "u1", testNow).
		Return(0, apperror.Dependency("users", errors.New("write timeout")))

	_, err := f.uc.VerifyOTP(context.Background(), testMobile, "000000")
	assert.Equal(t, apperror.KindInvalidCredential, apperror.KindOf(err))
}

func TestVerifyOTP_LockedNeverChecksCode(t *testing.T) {
	f := newFixture(t)
	last := testNow.Add(-30 * time.Second)
	u := verifiedUser()
	u.LoginAttempts = 5
	u.LastAttemptAt = &last
	f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(u, nil)
	// no Check expectation: the mock fails the test if the engine is consulted

	_, err := f.uc.VerifyOTP(context.Background(), testMobile, "123456")
	assert.Equal(t, apperror.KindLocked, apperror.KindOf(err))
}

func TestVerifyOTP_EngineErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind apperror.Kind
	}{
		{"no secret yet", otp.ErrNoSecret, apperror.KindInvalidInput},
		{"provider down", apperror.Dependency("provider", errors.New("503")), apperror.KindDependencyUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(verifiedUser(), nil)
			f.engine.EXPECT().Check(gomock.Any(), gomock.Any(), "123456").Return(false, tt.err)

			_, err := f.uc.VerifyOTP(context.Background(), testMobile, "123456")
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
		})
	}
}

func TestVerifyOTP_SessionFailure(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(verifiedUser(), nil)
	f.engine.EXPECT().Check(gomock.Any(), gomock.Any(), "123456").Return(true, nil)
	f.repo.EXPECT().RecordLoginSuccess(gomock.Any(), "u1", testNow).Return(nil)
	f.engine.EXPECT().Strategy().Return(models.StrategyProvider)
	f.sessions.EXPECT().Create(gomock.Any(), "u1", models.PrincipalUser).
		Return(nil, apperror.Dependency("sessions", errors.New("insert failed")))

	_, err := f.uc.VerifyOTP(context.Background(), testMobile, "123456")
	assert.Equal(t, apperror.KindDependencyUnavailable, apperror.KindOf(err))
}
