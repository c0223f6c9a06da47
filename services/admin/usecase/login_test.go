package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/constants"
	"github.com/piresc/docshare/internal/pkg/models"
	sessionmocks "github.com/piresc/docshare/internal/pkg/session/mocks"
	"github.com/piresc/docshare/services/admin/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *AdminUC
	repo     *mocks.MockAdminRepo
	gateway  *mocks.MockAdminGW
	sessions *sessionmocks.MockManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:     mocks.NewMockAdminRepo(ctrl),
		gateway:  mocks.NewMockAdminGW(ctrl),
		sessions: sessionmocks.NewMockManager(ctrl),
	}
	f.uc = NewAdminUC(f.repo, f.gateway, f.sessions)
	f.uc.now = func() time.Time { return testNow }
	return f
}

func testAdmin(t *testing.T, password string) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Admin{ID: "a1", Username: "admin", PasswordHash: string(hash)}
}

func TestLogin_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	expires := testNow.Add(24 * time.Hour)

	f.repo.EXPECT().GetAdminByUsername(ctx, "admin").Return(testAdmin(t, "admin123"), nil)
	f.sessions.EXPECT().Create(ctx, "a1", models.PrincipalAdmin).
		Return(&models.IssuedToken{Token: "tok", ExpiresAt: expires}, nil)

	resp, err := f.uc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, expires, resp.ExpiresAt)
	assert.Equal(t, &models.AdminPrincipal{ID: "a1", Username: "admin"}, resp.Principal)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Run("bad password", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetAdminByUsername(gomock.Any(), "admin").Return(testAdmin(t, "admin123"), nil)

		_, err := f.uc.Login(context.Background(), "admin", "wrong-password")
		require.Error(t, err)
		assert.Equal(t, apperror.KindInvalidCredential, apperror.KindOf(err))
		assert.Equal(t, constants.MsgInvalidCredentials, apperror.PublicMessage(err))
	})

	t.Run("unknown username gets the same answer", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetAdminByUsername(gomock.Any(), "ghost").
			Return(nil, apperror.New(apperror.KindNotFound, "admin not found"))

		_, err := f.uc.Login(context.Background(), "ghost", "whatever")
		require.Error(t, err)
		assert.Equal(t, apperror.KindInvalidCredential, apperror.KindOf(err))
		assert.Equal(t, constants.MsgInvalidCredentials, apperror.PublicMessage(err))
	})

	t.Run("store failure is not a credential error", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetAdminByUsername(gomock.Any(), "admin").
			Return(nil, apperror.Dependency("query admin", context.DeadlineExceeded))

		_, err := f.uc.Login(context.Background(), "admin", "admin123")
		assert.Equal(t, apperror.KindDependencyUnavailable, apperror.KindOf(err))
	})
}

func TestLogoutAndProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.sessions.EXPECT().Invalidate(ctx, models.PrincipalAdmin, "a1", "sid").Return(nil)
	require.NoError(t, f.uc.Logout(ctx, "a1", "sid"))

	f.repo.EXPECT().GetAdminByID(ctx, "a1").Return(&models.Admin{ID: "a1", Username: "admin"}, nil)
	account, err := f.uc.GetProfile(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "admin", account.Username)

	f.repo.EXPECT().GetAdminByID(ctx, "gone").Return(nil, apperror.New(apperror.KindNotFound, "admin not found"))
	_, err = f.uc.GetProfile(ctx, "gone")
	assert.Equal(t, "Admin not found", apperror.PublicMessage(err))
}
