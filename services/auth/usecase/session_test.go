package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogout(t *testing.T) {
	f := newFixture(t)
	f.sessions.EXPECT().Invalidate(gomock.Any(), models.PrincipalUser, "u1", "sid").Return(nil)
	assert.NoError(t, f.uc.Logout(context.Background(), "u1", "sid"))
}

func TestRefresh(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetUserByID(gomock.Any(), "u1").Return(verifiedUser(), nil)
	f.sessions.EXPECT().Refresh(gomock.Any(), &models.SessionClaims{
		PrincipalID:   "u1",
		SessionID:     "old",
		PrincipalType: models.PrincipalUser,
	}).Return(&models.IssuedToken{Token: "new-token", SessionID: "new"}, nil)

	resp, err := f.uc.Refresh(context.Background(), "u1", "old")
	require.NoError(t, err)
	assert.Equal(t, "new-token", resp.Token)
	assert.Equal(t, msgSessionRefreshed, resp.Message)
}

func TestRefresh_InvalidSession(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetUserByID(gomock.Any(), "u1").Return(verifiedUser(), nil)
	f.sessions.EXPECT().Refresh(gomock.Any(), gomock.Any()).Return(nil, session.ErrInvalid)

	_, err := f.uc.Refresh(context.Background(), "u1", "old")
	assert.Equal(t, apperror.KindSessionInvalid, apperror.KindOf(err))
}

func TestGetProfile(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetUserByID(gomock.Any(), "u1").Return(verifiedUser(), nil)
	f.repo.EXPECT().GetUserByID(gomock.Any(), "gone").Return(nil, apperror.New(apperror.KindNotFound, "user not found"))

	u, err := f.uc.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, testMobile, u.MobileNumber)

	_, err = f.uc.GetProfile(context.Background(), "gone")
	assert.Equal(t, "User not found", apperror.PublicMessage(err))
}
