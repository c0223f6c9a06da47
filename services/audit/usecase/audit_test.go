package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/pkg/retry"
	"github.com/piresc/docshare/services/audit/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() retry.Config {
	return retry.Config{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2}
}

func TestPersist_FillsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditRepo(ctrl)
	uc := NewAuditUC(repo, fastRetry())

	repo.EXPECT().InsertAuditLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *models.AuditLog) error {
			assert.NotEmpty(t, e.ID)
			assert.False(t, e.CreatedAt.IsZero())
			assert.Equal(t, "anonymous", e.UserType)
			return nil
		})

	require.NoError(t, uc.Persist(context.Background(), &models.AuditLog{Action: "USER_LOGIN"}))
}

func TestPersist_RetriesDependencyFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditRepo(ctrl)
	uc := NewAuditUC(repo, fastRetry())

	down := apperror.Dependency("failed to insert audit log", errors.New("connection refused"))
	gomock.InOrder(
		repo.EXPECT().InsertAuditLog(gomock.Any(), gomock.Any()).Return(down),
		repo.EXPECT().InsertAuditLog(gomock.Any(), gomock.Any()).Return(nil),
	)

	require.NoError(t, uc.Persist(context.Background(), &models.AuditLog{ID: "e1", Action: "USER_LOGIN"}))
}

func TestPersist_GivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditRepo(ctrl)
	uc := NewAuditUC(repo, fastRetry())

	down := apperror.Dependency("failed to insert audit log", errors.New("connection refused"))
	repo.EXPECT().InsertAuditLog(gomock.Any(), gomock.Any()).Return(down).Times(3)

	err := uc.Persist(context.Background(), &models.AuditLog{ID: "e1", Action: "USER_LOGIN"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindDependencyUnavailable, apperror.KindOf(err))
}

func TestPersist_DuplicateIsStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditRepo(ctrl)
	uc := NewAuditUC(repo, fastRetry())

	repo.EXPECT().InsertAuditLog(gomock.Any(), gomock.Any()).
		Return(apperror.New(apperror.KindConflict, "audit log already exists")).Times(1)

	assert.NoError(t, uc.Persist(context.Background(), &models.AuditLog{ID: "e1", Action: "USER_LOGIN"}))
}

func TestPersist_RejectsEmptyAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := NewAuditUC(mocks.NewMockAuditRepo(ctrl), fastRetry())

	err := uc.Persist(context.Background(), &models.AuditLog{})
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(uc.Persist(context.Background(), nil)))
}

func TestRecent_ClampsLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultListLimit},
		{-3, DefaultListLimit},
		{20, 20},
		{1000, MaxListLimit},
	}
	for _, tt := range tests {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAuditRepo(ctrl)
		uc := NewAuditUC(repo, fastRetry())
		repo.EXPECT().ListAuditLogs(gomock.Any(), tt.want).Return(nil, nil)

		logs, err := uc.Recent(context.Background(), tt.in)
		require.NoError(t, err)
		assert.NotNil(t, logs)
	}
}
