package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(mobile string) *models.User {
	now := time.Now()
	return &models.User{ID: uuid.NewString(), MobileNumber: mobile, IsVerified: true, CreatedAt: now, UpdatedAt: now}
}

func TestMemory_UserUniqueness(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	a := newUser("+15551234567")
	require.NoError(t, m.CreateUser(ctx, a))
	err := m.CreateUser(ctx, newUser("+15551234567"))
	assert.True(t, apperror.Is(err, apperror.KindConflict))

	b := newUser("+15557654321")
	require.NoError(t, m.CreateUser(ctx, b))
	_, err = m.UpdateUserMobile(ctx, b.ID, "+15551234567")
	assert.True(t, apperror.Is(err, apperror.KindConflict))

	updated, err := m.UpdateUserMobile(ctx, b.ID, "+15550001111")
	require.NoError(t, err)
	assert.Equal(t, "+15550001111", updated.MobileNumber)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	u := newUser("+15551234567")
	require.NoError(t, m.CreateUser(ctx, u))

	got, err := m.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	got.LoginAttempts = 99

	again, err := m.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, again.LoginAttempts)
}

func TestMemory_LoginAttempts(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	u := newUser("+15559999999")
	require.NoError(t, m.CreateUser(ctx, u))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.IncrementLoginAttempts(ctx, u.ID, time.Now())
		}()
	}
	wg.Wait()

	got, err := m.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.LoginAttempts)
	require.NotNil(t, got.LastAttemptAt)

	at := time.Now()
	require.NoError(t, m.RecordLoginSuccess(ctx, u.ID, at))
	got, _ = m.GetUserByID(ctx, u.ID)
	assert.Zero(t, got.LoginAttempts)
	assert.Nil(t, got.LastAttemptAt)
	assert.True(t, got.LastLogin.Equal(at))
}

func TestMemory_TOTPLifecycle(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	u := newUser("+15551234567")
	require.NoError(t, m.CreateUser(ctx, u))

	assert.Error(t, m.EnableTOTP(ctx, u.ID))

	require.NoError(t, m.SetTOTPSecret(ctx, u.ID, "JBSWY3DPEHPK3PXP"))
	err := m.SetTOTPSecret(ctx, u.ID, "KRSXG5CTMVRXEZLU")
	assert.True(t, apperror.Is(err, apperror.KindConflict))
	require.NoError(t, m.EnableTOTP(ctx, u.ID))
	got, _ := m.GetUserByID(ctx, u.ID)
	assert.True(t, got.TOTPEnabled)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", got.Secret())

	require.NoError(t, m.ResetTOTP(ctx, u.ID))
	got, _ = m.GetUserByID(ctx, u.ID)
	assert.False(t, got.TOTPEnabled)
	assert.False(t, got.HasSecret())

	require.NoError(t, m.SetTOTPSecret(ctx, u.ID, "KRSXG5CTMVRXEZLU"))
}

func TestMemory_PageBounds(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, m.CreateUser(ctx, newUser("+15551234567")))

	users, total, err := m.ListUsers(ctx, -10, 10)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, 1, total)

	users, _, err = m.ListUsers(ctx, 1<<40, 10)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestMemory_Sessions(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	now := time.Now()

	live := &models.Session{ID: uuid.NewString(), PrincipalID: "u1", PrincipalType: models.PrincipalUser,
		TokenHash: "h1", ExpiresAt: now.Add(time.Hour), IsActive: true, CreatedAt: now}
	stale := &models.Session{ID: uuid.NewString(), PrincipalID: "u1", PrincipalType: models.PrincipalUser,
		TokenHash: "h2", ExpiresAt: now.Add(-time.Minute), IsActive: true, CreatedAt: now}
	require.NoError(t, m.CreateSession(ctx, live))
	require.NoError(t, m.CreateSession(ctx, stale))

	// same owner, wrong table
	_, err := m.GetActiveSession(ctx, models.PrincipalAdmin, "u1", "h1")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	n, err := m.DeactivateExpiredSessions(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = m.GetActiveSession(ctx, models.PrincipalUser, "u1", "h2")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	require.NoError(t, m.DeactivateSession(ctx, models.PrincipalUser, "u1", "h1"))
	require.NoError(t, m.DeactivateSession(ctx, models.PrincipalUser, "u1", "h1"))
	require.NoError(t, m.DeactivateSession(ctx, models.PrincipalUser, "nobody", "nothing"))
	_, err = m.GetActiveSession(ctx, models.PrincipalUser, "u1", "h1")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestMemory_Documents(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	base := time.Now()

	for i, title := range []string{"Onboarding guide", "Quarterly report", "Holiday calendar"} {
		require.NoError(t, m.CreateDocument(ctx, &models.Document{
			ID: uuid.NewString(), Title: title, Description: "shared with the team",
			GoogleDriveLink: "https://drive.google.com/file/d/x/view", CreatedBy: "a1", IsActive: true,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	docs, total, err := m.ListActiveDocuments(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, docs, 2)
	assert.Equal(t, "Holiday calendar", docs[0].Title)

	found, err := m.SearchDocuments(ctx, "REPORT", 50)
	require.NoError(t, err)
	require.Len(t, found, 1)

	require.NoError(t, m.SoftDeleteDocument(ctx, found[0].ID))
	_, err = m.GetActiveDocument(ctx, found[0].ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.True(t, apperror.Is(m.SoftDeleteDocument(ctx, found[0].ID), apperror.KindNotFound))

	_, total, _ = m.ListActiveDocuments(ctx, 0, 10)
	assert.Equal(t, 2, total)
}
