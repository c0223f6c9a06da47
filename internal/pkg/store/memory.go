package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/models"
)

type sessionKey struct {
	principalType models.PrincipalType
	principalID   string
	tokenHash     string
}

// Memory implements Store with mutex-guarded maps. It enforces the same
// uniqueness rules as the postgres schema and hands out copies only.
type Memory struct {
	mu        sync.RWMutex
	admins    map[string]*models.Admin
	users     map[string]*models.User
	sessions  map[sessionKey]*models.Session
	documents map[string]*models.Document
	audit     []*models.AuditLog
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		admins:    make(map[string]*models.Admin),
		users:     make(map[string]*models.User),
		sessions:  make(map[sessionKey]*models.Session),
		documents: make(map[string]*models.Document),
	}
}

// Ping always succeeds
func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

func copyUser(u *models.User) *models.User {
	c := *u
	if u.TOTPSecret != nil {
		s := *u.TOTPSecret
		c.TOTPSecret = &s
	}
	if u.LastAttemptAt != nil {
		t := *u.LastAttemptAt
		c.LastAttemptAt = &t
	}
	if u.LastLogin != nil {
		t := *u.LastLogin
		c.LastLogin = &t
	}
	return &c
}

func copyDocument(d *models.Document) *models.Document {
	c := *d
	if d.FileID != nil {
		id := *d.FileID
		c.FileID = &id
	}
	return &c
}

// GetAdminByUsername retrieves an admin by username
func (m *Memory) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.admins {
		if a.Username == username {
			c := *a
			return &c, nil
		}
	}
	return nil, notFound("admin")
}

// GetAdminByID retrieves an admin by id
func (m *Memory) GetAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.admins[id]
	if !ok {
		return nil, notFound("admin")
	}
	c := *a
	return &c, nil
}

// CreateAdmin inserts an admin; a taken username is a conflict
func (m *Memory) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.admins {
		if a.Username == admin.Username {
			return apperror.New(apperror.KindConflict, "admin already exists")
		}
	}
	c := *admin
	m.admins[admin.ID] = &c
	return nil
}

// CountAdmins returns how many admins exist
func (m *Memory) CountAdmins(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.admins), nil
}

// GetUserByMobile retrieves a user by mobile number
func (m *Memory) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.MobileNumber == mobile {
			return copyUser(u), nil
		}
	}
	return nil, notFound("user")
}

// GetUserByID retrieves a user by id
func (m *Memory) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return copyUser(u), nil
}

func (m *Memory) mobileTaken(mobile, exceptID string) bool {
	for id, u := range m.users {
		if u.MobileNumber == mobile && id != exceptID {
			return true
		}
	}
	return false
}

// CreateUser inserts a user; a taken mobile number is a conflict
func (m *Memory) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mobileTaken(user.MobileNumber, "") {
		return apperror.New(apperror.KindConflict, "user already exists")
	}
	m.users[user.ID] = copyUser(user)
	return nil
}

// ListUsers returns a page of users, newest first, and the total count
func (m *Memory) ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]*models.User, 0, len(m.users))
	for _, u := range m.users {
		all = append(all, copyUser(u))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	return page(all, offset, limit), len(all), nil
}

func page[T any](items []T, offset, limit int) []T {
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// DeleteUser removes a user
func (m *Memory) DeleteUser(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return notFound("user")
	}
	delete(m.users, id)
	return nil
}

// mutateUser applies fn to the stored user under the write lock
func (m *Memory) mutateUser(id string, fn func(u *models.User) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return notFound("user")
	}
	return fn(u)
}

// SetUserVerified flips the verified flag
func (m *Memory) SetUserVerified(ctx context.Context, id string, verified bool) error {
	return m.mutateUser(id, func(u *models.User) error {
		u.IsVerified = verified
		u.UpdatedAt = time.Now()
		return nil
	})
}

// UpdateUserMobile changes a user's mobile number and returns the updated record
func (m *Memory) UpdateUserMobile(ctx context.Context, id, mobile string) (*models.User, error) {
	var updated *models.User
	err := m.mutateUser(id, func(u *models.User) error {
		if m.mobileTaken(mobile, id) {
			return apperror.New(apperror.KindConflict, "user already exists")
		}
		u.MobileNumber = mobile
		u.UpdatedAt = time.Now()
		updated = copyUser(u)
		return nil
	})
	return updated, err
}

// SetTOTPSecret stores a newly issued secret. A user that already holds one is a Conflict.
func (m *Memory) SetTOTPSecret(ctx context.Context, id, secret string) error {
	return m.mutateUser(id, func(u *models.User) error {
		if u.HasSecret() {
			return errSecretIssued
		}
		u.TOTPSecret = &secret
		u.TOTPEnabled = false
		u.UpdatedAt = time.Now()
		return nil
	})
}

// EnableTOTP marks the stored secret as confirmed
func (m *Memory) EnableTOTP(ctx context.Context, id string) error {
	return m.mutateUser(id, func(u *models.User) error {
		if !u.HasSecret() {
			return notFound("user")
		}
		u.TOTPEnabled = true
		u.UpdatedAt = time.Now()
		return nil
	})
}

// ResetTOTP clears the secret so the next request issues a new one
func (m *Memory) ResetTOTP(ctx context.Context, id string) error {
	return m.mutateUser(id, func(u *models.User) error {
		u.TOTPSecret = nil
		u.TOTPEnabled = false
		u.UpdatedAt = time.Now()
		return nil
	})
}

// IncrementLoginAttempts bumps the failure counter and returns the new value
func (m *Memory) IncrementLoginAttempts(ctx context.Context, id string, at time.Time) (int, error) {
	var attempts int
	err := m.mutateUser(id, func(u *models.User) error {
		u.LoginAttempts++
		u.LastAttemptAt = &at
		u.UpdatedAt = at
		attempts = u.LoginAttempts
		return nil
	})
	return attempts, err
}

// ResetLoginAttempts clears the failure counter
func (m *Memory) ResetLoginAttempts(ctx context.Context, id string) error {
	return m.mutateUser(id, func(u *models.User) error {
		u.LoginAttempts = 0
		u.LastAttemptAt = nil
		u.UpdatedAt = time.Now()
		return nil
	})
}

// RecordLoginSuccess clears the failure counter and stamps the login time
func (m *Memory) RecordLoginSuccess(ctx context.Context, id string, at time.Time) error {
	return m.mutateUser(id, func(u *models.User) error {
		u.LoginAttempts = 0
		u.LastAttemptAt = nil
		u.LastLogin = &at
		u.UpdatedAt = at
		return nil
	})
}

// CreateSession stores an active session
func (m *Memory) CreateSession(ctx context.Context, session *models.Session) error {
	if _, err := sessionTable(session.PrincipalType); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	c := *session
	m.sessions[sessionKey{session.PrincipalType, session.PrincipalID, session.TokenHash}] = &c
	return nil
}

// GetActiveSession finds an active session by owner and token hash
func (m *Memory) GetActiveSession(ctx context.Context, principalType models.PrincipalType, principalID, tokenHash string) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[sessionKey{principalType, principalID, tokenHash}]
	if !ok || !s.IsActive {
		return nil, notFound("session")
	}
	c := *s
	return &c, nil
}

// DeactivateSession marks a session inactive; unknown sessions are ignored
func (m *Memory) DeactivateSession(ctx context.Context, principalType models.PrincipalType, principalID, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[sessionKey{principalType, principalID, tokenHash}]; ok {
		s.IsActive = false
	}
	return nil
}

// DeactivateExpiredSessions flips every expired, still active session
func (m *Memory) DeactivateExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for _, s := range m.sessions {
		if s.IsActive && s.ExpiresAt.Before(now) {
			s.IsActive = false
			n++
		}
	}
	return n, nil
}

func (m *Memory) activeDocuments() []*models.Document {
	docs := make([]*models.Document, 0, len(m.documents))
	for _, d := range m.documents {
		if d.IsActive {
			docs = append(docs, copyDocument(d))
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].CreatedAt.After(docs[j].CreatedAt) })
	return docs
}

// ListActiveDocuments returns a page of active documents, newest first, and the total count
func (m *Memory) ListActiveDocuments(ctx context.Context, offset, limit int) ([]*models.Document, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := m.activeDocuments()
	return page(docs, offset, limit), len(docs), nil
}

// GetActiveDocument retrieves an active document by id
func (m *Memory) GetActiveDocument(ctx context.Context, id string) (*models.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.documents[id]
	if !ok || !d.IsActive {
		return nil, notFound("document")
	}
	return copyDocument(d), nil
}

// SearchDocuments matches the query against title or description, case-insensitively
func (m *Memory) SearchDocuments(ctx context.Context, query string, limit int) ([]*models.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := strings.ToLower(query)
	matches := []*models.Document{}
	for _, d := range m.activeDocuments() {
		if strings.Contains(strings.ToLower(d.Title), q) || strings.Contains(strings.ToLower(d.Description), q) {
			matches = append(matches, d)
		}
	}
	return page(matches, 0, limit), nil
}

// CreateDocument inserts a document
func (m *Memory) CreateDocument(ctx context.Context, doc *models.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.documents[doc.ID] = copyDocument(doc)
	return nil
}

// UpdateDocument rewrites the editable fields of an active document
func (m *Memory) UpdateDocument(ctx context.Context, doc *models.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.documents[doc.ID]
	if !ok || !d.IsActive {
		return notFound("document")
	}
	d.Title = doc.Title
	d.Description = doc.Description
	d.GoogleDriveLink = doc.GoogleDriveLink
	d.FileID = doc.FileID
	d.UpdatedAt = doc.UpdatedAt
	return nil
}

// SoftDeleteDocument hides a document without removing it
func (m *Memory) SoftDeleteDocument(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.documents[id]
	if !ok || !d.IsActive {
		return notFound("document")
	}
	d.IsActive = false
	d.UpdatedAt = time.Now()
	return nil
}

// InsertAuditLog stores one audit record
func (m *Memory) InsertAuditLog(ctx context.Context, entry *models.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := *entry
	m.audit = append(m.audit, &c)
	return nil
}

// ListAuditLogs returns the most recent audit records first
func (m *Memory) ListAuditLogs(ctx context.Context, limit int) ([]*models.AuditLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	logs := make([]*models.AuditLog, 0, len(m.audit))
	for i := len(m.audit) - 1; i >= 0; i-- {
		c := *m.audit[i]
		logs = append(logs, &c)
	}
	return page(logs, 0, limit), nil
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*Postgres)(nil)
)
