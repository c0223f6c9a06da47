package usecase

import (
	"sync"
	"time"

	"github.com/piresc/docshare/internal/pkg/session"
	"github.com/piresc/docshare/services/admin"
)

const welcomeTimeout = 10 * time.Second

// AdminUC implements admin.AdminUC
type AdminUC struct {
	repo     admin.AdminRepo
	gateway  admin.AdminGW
	sessions session.Manager
	now      func() time.Time

	// background welcome notifications
	wg sync.WaitGroup
}

// NewAdminUC creates a new admin usecase instance
func NewAdminUC(repo admin.AdminRepo, gateway admin.AdminGW, sessions session.Manager) *AdminUC {
	return &AdminUC{
		repo:     repo,
		gateway:  gateway,
		sessions: sessions,
		now:      time.Now,
	}
}

// Wait blocks until pending welcome notifications have finished
func (u *AdminUC) Wait() {
	u.wg.Wait()
}

var _ admin.AdminUC = (*AdminUC)(nil)
