package settings

import (
	"sync"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/domain"
)

const minPINLength = 4

// Service holds the back-office settings. The admin PIN is compared as a
// plain string: there is no hashing, lockout or attempt tracking.
type Service struct {
	mu        sync.RWMutex
	adminPIN  string
	autoPrint bool
	logger    logger.Logger
}

func NewService(adminPIN string, autoPrint bool, logger logger.Logger) *Service {
	return &Service{
		adminPIN:  adminPIN,
		autoPrint: autoPrint,
		logger:    logger,
	}
}

func (s *Service) VerifyAdminPIN(pin string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if pin == "" || pin != s.adminPIN {
		return domain.ErrInvalidPIN
	}
	return nil
}

func (s *Service) ChangeAdminPIN(current, next, confirm string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current != s.adminPIN {
		return domain.ErrInvalidPIN
	}
	if len(next) < minPINLength {
		return domain.ErrPINTooShort
	}
	if next != confirm {
		return domain.ErrPINMismatch
	}

	s.adminPIN = next
	s.logger.Info("admin_pin_changed", "Admin PIN updated", "", nil)
	return nil
}

func (s *Service) AutoPrint() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.autoPrint
}

func (s *Service) SetAutoPrint(enabled bool) {
	s.mu.Lock()
	s.autoPrint = enabled
	s.mu.Unlock()

	s.logger.Info("auto_print_changed", "Auto print toggled", "", map[string]interface{}{"enabled": enabled})
}
