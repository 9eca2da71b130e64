package attendance

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

// Service owns the staff list and the attendance ledger. Open sessions are
// looked up by staff id, so renaming a member never loses a session.
type Service struct {
	mu      sync.Mutex
	staff   interfaces.StaffRepository
	logs    interfaces.AttendanceRepository
	archive interfaces.SalesArchive
	logger  logger.Logger
	now     interfaces.Clock
}

func NewService(staff interfaces.StaffRepository, logs interfaces.AttendanceRepository, archive interfaces.SalesArchive, logger logger.Logger) *Service {
	return &Service{
		staff:   staff,
		logs:    logs,
		archive: archive,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *Service) Staff() []domain.StaffMember {
	return s.staff.List()
}

func (s *Service) AddStaff(name, pin string, hourlyRate float64) (*domain.StaffMember, error) {
	member, err := domain.NewStaffMember(name, pin, hourlyRate)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.staff.Add(*member)
	s.mu.Unlock()

	s.logger.Info("staff_added", fmt.Sprintf("Staff %s added", member.Name), "", map[string]interface{}{
		"staff_id":    member.ID,
		"hourly_rate": member.HourlyRate,
	})
	return member, nil
}

// RemoveStaff drops the member. Existing logs keep the captured name and rate.
func (s *Service) RemoveStaff(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.staff.Remove(id)
}

// ClockIn opens a session. It fails for unknown staff and for staff who
// already have an open session; the ledger is unchanged in both cases.
func (s *Service) ClockIn(ctx context.Context, staffID string) (*domain.StaffLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.staff.FindByID(staffID)
	if err != nil {
		return nil, err
	}

	if _, err := s.logs.FindOpenByStaff(staffID); err == nil {
		return nil, domain.ErrAlreadyClockedIn
	}

	log := domain.NewStaffLog(member, s.now())
	s.logs.Append(log)

	s.logger.Info("clock_in", fmt.Sprintf("%s clocked in", member.Name), "", map[string]interface{}{
		"staff_id": member.ID,
		"log_id":   log.ID,
	})
	return log, nil
}

// ClockOut closes the session. Unknown or already closed logs are left as
// they are.
func (s *Service) ClockOut(ctx context.Context, logID string) (*domain.StaffLog, error) {
	s.mu.Lock()
	closed, err := s.closeLog(logID)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	hours, _ := closed.Hours()
	pay, _ := closed.Pay()
	s.logger.Info("clock_out", fmt.Sprintf("%s clocked out", closed.StaffName), "", map[string]interface{}{
		"log_id": closed.ID,
		"hours":  hours,
		"pay":    pay,
	})

	if err := s.archive.ArchiveShift(ctx, closed); err != nil {
		s.logger.Error("archive_failed", "Failed to archive shift", "", map[string]interface{}{"log_id": closed.ID}, err)
	}
	return closed, nil
}

func (s *Service) closeLog(logID string) (*domain.StaffLog, error) {
	current, err := s.logs.FindByID(logID)
	if err != nil {
		return nil, err
	}
	if !current.IsOpen() {
		return nil, fmt.Errorf("%w: %s clocked out at %s", domain.ErrAlreadyClockedOut,
			current.StaffName, current.ClockOut.Format(time.TimeOnly))
	}

	return s.logs.Update(logID, func(l *domain.StaffLog) error {
		return l.Close(s.now())
	})
}

func (s *Service) ActiveLog(staffID string) (*domain.StaffLog, bool) {
	log, err := s.logs.FindOpenByStaff(staffID)
	if err != nil {
		return nil, false
	}
	return log, true
}

// Logs returns all sessions, newest first.
func (s *Service) Logs() []*domain.StaffLog {
	return s.logs.List()
}

// UpdateStaff changes a member's name and rate. Logs already opened keep
// the name and rate captured at clock-in.
func (s *Service) UpdateStaff(id, name string, hourlyRate float64) (*domain.StaffMember, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidStaff)
	}
	if hourlyRate < 0 {
		return nil, fmt.Errorf("%w: hourly rate must not be negative", domain.ErrInvalidStaff)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.staff.FindByID(id)
	if err != nil {
		return nil, err
	}
	member.Name = name
	member.HourlyRate = hourlyRate
	if err := s.staff.Update(member); err != nil {
		return nil, err
	}
	return &member, nil
}
