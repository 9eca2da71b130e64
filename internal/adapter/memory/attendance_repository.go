package memory

import (
	"sync"

	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

// attendanceRepository keeps logs in clock-in order and indexes open
// sessions by staff id.
type attendanceRepository struct {
	mu   sync.RWMutex
	logs []*domain.StaffLog
	open map[string]string // staff id -> log id
}

func NewAttendanceRepository() interfaces.AttendanceRepository {
	return &attendanceRepository{open: make(map[string]string)}
}

func (r *attendanceRepository) Append(log *domain.StaffLog) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := log.Clone()
	r.logs = append(r.logs, stored)
	if stored.IsOpen() {
		r.open[stored.StaffID] = stored.ID
	}
}

func (r *attendanceRepository) find(id string) (int, bool) {
	for i, l := range r.logs {
		if l.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (r *attendanceRepository) FindByID(id string) (*domain.StaffLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.find(id)
	if !ok {
		return nil, domain.ErrLogNotFound
	}
	return r.logs[i].Clone(), nil
}

func (r *attendanceRepository) FindOpenByStaff(staffID string) (*domain.StaffLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logID, ok := r.open[staffID]
	if !ok {
		return nil, domain.ErrLogNotFound
	}
	i, ok := r.find(logID)
	if !ok {
		return nil, domain.ErrLogNotFound
	}
	return r.logs[i].Clone(), nil
}

func (r *attendanceRepository) Update(id string, fn interfaces.LogUpdate) (*domain.StaffLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.find(id)
	if !ok {
		return nil, domain.ErrLogNotFound
	}

	draft := r.logs[i].Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}
	r.logs[i] = draft

	if draft.IsOpen() {
		r.open[draft.StaffID] = draft.ID
	} else if r.open[draft.StaffID] == draft.ID {
		delete(r.open, draft.StaffID)
	}

	return draft.Clone(), nil
}

func (r *attendanceRepository) List() []*domain.StaffLog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.StaffLog, 0, len(r.logs))
	for i := len(r.logs) - 1; i >= 0; i-- {
		out = append(out, r.logs[i].Clone())
	}
	return out
}
