package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StaffMember is a person who can clock in. PIN is stored but not used for
// authorization.
type StaffMember struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	PIN        string  `json:"-" yaml:"pin"`
	HourlyRate float64 `json:"hourlyRate" yaml:"hourly_rate"`
}

// NewStaffMember creates a staff member with a fresh id
func NewStaffMember(name, pin string, hourlyRate float64) (*StaffMember, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidStaff)
	}
	if pin == "" {
		return nil, fmt.Errorf("%w: pin is required", ErrInvalidStaff)
	}
	if hourlyRate < 0 {
		return nil, fmt.Errorf("%w: hourly rate must not be negative", ErrInvalidStaff)
	}

	return &StaffMember{
		ID:         uuid.NewString(),
		Name:       name,
		PIN:        pin,
		HourlyRate: hourlyRate,
	}, nil
}

// StaffLog is one clock-in session. Name and rate are captured at clock-in
// so later edits to the staff member do not change past logs.
type StaffLog struct {
	ID         string     `json:"id"`
	StaffID    string     `json:"staffId"`
	StaffName  string     `json:"staffName"`
	ClockIn    time.Time  `json:"clockIn"`
	ClockOut   *time.Time `json:"clockOut,omitempty"`
	Date       string     `json:"date"`
	HourlyRate float64    `json:"hourlyRate"`
}

// NewStaffLog opens a session for the member at now
func NewStaffLog(member StaffMember, now time.Time) *StaffLog {
	return &StaffLog{
		ID:         uuid.NewString(),
		StaffID:    member.ID,
		StaffName:  member.Name,
		ClockIn:    now,
		Date:       now.Format(time.DateOnly),
		HourlyRate: member.HourlyRate,
	}
}

func (l *StaffLog) IsOpen() bool {
	return l.ClockOut == nil
}

// Close sets the clock-out instant
func (l *StaffLog) Close(now time.Time) error {
	if !l.IsOpen() {
		return ErrAlreadyClockedOut
	}
	l.ClockOut = &now
	return nil
}

// Hours is the worked time; ok is false while the session is open.
func (l *StaffLog) Hours() (hours float64, ok bool) {
	if l.ClockOut == nil {
		return 0, false
	}
	return l.ClockOut.Sub(l.ClockIn).Hours(), true
}

// Pay is Hours times the captured hourly rate
func (l *StaffLog) Pay() (pay float64, ok bool) {
	hours, ok := l.Hours()
	if !ok {
		return 0, false
	}
	return hours * l.HourlyRate, true
}

func (l *StaffLog) Clone() *StaffLog {
	c := *l
	if l.ClockOut != nil {
		t := *l.ClockOut
		c.ClockOut = &t
	}
	return &c
}

var (
	ErrInvalidStaff      = errors.New("invalid staff member")
	ErrStaffNotFound     = errors.New("staff member not found")
	ErrLogNotFound       = errors.New("staff log not found")
	ErrAlreadyClockedIn  = errors.New("staff member is already clocked in")
	ErrAlreadyClockedOut = errors.New("staff log is already clocked out")
)
