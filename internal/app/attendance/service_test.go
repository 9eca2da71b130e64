package attendance

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/adapter/memory"
	"github.com/YelzhanWeb/kiosk/internal/domain"
)

type shiftArchive struct {
	shifts []*domain.StaffLog
}

func (a *shiftArchive) ArchiveOrder(ctx context.Context, order *domain.Order) error { return nil }

func (a *shiftArchive) LogStatus(ctx context.Context, change domain.StatusChange) error { return nil }

func (a *shiftArchive) ArchiveShift(ctx context.Context, log *domain.StaffLog) error {
	a.shifts = append(a.shifts, log)
	return nil
}

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func newService(t *testing.T) (*Service, *clock, *shiftArchive) {
	t.Helper()

	staff := memory.NewStaffRepository([]domain.StaffMember{
		{ID: "s1", Name: "Maria", PIN: "1234", HourlyRate: 65},
		{ID: "s2", Name: "Juan", PIN: "5678", HourlyRate: 65},
	})
	archive := &shiftArchive{}
	svc := NewService(staff, memory.NewAttendanceRepository(), archive, logger.NewWithWriter("test", io.Discard, "error"))

	c := &clock{t: time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)}
	svc.now = c.now
	return svc, c, archive
}

func TestClockInOut_HoursAndPay(t *testing.T) {
	svc, c, archive := newService(t)
	ctx := context.Background()

	log, err := svc.ClockIn(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Maria", log.StaffName)
	assert.Equal(t, "2026-10-18", log.Date)
	assert.Equal(t, 65.0, log.HourlyRate)

	_, ok := log.Hours()
	assert.False(t, ok)

	c.t = c.t.Add(7*time.Hour + 30*time.Minute)
	closed, err := svc.ClockOut(ctx, log.ID)
	require.NoError(t, err)

	hours, ok := closed.Hours()
	require.True(t, ok)
	assert.InDelta(t, 7.5, hours, 1e-9)

	pay, ok := closed.Pay()
	require.True(t, ok)
	assert.InDelta(t, 487.5, pay, 1e-9)

	require.Len(t, archive.shifts, 1)
	_, open := svc.ActiveLog("s1")
	assert.False(t, open)
}

func TestClockIn_UnknownStaffIsNoop(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.ClockIn(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrStaffNotFound)
	assert.Empty(t, svc.Logs())
}

func TestClockIn_RejectsSecondOpenSession(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.ClockIn(ctx, "s1")
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrAlreadyClockedIn)
	assert.Len(t, svc.Logs(), 1)

	_, err = svc.ClockIn(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, svc.Logs(), 2)
}

func TestClockOut_UnknownOrClosedLogLeavesLedgerUnchanged(t *testing.T) {
	svc, c, archive := newService(t)
	ctx := context.Background()

	log, err := svc.ClockIn(ctx, "s1")
	require.NoError(t, err)
	before := svc.Logs()

	_, err = svc.ClockOut(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrLogNotFound)
	assert.Equal(t, before, svc.Logs())

	c.t = c.t.Add(time.Hour)
	first, err := svc.ClockOut(ctx, log.ID)
	require.NoError(t, err)

	c.t = c.t.Add(time.Hour)
	_, err = svc.ClockOut(ctx, log.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyClockedOut)

	stored := svc.Logs()[0]
	assert.Equal(t, *first.ClockOut, *stored.ClockOut)
	assert.Len(t, archive.shifts, 1)
}

func TestRenameKeepsOpenSessionAndCapturedValues(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	log, err := svc.ClockIn(ctx, "s1")
	require.NoError(t, err)

	_, err = svc.UpdateStaff("s1", "Maria Clara", 80)
	require.NoError(t, err)

	active, ok := svc.ActiveLog("s1")
	require.True(t, ok)
	assert.Equal(t, log.ID, active.ID)
	assert.Equal(t, "Maria", active.StaffName)
	assert.Equal(t, 65.0, active.HourlyRate)

	_, err = svc.ClockIn(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrAlreadyClockedIn)
}

func TestLogsNewestFirst(t *testing.T) {
	svc, c, _ := newService(t)
	ctx := context.Background()

	first, err := svc.ClockIn(ctx, "s1")
	require.NoError(t, err)
	c.t = c.t.Add(time.Minute)
	second, err := svc.ClockIn(ctx, "s2")
	require.NoError(t, err)

	logs := svc.Logs()
	require.Len(t, logs, 2)
	assert.Equal(t, second.ID, logs[0].ID)
	assert.Equal(t, first.ID, logs[1].ID)
}

func TestAddAndRemoveStaff(t *testing.T) {
	svc, _, _ := newService(t)

	member, err := svc.AddStaff("  Pedro ", "0000", 70)
	require.NoError(t, err)
	assert.Equal(t, "Pedro", member.Name)
	assert.Len(t, svc.Staff(), 3)

	_, err = svc.AddStaff("", "0000", 70)
	assert.Error(t, err)

	require.NoError(t, svc.RemoveStaff(member.ID))
	assert.ErrorIs(t, svc.RemoveStaff(member.ID), domain.ErrStaffNotFound)
	assert.Len(t, svc.Staff(), 2)
}

func TestClockOut_ClosedLogReportsWhenItClosed(t *testing.T) {
	svc, c, archive := newService(t)
	ctx := context.Background()

	log, err := svc.ClockIn(ctx, "s1")
	require.NoError(t, err)
	c.t = c.t.Add(time.Hour)
	_, err = svc.ClockOut(ctx, log.ID)
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, log.ID)
	require.ErrorIs(t, err, domain.ErrAlreadyClockedOut)
	assert.Contains(t, err.Error(), "Maria clocked out at 09:00:00")
	assert.Len(t, archive.shifts, 1)
}
