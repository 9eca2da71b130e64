package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	_, err := NewOrder(nil, "Ana", now)
	assert.ErrorIs(t, err, ErrEmptyCart)

	var c Cart
	c.Add(americano, nil)
	c.Add(americano, nil)

	o, err := NewOrder(c.Lines, "  Ana ", now)
	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "Ana", o.CustomerName)
	assert.InDelta(t, 98, o.Total, 1e-9)
	assert.Equal(t, now, o.CreatedAt)

	c.Lines[0].Quantity = 10
	assert.Equal(t, 2, o.Items[0].Quantity)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Guest", (&Order{}).DisplayName())
	assert.Equal(t, "Ana", (&Order{CustomerName: "Ana"}).DisplayName())
}

func TestTransitionTable(t *testing.T) {
	all := []Status{StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled}
	allowed := map[Status]map[Status]bool{
		StatusPending:   {StatusPreparing: true, StatusCancelled: true},
		StatusPreparing: {StatusReady: true, StatusCancelled: true},
		StatusReady:     {StatusCompleted: true, StatusCancelled: true},
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTransitionTo(t *testing.T) {
	created := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	later := created.Add(time.Minute)
	o := &Order{Status: StatusPending, CreatedAt: created, UpdatedAt: created}

	assert.ErrorIs(t, o.TransitionTo(StatusCompleted, later), ErrInvalidStatusTransition)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, created, o.UpdatedAt)

	require.NoError(t, o.TransitionTo(StatusPreparing, later))
	assert.Equal(t, later, o.UpdatedAt)
	require.NoError(t, o.TransitionTo(StatusReady, later))
	require.NoError(t, o.TransitionTo(StatusCompleted, later))
	assert.True(t, o.Status.IsTerminal())
	assert.ErrorIs(t, o.TransitionTo(StatusCancelled, later), ErrInvalidStatusTransition)
}

func TestParseStatusAndPeriod(t *testing.T) {
	s, err := ParseStatus("Ready")
	require.NoError(t, err)
	assert.Equal(t, StatusReady, s)

	_, err = ParseStatus("ready")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	p, err := ParsePeriod("WEEKLY")
	require.NoError(t, err)
	assert.Equal(t, PeriodWeekly, p)

	_, err = ParsePeriod("monthly")
	assert.Error(t, err)
}
