package testutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trip-report/testutil"
)

func TestManualScheduler_FiresInOrder(t *testing.T) {
	var s testutil.ManualScheduler
	var order []string

	s.AfterFunc(2*time.Second, func() { order = append(order, "late") })
	s.AfterFunc(time.Second, func() { order = append(order, "early") })

	s.Advance(500 * time.Millisecond)
	assert.Empty(t, order)

	s.Advance(2 * time.Second)
	assert.Equal(t, []string{"early", "late"}, order)
	assert.Equal(t, 0, s.Pending())
}

func TestManualScheduler_StopPreventsFire(t *testing.T) {
	var s testutil.ManualScheduler
	fired := false

	timer := s.AfterFunc(time.Second, func() { fired = true })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports already stopped")

	s.Advance(time.Hour)
	assert.False(t, fired)
}
