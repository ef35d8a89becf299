package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trip-report/internal/domain"
	"github.com/pkordes/trip-report/internal/notify"
	"github.com/pkordes/trip-report/testutil"
)

func newPresenter() (*notify.Presenter, *notify.StatusRegion, *testutil.ManualScheduler) {
	region := &notify.StatusRegion{}
	sched := &testutil.ManualScheduler{}
	return notify.NewPresenter(region, 4*time.Second, sched), region, sched
}

func TestPresenter_ShowsThenHidesAfterDuration(t *testing.T) {
	p, region, sched := newPresenter()

	p.Notify(domain.MsgDraftSaved, domain.KindSuccess)

	got := region.Snapshot()
	assert.True(t, got.Visible)
	assert.Equal(t, domain.MsgDraftSaved, got.Text)
	assert.Equal(t, domain.KindSuccess, got.Kind)

	sched.Advance(3999 * time.Millisecond)
	assert.True(t, region.Snapshot().Visible)

	sched.Advance(time.Millisecond)
	assert.False(t, region.Snapshot().Visible)
	assert.Equal(t, domain.MsgDraftSaved, region.Snapshot().Text, "hiding keeps the last text")
}

// TestPresenter_NewerMessageNotHiddenEarly verifies that a second notification
// posted before the first expires stays visible for its own full duration.
func TestPresenter_NewerMessageNotHiddenEarly(t *testing.T) {
	p, region, sched := newPresenter()

	p.Notify("first", domain.KindInfo)
	sched.Advance(3 * time.Second)
	p.Notify("second", domain.KindError)

	sched.Advance(time.Second) // first timer would have fired here
	got := region.Snapshot()
	assert.True(t, got.Visible)
	assert.Equal(t, "second", got.Text)
	assert.Equal(t, domain.KindError, got.Kind)

	sched.Advance(3 * time.Second)
	assert.False(t, region.Snapshot().Visible)
	assert.Equal(t, 0, sched.Pending())
}

func TestPresenter_OnlyOnePendingTimer(t *testing.T) {
	p, _, sched := newPresenter()

	p.Notify("a", domain.KindInfo)
	p.Notify("b", domain.KindInfo)
	p.Notify("c", domain.KindInfo)

	assert.Equal(t, 1, sched.Pending())
}

func TestPresenter_Close(t *testing.T) {
	p, region, sched := newPresenter()
	p.Notify("a", domain.KindInfo)

	p.Close()
	p.Notify("b", domain.KindInfo)

	assert.Equal(t, 0, sched.Pending())
	assert.Equal(t, "a", region.Snapshot().Text)
}

func TestPresenter_DefaultDuration(t *testing.T) {
	region := &notify.StatusRegion{}
	sched := &testutil.ManualScheduler{}
	p := notify.NewPresenter(region, 0, sched)

	p.Notify("a", domain.KindInfo)
	sched.Advance(notify.DefaultDuration - time.Millisecond)
	assert.True(t, region.Snapshot().Visible)
	sched.Advance(time.Millisecond)
	assert.False(t, region.Snapshot().Visible)
}

func TestPresenter_WallClock(t *testing.T) {
	region := &notify.StatusRegion{}
	p := notify.NewPresenter(region, 10*time.Millisecond, nil)

	p.Notify("a", domain.KindInfo)

	assert.Eventually(t, func() bool { return !region.Snapshot().Visible },
		time.Second, 5*time.Millisecond)
}
