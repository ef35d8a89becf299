// Package notify shows transient status messages and hides them again after
// a fixed delay.
package notify

import (
	"sync"
	"time"

	"github.com/pkordes/trip-report/internal/domain"
)

// DefaultDuration is how long a notification stays visible.
const DefaultDuration = 4 * time.Second

// Display renders a notification. Implementations must be safe to call from
// a timer goroutine.
type Display interface {
	Show(n domain.Notification)
	Hide()
}

// Timer is a pending one-shot callback. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Presenter posts notifications to a Display and hides each one after the
// configured duration. Posting a new notification cancels the hide timer of
// the previous one, so a newer message is always shown for the full duration.
type Presenter struct {
	display  Display
	sched    Scheduler
	duration time.Duration

	mu      sync.Mutex
	seq     uint64
	pending Timer
	closed  bool
}

// NewPresenter returns a Presenter for d. A zero duration falls back to
// DefaultDuration and a nil scheduler to the wall clock.
func NewPresenter(d Display, duration time.Duration, sched Scheduler) *Presenter {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if sched == nil {
		sched = realScheduler{}
	}
	return &Presenter{display: d, sched: sched, duration: duration}
}

// Notify shows message with the given kind and schedules it to be hidden.
func (p *Presenter) Notify(message string, kind domain.NotificationKind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	if p.pending != nil {
		p.pending.Stop()
	}
	p.seq++
	seq := p.seq

	p.display.Show(domain.Notification{Text: message, Kind: kind})
	p.pending = p.sched.AfterFunc(p.duration, func() { p.hide(seq) })
}

// hide runs on the timer goroutine. A timer that fired while a newer
// notification was being posted sees a stale seq and does nothing.
func (p *Presenter) hide(seq uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || seq != p.seq {
		return
	}
	p.pending = nil
	p.display.Hide()
}

// Close cancels any pending hide. Later calls to Notify are ignored.
func (p *Presenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.pending != nil {
		p.pending.Stop()
		p.pending = nil
	}
}
