package notify

import (
	"sync"

	"github.com/pkordes/trip-report/internal/domain"
)

// Status is what the notification area currently shows.
type Status struct {
	Text    string                  `json:"text"`
	Kind    domain.NotificationKind `json:"kind,omitempty"`
	Visible bool                    `json:"visible"`
}

// StatusRegion is an in-memory Display. Hiding keeps the last text and kind,
// the same way the page only toggles visibility.
type StatusRegion struct {
	mu     sync.Mutex
	status Status
}

// Show implements Display.
func (r *StatusRegion) Show(n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = Status{Text: n.Text, Kind: n.Kind, Visible: true}
}

// Hide implements Display.
func (r *StatusRegion) Hide() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status.Visible = false
}

// Snapshot returns the current status.
func (r *StatusRegion) Snapshot() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}
