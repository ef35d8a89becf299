// Package draft holds the single in-memory draft of a form session.
package draft

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/looplab/fsm"

	"github.com/pkordes/trip-report/internal/domain"
)

// Slot states.
const (
	stateEmpty   = "empty"
	stateHolding = "holding"
)

const eventSave = "save"

// Store is a single-slot draft store. Each Save overwrites the previous
// draft; loading never consumes it. The zero value is not usable; call New.
type Store struct {
	mu    sync.Mutex
	slot  domain.FormRecord
	state *fsm.FSM
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		state: fsm.NewFSM(
			stateEmpty,
			fsm.Events{
				{Name: eventSave, Src: []string{stateEmpty, stateHolding}, Dst: stateHolding},
			},
			fsm.Callbacks{},
		),
	}
}

// Save replaces the held draft with a copy of rec.
func (s *Store) Save(ctx context.Context, rec domain.FormRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.state.Event(ctx, eventSave); err != nil {
		// holding -> holding is an overwrite, not a failure.
		var same fsm.NoTransitionError
		if !errors.As(err, &same) {
			return fmt.Errorf("draft.Store.Save: %w", err)
		}
	}
	s.slot = rec.Clone()
	if s.slot == nil {
		s.slot = domain.FormRecord{}
	}
	return nil
}

// Load returns a copy of the held draft, or false when nothing was saved.
func (s *Store) Load() (domain.FormRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Is(stateHolding) {
		return nil, false
	}
	return s.slot.Clone(), true
}
