package form

import "github.com/pkordes/trip-report/internal/domain"

// InputControl is an in-memory text input.
type InputControl struct {
	value  string
	border string
}

func (c *InputControl) Value() string { return c.value }
func (c *InputControl) SetValue(v string) { c.value = v }
func (c *InputControl) BorderColor() string { return c.border }
func (c *InputControl) SetBorderColor(s string) { c.border = s }

// ControlState is a serializable view of one control.
type ControlState struct {
	ID          domain.FieldID `json:"id"`
	Value       string         `json:"value"`
	BorderColor string         `json:"border_color,omitempty"`
}

// MemorySurface is a server-side model of the rendered form. It is not safe
// for concurrent use; callers serialize access per session.
type MemorySurface struct {
	controls map[domain.FieldID]*InputControl
}

// NewMemorySurface renders a control for each of ids, or for the whole
// schema when ids is empty.
func NewMemorySurface(ids ...domain.FieldID) *MemorySurface {
	if len(ids) == 0 {
		ids = domain.FieldIDs()
	}
	s := &MemorySurface{controls: make(map[domain.FieldID]*InputControl, len(ids))}
	for _, id := range ids {
		s.controls[id] = &InputControl{}
	}
	return s
}

// Control implements Surface.
func (s *MemorySurface) Control(id domain.FieldID) (Control, bool) {
	c, ok := s.controls[id]
	if !ok {
		return nil, false
	}
	return c, true
}

// Snapshot returns the state of every rendered control in schema order.
func (s *MemorySurface) Snapshot() []ControlState {
	out := make([]ControlState, 0, len(s.controls))
	for _, id := range domain.FieldIDs() {
		c, ok := s.controls[id]
		if !ok {
			continue
		}
		out = append(out, ControlState{ID: id, Value: c.value, BorderColor: c.border})
	}
	return out
}
