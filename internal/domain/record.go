package domain

// FormRecord maps field ids to their text values. It is either a snapshot of
// the on-screen form or a saved draft. Values are free text; an absent key and
// an empty string both export as an empty cell.
type FormRecord map[FieldID]string

// Clone returns an independent copy of r. A nil record clones to nil.
func (r FormRecord) Clone() FormRecord {
	if r == nil {
		return nil
	}
	out := make(FormRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ValidationOutcome is the result of checking the required fields.
// Missing holds the labels of the empty required fields in schema order.
type ValidationOutcome struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing"`

	// Failed holds the ids behind Missing, used to flag the controls.
	Failed []FieldID `json:"failed"`
}
