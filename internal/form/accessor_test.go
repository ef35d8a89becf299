package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-report/internal/domain"
	"github.com/pkordes/trip-report/internal/form"
)

func TestAccessor_Read_AllFieldsPresent(t *testing.T) {
	a := form.NewAccessor(form.NewMemorySurface())

	rec := a.Read()

	require.Len(t, rec, 22)
	for _, id := range domain.FieldIDs() {
		v, ok := rec[id]
		assert.True(t, ok, "missing %q", id)
		assert.Empty(t, v)
	}
}

func TestAccessor_Read_MissingControlReadsEmpty(t *testing.T) {
	s := form.NewMemorySurface(domain.TripDate)
	a := form.NewAccessor(s)
	a.Write(domain.FormRecord{domain.TripDate: "2024-01-05", domain.Notes: "ignored"})

	rec := a.Read()

	assert.Equal(t, "2024-01-05", rec[domain.TripDate])
	assert.Equal(t, "", rec[domain.Notes])
}

func TestAccessor_WriteThenRead_RoundTrip(t *testing.T) {
	a := form.NewAccessor(form.NewMemorySurface())
	in := domain.FormRecord{
		domain.TripDate:        "2024-01-05",
		domain.DepartureTime:   "08:00",
		domain.DriverSignature: "Nguyen Van A",
		domain.Notes:           "Đi, về đúng giờ",
	}

	a.Write(in)
	out := a.Read()

	for id, v := range in {
		assert.Equal(t, v, out[id], "field %q", id)
	}
}

func TestAccessor_Write_AbsentFieldsUntouched(t *testing.T) {
	a := form.NewAccessor(form.NewMemorySurface())
	a.Write(domain.FormRecord{domain.TotalKM: "120", domain.Notes: "keep"})

	a.Write(domain.FormRecord{domain.TotalKM: "95"})

	rec := a.Read()
	assert.Equal(t, "95", rec[domain.TotalKM])
	assert.Equal(t, "keep", rec[domain.Notes])
}

func TestAccessor_Write_EmptyValueOverwrites(t *testing.T) {
	a := form.NewAccessor(form.NewMemorySurface())
	a.Write(domain.FormRecord{domain.Notes: "x"})

	a.Write(domain.FormRecord{domain.Notes: ""})

	assert.Equal(t, "", a.Read()[domain.Notes])
}

func TestAccessor_ApplyValidation_FlagsAndClears(t *testing.T) {
	s := form.NewMemorySurface()
	a := form.NewAccessor(s)

	a.ApplyValidation(domain.ValidationOutcome{
		Failed: []domain.FieldID{domain.TripDate, domain.TotalKM},
	})
	assertBorder(t, s, domain.TripDate, form.ErrorBorderColor)
	assertBorder(t, s, domain.TotalKM, form.ErrorBorderColor)
	assertBorder(t, s, domain.ReturnTime, "")

	a.ApplyValidation(domain.ValidationOutcome{Valid: true})
	assertBorder(t, s, domain.TripDate, "")
	assertBorder(t, s, domain.TotalKM, "")
}

func TestAccessor_ApplyValidation_IgnoresOptionalFields(t *testing.T) {
	s := form.NewMemorySurface()
	c, _ := s.Control(domain.Notes)
	c.SetBorderColor("blue")

	form.NewAccessor(s).ApplyValidation(domain.ValidationOutcome{Valid: true})

	assert.Equal(t, "blue", c.BorderColor())
}

func TestAccessor_Input_ClearsFlagOnlyWhenNonBlank(t *testing.T) {
	s := form.NewMemorySurface()
	a := form.NewAccessor(s)
	a.ApplyValidation(domain.ValidationOutcome{Failed: []domain.FieldID{domain.TotalKM}})

	require.True(t, a.Input(domain.TotalKM, "   "))
	assertBorder(t, s, domain.TotalKM, form.ErrorBorderColor)

	require.True(t, a.Input(domain.TotalKM, "120"))
	assertBorder(t, s, domain.TotalKM, "")
	assert.Equal(t, "120", a.Read()[domain.TotalKM])
}

func TestAccessor_Input_UnknownControl(t *testing.T) {
	a := form.NewAccessor(form.NewMemorySurface(domain.TripDate))

	assert.False(t, a.Input(domain.Notes, "x"))
}

func TestAccessor_Reset(t *testing.T) {
	s := form.NewMemorySurface()
	a := form.NewAccessor(s)
	a.Write(domain.FormRecord{domain.TripDate: "2024-01-05", domain.Notes: "n"})
	a.ApplyValidation(domain.ValidationOutcome{Failed: []domain.FieldID{domain.TotalKM}})

	a.Reset()

	for _, st := range s.Snapshot() {
		assert.Empty(t, st.Value, "field %q", st.ID)
		assert.Empty(t, st.BorderColor, "field %q", st.ID)
	}
}

func TestMemorySurface_SnapshotOrder(t *testing.T) {
	s := form.NewMemorySurface(domain.Notes, domain.TripDate)

	snap := s.Snapshot()

	require.Len(t, snap, 2)
	assert.Equal(t, domain.TripDate, snap[0].ID)
	assert.Equal(t, domain.Notes, snap[1].ID)
}

func assertBorder(t *testing.T, s *form.MemorySurface, id domain.FieldID, want string) {
	t.Helper()
	c, ok := s.Control(id)
	require.True(t, ok)
	assert.Equal(t, want, c.BorderColor(), "border of %q", id)
}
