package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-report/internal/domain"
)

func TestFields_RegistryShape(t *testing.T) {
	ids := domain.FieldIDs()
	headers := domain.Headers()

	require.Len(t, ids, 22)
	require.Len(t, headers, len(ids), "headers must stay aligned with ids")
	assert.Equal(t, domain.TripDate, ids[0])
	assert.Equal(t, domain.Notes, ids[21])
	assert.Equal(t, "Ngày đi", headers[0])
	assert.Equal(t, "Ghi chú", headers[21])

	seen := map[domain.FieldID]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate field id %q", id)
		seen[id] = true
	}
}

func TestRequiredFields_SchemaOrder(t *testing.T) {
	var got []domain.FieldID
	for _, f := range domain.RequiredFields() {
		got = append(got, f.ID)
	}

	assert.Equal(t, []domain.FieldID{
		domain.TripDate,
		domain.DepartureTime,
		domain.ReturnTime,
		domain.TotalKM,
		domain.DriverSignature,
	}, got)
}

func TestFields_ReturnsCopy(t *testing.T) {
	fields := domain.Fields()
	fields[0].Header = "changed"

	assert.Equal(t, "Ngày đi", domain.Headers()[0])
}

func TestLookupField(t *testing.T) {
	f, ok := domain.LookupField(domain.TotalKM)
	require.True(t, ok)
	assert.Equal(t, "Số KM đi được", f.Header)
	assert.True(t, f.Required)

	_, ok = domain.LookupField("odometer")
	assert.False(t, ok)
}

func TestFormRecord_Clone(t *testing.T) {
	r := domain.FormRecord{domain.Notes: "a"}
	c := r.Clone()
	c[domain.Notes] = "b"

	assert.Equal(t, "a", r[domain.Notes])
	assert.Nil(t, domain.FormRecord(nil).Clone())
}
