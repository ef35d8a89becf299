package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-report/internal/domain"
	"github.com/pkordes/trip-report/internal/service"
)

// scenarioRecord is the record from the reference scenario: every required
// field filled, a note containing a comma, all other fields empty.
func scenarioRecord() domain.FormRecord {
	return domain.FormRecord{
		domain.TripDate:        "2024-01-05",
		domain.DepartureTime:   "08:00",
		domain.ReturnTime:      "17:30",
		domain.TotalKM:         "120",
		domain.DriverSignature: "Nguyen Van A",
		domain.Notes:           "Đi, về đúng giờ",
	}
}

func newValidator(t *testing.T) *service.Validator {
	t.Helper()
	v, err := service.NewValidator()
	require.NoError(t, err)
	return v
}

// compile-time check.
var _ service.RecordValidator = (*service.Validator)(nil)

func TestValidate_AllRequiredPresent(t *testing.T) {
	got := newValidator(t).Validate(scenarioRecord())

	assert.True(t, got.Valid)
	assert.Empty(t, got.Missing)
	assert.Empty(t, got.Failed)
}

func TestValidate_AllRequiredEmpty(t *testing.T) {
	got := newValidator(t).Validate(domain.FormRecord{})

	assert.False(t, got.Valid)
	assert.Equal(t, []string{
		"Ngày đi",
		"Thời gian đi từ bãi xe",
		"Thời gian về bãi xe",
		"Số KM đi được",
		"Chữ ký Xác nhận tài xế",
	}, got.Missing)
	assert.Equal(t, []domain.FieldID{
		domain.TripDate, domain.DepartureTime, domain.ReturnTime,
		domain.TotalKM, domain.DriverSignature,
	}, got.Failed)
}

func TestValidate_WhitespaceCountsAsEmpty(t *testing.T) {
	rec := scenarioRecord()
	rec[domain.TotalKM] = " \t\n "

	got := newValidator(t).Validate(rec)

	assert.False(t, got.Valid)
	assert.Equal(t, []string{"Số KM đi được"}, got.Missing)
}

func TestValidate_OptionalFieldsIgnored(t *testing.T) {
	rec := scenarioRecord()
	rec[domain.Notes] = ""
	rec[domain.Overtime] = "   "

	assert.True(t, newValidator(t).Validate(rec).Valid)
}

// TestValidate_InvalidIffAnyRequiredEmpty walks every subset of the five
// required fields and checks that exactly the emptied ones are reported.
func TestValidate_InvalidIffAnyRequiredEmpty(t *testing.T) {
	required := domain.RequiredFields()
	v := newValidator(t)

	for mask := 0; mask < 1<<len(required); mask++ {
		rec := scenarioRecord()
		var want []string
		for i, f := range required {
			if mask&(1<<i) != 0 {
				rec[f.ID] = ""
				want = append(want, f.Header)
			}
		}

		got := v.Validate(rec)

		assert.Equal(t, mask == 0, got.Valid, "mask %05b", mask)
		if want == nil {
			want = []string{}
		}
		assert.Equal(t, want, got.Missing, "mask %05b", mask)
	}
}

func TestMissingFieldsMessage(t *testing.T) {
	msg := service.MissingFieldsMessage(domain.ValidationOutcome{
		Missing: []string{"Ngày đi", "Số KM đi được"},
	})

	assert.Equal(t, "Vui lòng điền đầy đủ các trường bắt buộc: Ngày đi, Số KM đi được", msg)
}
