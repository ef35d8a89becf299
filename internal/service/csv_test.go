package service_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-report/internal/domain"
	"github.com/pkordes/trip-report/internal/service"
)

const bom = "\uFEFF"

func strPtr(s string) *string { return &s }

func TestEscapeCSV(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want string
	}{
		{"nil", nil, ""},
		{"empty", strPtr(""), ""},
		{"plain", strPtr("Nguyen Van A"), "Nguyen Van A"},
		{"comma", strPtr("Đi, về"), `"Đi, về"`},
		{"quote", strPtr(`say "hi"`), `"say ""hi"""`},
		{"newline", strPtr("a\nb"), "\"a\nb\""},
		{"leading space untouched", strPtr(" x"), " x"},
		{"carriage return untouched", strPtr("a\rb"), "a\rb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.EscapeCSV(tt.in))
		})
	}
}

func TestGenerateCSV_Shape(t *testing.T) {
	doc, err := service.GenerateCSV(domain.FormRecord{})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(doc, bom), "document must start with BOM")
	assert.Equal(t, 1, strings.Count(doc, bom), "exactly one BOM")
	assert.False(t, strings.HasSuffix(doc, "\n"), "no trailing newline")

	rows := strings.Split(strings.TrimPrefix(doc, bom), "\n")
	require.Len(t, rows, 2)
	assert.Len(t, strings.Split(rows[0], ","), 22)
	assert.Len(t, strings.Split(rows[1], ","), 22)
	assert.Equal(t, strings.Join(domain.Headers(), ","), rows[0])
}

func TestGenerateCSV_Scenario(t *testing.T) {
	doc, err := service.GenerateCSV(scenarioRecord())
	require.NoError(t, err)

	rows := strings.Split(strings.TrimPrefix(doc, bom), "\n")
	require.Len(t, rows, 2)

	want := "2024-01-05,08:00,17:30," +
		strings.Repeat(",", 14) + // overtime .. last_dropoff_location
		"120,,,Nguyen Van A," +
		`"Đi, về đúng giờ"`
	assert.Equal(t, want, rows[1])
}

func TestGenerateCSV_QuotedValuesKeepRowCount(t *testing.T) {
	rec := domain.FormRecord{domain.Notes: "line one\nline two", domain.PassengerNames: `An "Bé", Bình`}

	doc, err := service.GenerateCSV(rec)
	require.NoError(t, err)

	assert.Contains(t, doc, `"An ""Bé"", Bình"`)
	assert.True(t, strings.HasSuffix(doc, "\"line one\nline two\""))
}

// TestGenerateCSV_InvalidUTF8Replaced pins that malformed bytes are written
// as U+FFFD instead of failing the export.
func TestGenerateCSV_InvalidUTF8Replaced(t *testing.T) {
	doc, err := service.GenerateCSV(domain.FormRecord{domain.Notes: "a\xffb"})

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(doc, ",a\uFFFDb"))
	assert.True(t, utf8.ValidString(doc))
}

func TestExportFilename(t *testing.T) {
	ts := time.Date(2024, 1, 5, 7, 3, 9, 0, time.UTC)

	assert.Equal(t, "BaoCao_HanhTrinh_2024-01-05_070309.csv", service.ExportFilename(ts))
}

func TestCSVExporter_Build(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	now := func() time.Time { return time.Date(2024, 1, 5, 20, 30, 0, 0, time.UTC) }
	exp := service.NewCSVExporter(loc, now)

	f, err := exp.Build(scenarioRecord())

	require.NoError(t, err)
	// 20:30 UTC is already the next day in UTC+7.
	assert.Equal(t, "BaoCao_HanhTrinh_2024-01-06_033000.csv", f.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", f.ContentType)
	assert.True(t, strings.HasPrefix(string(f.Content), bom))
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, f.Content[:3])
}
