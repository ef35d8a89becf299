package service

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"

	"github.com/pkordes/trip-report/internal/domain"
)

// EscapeCSV quotes v when it contains a comma, a double quote or a line
// feed, doubling inner quotes. A nil value becomes the empty string.
func EscapeCSV(v *string) string {
	if v == nil {
		return ""
	}
	return escapeCell(*v)
}

func escapeCell(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func joinRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = escapeCell(c)
	}
	return strings.Join(escaped, ",")
}

// GenerateCSV renders rec as a two-row CSV document: a UTF-8 byte order
// mark, the header row, a line feed and the value row. There is no trailing
// newline. Fields missing from rec become empty cells.
//
// Bytes in rec that are not valid UTF-8 are written as U+FFFD rather than
// rejected, so the file always opens as UTF-8. Values arriving through the
// JSON API are already valid. The error is the encoder's own contract and
// is nil for every input the x/text UTF-8 encoder currently accepts.
func GenerateCSV(rec domain.FormRecord) (string, error) {
	ids := domain.FieldIDs()
	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = rec[id]
	}

	body := joinRow(domain.Headers()) + "\n" + joinRow(values)

	// The BOM lets spreadsheet applications detect UTF-8.
	doc, err := unicode.UTF8BOM.NewEncoder().String(body)
	if err != nil {
		return "", fmt.Errorf("service.GenerateCSV: %w", err)
	}
	return doc, nil
}

// ExportFilename returns the download name for a report exported at t.
// t is used as given, so callers pass it in the zone the user expects.
func ExportFilename(t time.Time) string {
	return "BaoCao_HanhTrinh_" + t.Format("2006-01-02") + "_" + t.Format("150405") + ".csv"
}

// CSVExporter builds downloadable report files.
type CSVExporter struct {
	loc *time.Location
	now func() time.Time
}

// NewCSVExporter returns an exporter that stamps filenames with the time in
// loc. A nil loc means time.Local and a nil now means time.Now.
func NewCSVExporter(loc *time.Location, now func() time.Time) *CSVExporter {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &CSVExporter{loc: loc, now: now}
}

// Build renders rec into a CSVFile named after the current time.
func (e *CSVExporter) Build(rec domain.FormRecord) (domain.CSVFile, error) {
	doc, err := GenerateCSV(rec)
	if err != nil {
		return domain.CSVFile{}, fmt.Errorf("service.CSVExporter.Build: %w", err)
	}
	return domain.CSVFile{
		Filename:    ExportFilename(e.now().In(e.loc)),
		ContentType: domain.CSVContentType,
		Content:     []byte(doc),
	}, nil
}
