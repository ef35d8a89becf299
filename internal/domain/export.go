package domain

// CSVContentType is the MIME type of an exported report.
const CSVContentType = "text/csv; charset=utf-8"

// CSVFile is a generated report ready to be handed to a download mechanism.
// It is built once per export and not retained.
type CSVFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
