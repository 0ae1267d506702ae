package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df-tools/solrecon/pkg/models/domain"
)

// Format selects the output encoding of a reporter.
type Format string

const (
	FormatText Format = "txt"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format name from a flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatCSV:
		return Format(s), nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown export format %q, want txt, json or csv", s)
	}
}

// Reporter writes rendered reports to its writer in the configured
// format.
type Reporter struct {
	writer io.Writer
	format Format
}

// NewReporter creates a reporter. A nil writer means stdout.
func NewReporter(writer io.Writer, format Format) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	if format == "" {
		format = FormatText
	}
	return &Reporter{writer: writer, format: format}
}

func (r *Reporter) Handle(report *domain.Report) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(report)
	case FormatCSV:
		return r.writeCSV(report)
	default:
		_, err := fmt.Fprintln(r.writer, report.Text())
		return err
	}
}

// writeCSV flattens the report into section/line rows. Skipped sections
// contribute their reason as the single row.
func (r *Reporter) writeCSV(report *domain.Report) error {
	w := csv.NewWriter(r.writer)
	if err := w.Write([]string{"report", "section", "line"}); err != nil {
		return err
	}
	for _, s := range report.Sections {
		lines := s.Lines
		if s.Skipped {
			lines = []string{s.Reason}
		}
		for _, line := range lines {
			if err := w.Write([]string{report.Name, s.Title, line}); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}
