package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/df-tools/solrecon/pkg/models/domain"
)

// Batch collects the outcome of exporting every report in one run.
// Failed reports keep their error message so a partial export still
// says what is missing.
type Batch struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Reports     []*domain.Report  `json:"reports"`
	Errors      map[string]string `json:"errors,omitempty"`
}

// HandleBatch writes a whole batch in the reporter's format.
func (r *Reporter) HandleBatch(batch *Batch) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(batch)
	case FormatCSV:
		for _, rep := range batch.Reports {
			if err := r.writeCSV(rep); err != nil {
				return err
			}
		}
		return nil
	default:
		for i, rep := range batch.Reports {
			if i > 0 {
				if _, err := fmt.Fprintln(r.writer); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(r.writer, rep.Text()); err != nil {
				return err
			}
		}
		names := make([]string, 0, len(batch.Errors))
		for name := range batch.Errors {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if _, err := fmt.Fprintf(r.writer, "\n%s: %s\n", name, batch.Errors[name]); err != nil {
				return err
			}
		}
		return nil
	}
}
