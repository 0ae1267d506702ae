package domain

import (
	"strings"
	"time"
)

// Report represents one fully formatted query result.
type Report struct {
	// Name is the stable machine name of the report family (e.g. "weekly").
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	Sections    []Section `json:"sections"`
}

// Section is one logical block of a report. A section either rendered its
// lines or was skipped with a reason; a skipped section still contributes
// its reason line to the text output, so one bad sub-record list never
// suppresses the rest of the report.
type Section struct {
	Title   string   `json:"title,omitempty"`
	Lines   []string `json:"lines,omitempty"`
	Skipped bool     `json:"skipped,omitempty"`
	Reason  string   `json:"reason,omitempty"`
}

// Text renders the report as a single newline-joined block, sections
// separated by blank lines. Rendering the same report twice yields
// byte-identical output.
func (r *Report) Text() string {
	var blocks []string

	if r.Title != "" {
		head := "=== " + r.Title + " ==="
		if !r.GeneratedAt.IsZero() {
			head += "\n生成时间: " + r.GeneratedAt.Format("2006-01-02 15:04:05")
		}
		blocks = append(blocks, head)
	}

	for _, s := range r.Sections {
		var lines []string
		if s.Title != "" {
			lines = append(lines, "=== "+s.Title+" ===")
		}
		if s.Skipped {
			lines = append(lines, s.Reason)
		} else {
			lines = append(lines, s.Lines...)
		}
		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}

	return strings.Join(blocks, "\n\n")
}
