package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/df-tools/solrecon/pkg/services/report"
)

type ReportsCmd struct {
	registry report.Registry
	output   io.Writer
}

func NewReportsCmd(registry report.Registry, output io.Writer) *cobra.Command {
	rc := &ReportsCmd{registry: registry, output: output}
	return &cobra.Command{
		Use:   "reports",
		Short: "List available report types",
		RunE:  rc.run,
	}
}

func (rc *ReportsCmd) run(cmd *cobra.Command, args []string) error {
	names := rc.registry.ListReports()
	if len(names) == 0 {
		return fmt.Errorf("no reports registered")
	}
	_, err := fmt.Fprintln(rc.output, strings.Join(names, "\n"))
	return err
}
