package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/df-tools/solrecon/pkg/runtime/terminal/export"
	"github.com/df-tools/solrecon/pkg/services/report"
)

type QueryCmd struct {
	profileFlags
	mode     string
	statDate string
	area     string
	format   string
	registry report.Registry
	output   io.Writer
}

func NewQueryCmd(registry report.Registry, output io.Writer) *cobra.Command {
	qc := &QueryCmd{registry: registry, output: output}
	cmd := &cobra.Command{
		Use:   "query <report>",
		Short: "Query one report and print it",
		Args:  cobra.ExactArgs(1),
		RunE:  qc.run,
	}

	cmd.Flags().StringVar(&qc.configPath, "config", "config.ini", "Path to the credential profile file")
	cmd.Flags().StringVar(&qc.profile, "profile", "default", "Credential profile to use")
	cmd.Flags().StringVar(&qc.settingsPath, "settings", "", "Path to the settings file")
	cmd.Flags().StringVar(&qc.mode, "mode", "sol", "Battle mode (sol or mp)")
	cmd.Flags().StringVar(&qc.statDate, "date", "", "Weekly stat date (YYYYMMDD, defaults to the last Sunday)")
	cmd.Flags().StringVar(&qc.area, "area", "", "Server area code")
	cmd.Flags().StringVar(&qc.format, "format", "txt", "Output format (txt, json or csv)")

	return cmd
}

func (qc *QueryCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	outFormat, err := export.ParseFormat(qc.format)
	if err != nil {
		return err
	}

	deps, settings, err := qc.buildDeps(ctx)
	if err != nil {
		return err
	}
	area := qc.area
	if area == "" {
		area = settings.Area
	}

	ctrl, err := qc.registry.Create(args[0], deps)
	if err != nil {
		return fmt.Errorf("unknown report %q. Available reports: %v", args[0], qc.registry.ListReports())
	}

	rep, err := ctrl.Fetch(ctx, report.Query{
		Mode:     qc.mode,
		StatDate: qc.statDate,
		Area:     area,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch report %q: %w", args[0], err)
	}

	return export.NewReporter(qc.output, outFormat).Handle(rep)
}
