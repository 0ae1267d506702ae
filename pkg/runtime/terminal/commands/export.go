package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/df-tools/solrecon/pkg/runtime/terminal/export"
	"github.com/df-tools/solrecon/pkg/services/report"
)

type ExportCmd struct {
	profileFlags
	mode     string
	statDate string
	area     string
	format   string
	outPath  string
	reports  []string
	registry report.Registry
	output   io.Writer
}

// NewExportCmd builds the command that queries every registered report
// and writes them as one document.
func NewExportCmd(registry report.Registry, output io.Writer) *cobra.Command {
	ec := &ExportCmd{registry: registry, output: output}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Query all reports and export them as one document",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.configPath, "config", "config.ini", "Path to the credential profile file")
	cmd.Flags().StringVar(&ec.profile, "profile", "default", "Credential profile to use")
	cmd.Flags().StringVar(&ec.settingsPath, "settings", "", "Path to the settings file")
	cmd.Flags().StringVar(&ec.mode, "mode", "sol", "Battle mode (sol or mp)")
	cmd.Flags().StringVar(&ec.statDate, "date", "", "Weekly stat date (YYYYMMDD, defaults to the last Sunday)")
	cmd.Flags().StringVar(&ec.area, "area", "", "Server area code")
	cmd.Flags().StringVar(&ec.format, "format", "", "Output format (txt, json or csv; default from settings)")
	cmd.Flags().StringVar(&ec.outPath, "out", "", "Output file (default stdout)")
	cmd.Flags().StringSliceVar(&ec.reports, "reports", nil, "Report types to export (default all)")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()
	log := zerolog.Ctx(ctx)

	deps, settings, err := ec.buildDeps(ctx)
	if err != nil {
		return err
	}
	area := ec.area
	if area == "" {
		area = settings.Area
	}
	formatName := ec.format
	if formatName == "" {
		formatName = settings.ExportFormat
	}
	outFormat, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	names := ec.reports
	if len(names) == 0 {
		names = ec.registry.ListReports()
	}

	batch := &export.Batch{
		GeneratedAt: time.Now(),
		Errors:      make(map[string]string),
	}
	for _, name := range names {
		ctrl, err := ec.registry.Create(name, deps)
		if err != nil {
			batch.Errors[name] = err.Error()
			continue
		}
		rep, err := ctrl.Fetch(ctx, report.Query{
			Mode:     ec.mode,
			StatDate: ec.statDate,
			Area:     area,
		})
		if err != nil {
			log.Warn().Err(err).Str("report", name).Msg("report export failed")
			batch.Errors[name] = err.Error()
			continue
		}
		batch.Reports = append(batch.Reports, rep)
	}

	out := ec.output
	if ec.outPath != "" {
		f, err := os.Create(ec.outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return export.NewReporter(out, outFormat).HandleBatch(batch)
}
