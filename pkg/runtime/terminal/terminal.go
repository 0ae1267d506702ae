package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/df-tools/solrecon/pkg/runtime/terminal/commands"
	"github.com/df-tools/solrecon/pkg/services/report"
)

// CLI represents the command-line interface
type CLI struct {
	registry report.Registry
	output   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry report.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Registry == nil {
		opts.Registry = report.NewRegistry()
	}

	cli := &CLI{
		registry: opts.Registry,
		output:   opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solrecon",
		Short: "Query and render player data reports",
	}

	cmd.AddCommand(commands.NewQueryCmd(cli.registry, cli.output))
	cmd.AddCommand(commands.NewReportsCmd(cli.registry, cli.output))
	cmd.AddCommand(commands.NewExportCmd(cli.registry, cli.output))
	cmd.AddCommand(commands.NewProfilesCmd(cli.output))

	return cmd
}
