package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/df-tools/solrecon/pkg/services/config"
)

type ProfilesCmd struct {
	configPath string
	output     io.Writer
}

func NewProfilesCmd(output io.Writer) *cobra.Command {
	pc := &ProfilesCmd{output: output}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List credential profiles",
		RunE:  pc.run,
	}
	cmd.Flags().StringVar(&pc.configPath, "config", "config.ini", "Path to the credential profile file")
	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, args []string) error {
	registry, err := config.NewRegistry(pc.configPath)
	if err != nil {
		return fmt.Errorf("failed to load profiles from %s: %w", pc.configPath, err)
	}
	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return fmt.Errorf("no profiles found in %s", pc.configPath)
	}
	_, err = fmt.Fprintln(pc.output, strings.Join(profiles, "\n"))
	return err
}
