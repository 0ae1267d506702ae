package main

import (
	"fmt"
	"os"

	"github.com/df-tools/solrecon/pkg/runtime/terminal"
	"github.com/df-tools/solrecon/pkg/services/report"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: report.NewRegistry(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
