// Package main provides the CLI entrypoint for rollstats.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zblake/rollstats/internal/parse"
	"github.com/zblake/rollstats/internal/stats"
)

var plainOutput bool

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rollstats",
		Short:         "Analyze the distribution of piped dice rolls",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runAnalyzeCmd,
	}
	rootCmd.Flags().BoolVar(&plainOutput, "plain", false, "disable color in the report")
	return rootCmd
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return noPipedInputError()
	}

	rolls, err := parse.Read(cmd.InOrStdin())
	if err != nil {
		if errors.Is(err, parse.ErrNoRolls) {
			return noRollsError()
		}
		return err
	}

	report, err := stats.Analyze(rolls)
	if err != nil {
		return err
	}
	return stats.Render(cmd.OutOrStdout(), report, !plainOutput)
}

func noPipedInputError() error {
	lines := []string{
		"no piped input detected",
		"Usage: <roller> | rollstats",
		"rollstats expects dice roll data on standard input.",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func noRollsError() error {
	lines := []string{
		"no valid dice rolls found in input",
		"Expected standalone integers 1-6 in the piped text.",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}
