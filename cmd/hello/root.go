package main

import (
	"fmt"
	"io"

	fixtures "github.com/Hydepwns/raxol-fixtures"
	"github.com/spf13/cobra"
)

// The harness contract defines no flags, so flag parsing stays off and
// every argument reaches the greeting verbatim, dashes included.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "hello [name]",
		Short:              "Print the greeting fixture output",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), fixtures.Run(args...))
		},
	}
}

// runHello routes one fixture invocation to the greeting. cobra
// reserves the __complete tokens and dispatches its hidden completion
// command before the root Run fires, with no off switch, so those two
// names are greeted directly instead of going through Execute.
func runHello(out io.Writer, args []string) error {
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		_, err := fmt.Fprintln(out, fixtures.Run(args...))

		return err
	}

	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetArgs(args)

	return cmd.Execute()
}
