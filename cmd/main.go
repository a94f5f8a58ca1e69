package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exec executes the main command.
func Exec() {
	cmd := &cobra.Command{
		Use: "glint",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(os.Stderr, cmd.UsageString())
		},
	}

	cmd.AddCommand(demoCommand())
	cmd.AddCommand(versionCommand())

	_ = cmd.Execute()
}
