// Command sitectl runs operator tasks: schema migrations, seeding, admin
// credential hashing, email smoke tests and contact backup inspection.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "sitectl",
	Short:         "Operator tasks for the Elextrio site backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(migrateCmd, seedCmd, hashPasswordCmd, testEmailCmd, messagesCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
