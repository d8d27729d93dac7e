// Package cli defines the prship command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prship",
		Short: "Prship turns local changes into published pull requests in one command",
		Long: `Prship turns local changes into published pull requests in one command.

It commits outstanding work, pushes the branch (plain git or via the
Graphite stacking tool), opens or updates the pull request, and fills in
the title and description.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newSubmitCmd())
	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the prship version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("prship %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
