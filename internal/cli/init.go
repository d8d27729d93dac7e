package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"prship.dev/prship/internal/config"
	"prship.dev/prship/internal/git"
	"prship.dev/prship/internal/tui"
)

// inferTrunk picks the most likely trunk from the repo's branches
func inferTrunk(branchNames []string) string {
	for _, candidate := range []string{"main", "master", "trunk", "develop"} {
		for _, name := range branchNames {
			if name == candidate {
				return candidate
			}
		}
	}
	return ""
}

func selectTrunkBranch(branchNames []string, inferred string, interactive bool) (string, error) {
	if !interactive {
		if inferred != "" {
			return inferred, nil
		}
		return "", fmt.Errorf("could not infer trunk branch; pass an existing branch name with --trunk or run in interactive mode")
	}

	prompt := &survey.Select{
		Message: "Select your trunk branch:",
		Options: branchNames,
	}
	if inferred != "" {
		prompt.Default = inferred
	}

	var trunk string
	if err := survey.AskOne(prompt, &trunk); err != nil {
		return "", fmt.Errorf("trunk selection cancelled: %w", err)
	}
	return trunk, nil
}

func newInitCmd() *cobra.Command {
	var (
		trunk       string
		useGraphite bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize prship in the current repository",
		Long: `Initialize prship in the current repository.

Records the trunk branch and the default submit backend in the repo
config stored inside .git.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := git.GetRepoRoot("")
			if err != nil {
				return fmt.Errorf("not a git repository: %w", err)
			}

			splog := tui.NewSplog()
			defer splog.Close()

			if trunk == "" {
				branchNames, err := git.ListBranches(repoRoot)
				if err != nil {
					return fmt.Errorf("failed to list branches: %w", err)
				}
				if len(branchNames) == 0 {
					return fmt.Errorf("no branches found; create your first commit and re-run prship init")
				}

				trunk, err = selectTrunkBranch(branchNames, inferTrunk(branchNames), tui.IsInteractive())
				if err != nil {
					return err
				}
			}

			if err := config.SetTrunk(repoRoot, trunk); err != nil {
				return fmt.Errorf("failed to write repo config: %w", err)
			}
			if cmd.Flags().Changed("use-graphite") {
				if err := config.SetUseGraphite(repoRoot, useGraphite); err != nil {
					return fmt.Errorf("failed to write repo config: %w", err)
				}
			}

			splog.Info("Initialized prship with trunk '%s'", trunk)
			return nil
		},
	}

	cmd.Flags().StringVar(&trunk, "trunk", "", "The name of your trunk branch.")
	cmd.Flags().BoolVar(&useGraphite, "use-graphite", false, "Submit through the Graphite stacking tool by default.")

	return cmd
}
