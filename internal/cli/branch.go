package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"prship.dev/prship/internal/branches"
	"prship.dev/prship/internal/config"
	"prship.dev/prship/internal/graphite"
	"prship.dev/prship/internal/runtime"
)

// newBranchCmd groups the branch management subcommands
func newBranchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Create, check out, delete, and track branches",
	}

	cmd.AddCommand(newBranchCreateCmd())
	cmd.AddCommand(newBranchCheckoutCmd())
	cmd.AddCommand(newBranchDeleteCmd())
	cmd.AddCommand(newBranchTrackCmd())

	return cmd
}

// branchManager picks the branch backend the same way submit does: the
// --stack flag wins, otherwise the repo config decides
func branchManager(cmd *cobra.Command, rc *runtime.Context, stack bool) (branches.Manager, error) {
	useGraphite := stack
	if !cmd.Flags().Changed("stack") {
		var err error
		useGraphite, err = config.GetUseGraphite(rc.RepoRoot)
		if err != nil {
			return nil, err
		}
	}

	if useGraphite {
		if !graphite.IsInstalled() {
			return nil, fmt.Errorf("the Graphite backend requires the gt CLI on PATH")
		}
		return branches.NewGraphiteManager(rc.Git, rc.Graphite), nil
	}
	return branches.NewPlainManager(rc.Git), nil
}

func newBranchCreateCmd() *cobra.Command {
	var (
		base  string
		stack bool
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a branch off the trunk or a given base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}
			defer rc.Splog.Close()

			if base == "" {
				base, err = config.GetTrunk(rc.RepoRoot)
				if err != nil {
					return err
				}
			}

			mgr, err := branchManager(cmd, rc, stack)
			if err != nil {
				return err
			}

			result, err := mgr.CreateBranch(cmd.Context(), args[0], base)
			if err != nil {
				return err
			}
			if result == branches.BranchAlreadyExists {
				rc.Splog.Info("Branch '%s' already exists", args[0])
			} else {
				rc.Splog.Info("Created branch '%s' off '%s'", args[0], base)
			}

			return mgr.CheckoutBranch(cmd.Context(), args[0])
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Base branch to create from. Defaults to the trunk.")
	cmd.Flags().BoolVarP(&stack, "stack", "s", false, "Register the branch with the Graphite stacking tool.")

	return cmd
}

func newBranchCheckoutCmd() *cobra.Command {
	var stack bool

	cmd := &cobra.Command{
		Use:   "checkout <name>",
		Short: "Check out a branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}
			defer rc.Splog.Close()

			mgr, err := branchManager(cmd, rc, stack)
			if err != nil {
				return err
			}

			return mgr.CheckoutBranch(cmd.Context(), args[0])
		},
	}

	cmd.Flags().BoolVarP(&stack, "stack", "s", false, "Use the Graphite-backed branch manager.")

	return cmd
}

func newBranchDeleteCmd() *cobra.Command {
	var (
		force bool
		stack bool
	)

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}
			defer rc.Splog.Close()

			mgr, err := branchManager(cmd, rc, stack)
			if err != nil {
				return err
			}

			if err := mgr.DeleteBranch(cmd.Context(), args[0], force); err != nil {
				return fmt.Errorf("failed to delete '%s': %w", args[0], err)
			}
			rc.Splog.Info("Deleted branch '%s'", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete even if the branch is not merged into its base.")
	cmd.Flags().BoolVarP(&stack, "stack", "s", false, "Use the Graphite-backed branch manager.")

	return cmd
}

func newBranchTrackCmd() *cobra.Command {
	var (
		parent string
		stack  bool
	)

	cmd := &cobra.Command{
		Use:   "track [name]",
		Short: "Record a branch's parent with the stacking tool",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}
			defer rc.Splog.Close()

			name := ""
			if len(args) > 0 {
				name = args[0]
			} else {
				name, err = rc.Git.GetCurrentBranch(cmd.Context())
				if err != nil {
					return err
				}
			}

			if parent == "" {
				parent, err = config.GetTrunk(rc.RepoRoot)
				if err != nil {
					return err
				}
			}

			mgr, err := branchManager(cmd, rc, stack)
			if err != nil {
				return err
			}

			if err := mgr.TrackBranch(cmd.Context(), name, parent); err != nil {
				return fmt.Errorf("failed to track '%s': %w", name, err)
			}
			rc.Splog.Info("Tracking '%s' with parent '%s'", name, parent)
			return nil
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Parent branch to record. Defaults to the trunk.")
	cmd.Flags().BoolVarP(&stack, "stack", "s", false, "Use the Graphite-backed branch manager.")

	return cmd
}
