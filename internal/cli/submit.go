package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"prship.dev/prship/internal/ai"
	"prship.dev/prship/internal/branches"
	"prship.dev/prship/internal/config"
	"prship.dev/prship/internal/graphite"
	"prship.dev/prship/internal/runtime"
	"prship.dev/prship/internal/submit"
	"prship.dev/prship/internal/tui"
)

// newSubmitCmd creates the submit command
func newSubmitCmd() *cobra.Command {
	var (
		stack   bool
		draft   bool
		title   string
		body    string
		labels  []string
		message string
		dryRun  bool
		useAI   bool
		edit    bool
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Commit outstanding work, push the branch, and open or update its pull request",
		Long: `Commit outstanding work, push the current branch, and open or update its
pull request.

The same pipeline runs against one of two backends: plain git push
(default) or the Graphite stacking tool (--stack). Resubmitting a branch
that already has an open pull request updates it in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}
			defer rc.Splog.Close()

			userCfg, err := config.GetUserConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("quiet") {
				quiet = userCfg.Quiet
			}
			rc.Splog.SetQuiet(quiet)

			useGraphite := stack
			if !cmd.Flags().Changed("stack") {
				useGraphite, err = config.GetUseGraphite(rc.RepoRoot)
				if err != nil {
					return err
				}
			}

			if !cmd.Flags().Changed("draft") {
				draft, err = config.GetDraft(rc.RepoRoot)
				if err != nil {
					return err
				}
			}

			defaultLabels, err := config.GetDefaultLabels(rc.RepoRoot)
			if err != nil {
				return err
			}
			labels = append(defaultLabels, labels...)

			trunk := ""
			if repoCfg, err := config.GetRepoConfig(rc.RepoRoot); err == nil && repoCfg.Trunk != nil {
				trunk = *repoCfg.Trunk
			}

			if useGraphite && !graphite.IsInstalled() {
				return fmt.Errorf("the Graphite backend requires the gt CLI on PATH")
			}

			if dryRun {
				return reportDryRun(cmd, rc, useGraphite)
			}

			gh, err := rc.RequireGitHub()
			if err != nil {
				return err
			}

			if edit {
				if title, body, err = promptMetadata(userCfg.Editor, title, body); err != nil {
					return err
				}
			}

			opts := submit.Options{
				UseGraphite:   useGraphite,
				Trunk:         trunk,
				Draft:         draft,
				CommitMessage: message,
				Title:         title,
				Body:          body,
				Labels:        labels,
			}

			sc := &submit.Context{
				Ctx:    cmd.Context(),
				Git:    rc.Git,
				GitHub: gh,
				Splog:  rc.Splog,
				UI:     tui.NewSubmitUI(rc.Splog),
				Opts:   opts,
			}
			if useGraphite {
				sc.Graphite = rc.Graphite
				sc.Branches = branches.NewGraphiteManager(rc.Git, rc.Graphite)
			} else {
				sc.Branches = branches.NewPlainManager(rc.Git)
			}
			if enabled := aiEnabled(cmd, rc.RepoRoot, useAI); enabled {
				client, err := ai.NewAgentClient(userCfg.AICommand)
				if err != nil {
					rc.Splog.Warn("AI generation unavailable: %v", err)
				} else {
					sc.AI = client
				}
			}

			st, serr := submit.Run(sc)
			if serr != nil {
				rc.Splog.Error("Submit failed: %s", serr.Message)
				return serr
			}

			rc.Splog.Newline()
			rc.Splog.Info("Submitted %s: %s", st.Branch, st.PRURL)
			if st.GraphiteURL != "" {
				rc.Splog.Info("Stack: %s", st.GraphiteURL)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&stack, "stack", "s", false, "Submit through the Graphite stacking tool.")
	cmd.Flags().BoolVarP(&draft, "draft", "d", false, "Create the pull request as a draft.")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Pull request title. Skips generation.")
	cmd.Flags().StringVarP(&body, "body", "b", "", "Pull request description. Skips generation.")
	cmd.Flags().StringArrayVarP(&labels, "label", "l", nil, "Label to add to the pull request. May be repeated.")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message for uncommitted changes.")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be submitted and exit without pushing or opening PRs.")
	cmd.Flags().BoolVar(&useAI, "ai", false, "Generate the PR title and description with the configured AI agent.")
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Input pull request metadata interactively.")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output.")

	return cmd
}

// aiEnabled resolves the --ai flag against the submit.ai repo config
func aiEnabled(cmd *cobra.Command, repoRoot string, flag bool) bool {
	if cmd.Flags().Changed("ai") {
		return flag
	}
	enabled, err := config.GetSubmitAI(repoRoot)
	if err != nil {
		return false
	}
	return enabled
}

// promptMetadata asks for title and description, keeping flag values as
// defaults. A configured editor opens the description in it instead of the
// inline multiline prompt.
func promptMetadata(editor, title, body string) (string, string, error) {
	if !tui.IsInteractive() {
		return title, body, nil
	}

	titlePrompt := &survey.Input{
		Message: "Pull request title:",
		Default: title,
	}
	if err := survey.AskOne(titlePrompt, &title); err != nil {
		return "", "", fmt.Errorf("cancelled: %w", err)
	}

	var bodyPrompt survey.Prompt
	if editor != "" {
		bodyPrompt = &survey.Editor{
			Message:       "Pull request description:",
			Default:       body,
			AppendDefault: true,
			HideDefault:   true,
			FileName:      "PR_DESCRIPTION*.md",
			Editor:        editor,
		}
	} else {
		bodyPrompt = &survey.Multiline{
			Message: "Pull request description:",
			Default: body,
		}
	}
	if err := survey.AskOne(bodyPrompt, &body); err != nil {
		return "", "", fmt.Errorf("cancelled: %w", err)
	}

	return title, body, nil
}

// reportDryRun prints what a submit would do without performing any writes
func reportDryRun(cmd *cobra.Command, rc *runtime.Context, useGraphite bool) error {
	ctx := cmd.Context()

	branch, err := rc.Git.GetCurrentBranch(ctx)
	if err != nil {
		return err
	}
	trunk, err := config.GetTrunk(rc.RepoRoot)
	if err != nil {
		return err
	}

	backend := "git push"
	if useGraphite {
		backend = "Graphite stack submit"
	}

	rc.Splog.Info("Would submit '%s' against '%s' via %s", branch, trunk, backend)

	dirty, err := rc.Git.HasUncommittedChanges(ctx)
	if err != nil {
		return err
	}
	if dirty {
		rc.Splog.Info("Would commit uncommitted changes first")
	}

	return nil
}
