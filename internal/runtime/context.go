package runtime

import (
	"context"
	"fmt"
	"path/filepath"

	"prship.dev/prship/internal/config"
	"prship.dev/prship/internal/git"
	"prship.dev/prship/internal/github"
	"prship.dev/prship/internal/graphite"
	"prship.dev/prship/internal/tui"
)

// Context provides access to the gateways and output for commands
type Context struct {
	Git      git.Runner
	GitHub   github.Client
	Graphite graphite.Client
	Splog    *tui.Splog
	RepoRoot string
}

// NewContext creates a context around an already-constructed git runner.
// Used by tests and by commands that do not need the network gateways.
func NewContext(runner git.Runner, repoRoot string) *Context {
	return &Context{
		Git:      runner,
		Splog:    tui.NewSplog(),
		RepoRoot: repoRoot,
	}
}

// GetContext builds the runtime context for the current working directory.
// It requires a git repository that has been initialized with 'prship init'.
// Output is mirrored to a rotating file log at .git/.prship_log.
// A missing GitHub token leaves Context.GitHub nil; commands that need it
// report their own error through RequireGitHub.
func GetContext(ctx context.Context) (*Context, error) {
	repoRoot, err := git.GetRepoRoot("")
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	if !config.IsInitialized(repoRoot) {
		return nil, fmt.Errorf("prship not initialized. Run 'prship init' first")
	}

	rc := NewContext(git.NewRunner(repoRoot), repoRoot)
	if splog, err := tui.NewSplogWithConfig(filepath.Join(repoRoot, ".git", ".prship_log")); err == nil {
		rc.Splog = splog
	}
	rc.Graphite = graphite.NewCLIClient(repoRoot)

	if gh, err := github.NewRealClient(ctx, repoRoot); err == nil {
		rc.GitHub = gh
	}

	return rc, nil
}

// RequireGitHub returns the GitHub client or a user-facing error when no
// authentication was available at startup
func (c *Context) RequireGitHub() (github.Client, error) {
	if c.GitHub == nil {
		return nil, fmt.Errorf("GitHub authentication unavailable: set GITHUB_TOKEN or run 'gh auth login'")
	}
	return c.GitHub, nil
}
