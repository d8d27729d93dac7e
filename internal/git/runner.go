package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	prshiperrors "prship.dev/prship/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner rooted at workingDir.
// An empty workingDir runs commands in the current directory.
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, args...)
}

// RunRaw executes a git command and returns the raw output (no trimming)
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, false, args...)
}

// RunLines executes a git command and returns its output as lines
func (r *CommandRunner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

func (r *CommandRunner) runInternal(ctx context.Context, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", prshiperrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", prshiperrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

// Runner defines the git operations used by the submit pipeline and the
// branch managers. Implementations convert expected failures (non-zero
// exits, missing refs) into typed errors; they never panic for them.
type Runner interface {
	// Discovery
	GetRepoRoot() (string, error)
	GetCurrentBranch(ctx context.Context) (string, error)
	GetDefaultBranch(ctx context.Context) (string, error)
	GetRemote(ctx context.Context) string
	BranchExists(ctx context.Context, branchName string) (bool, error)

	// Revisions
	GetRevision(ctx context.Context, ref string) (string, error)
	GetRemoteRevision(ctx context.Context, remote, branchName string) (string, error)
	CommitsAhead(ctx context.Context, base, head string) (int, error)
	IsMergedInto(ctx context.Context, branchName, base string) (bool, error)

	// Working tree
	HasUncommittedChanges(ctx context.Context) (bool, error)
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error

	// Branch mutation
	CreateBranch(ctx context.Context, branchName, base string) error
	CreateAndCheckoutBranch(ctx context.Context, branchName, base string) error
	CheckoutBranch(ctx context.Context, branchName string) error
	DeleteBranch(ctx context.Context, branchName string, force bool) error

	// Remote mutation
	PushBranch(ctx context.Context, branchName, remote string, force, forceWithLease bool) error
}

// NewRunner returns a Runner that shells out to git in the given directory.
// An empty dir runs commands in the current directory.
func NewRunner(dir string) Runner {
	return &realRunner{cmd: NewCommandRunner(dir), workingDir: dir}
}

// realRunner implements Runner with a CommandRunner plus go-git for read-side
// repository discovery.
type realRunner struct {
	cmd        *CommandRunner
	workingDir string
}
