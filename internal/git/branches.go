package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	prshiperrors "prship.dev/prship/internal/errors"
)

func (r *realRunner) GetCurrentBranch(_ context.Context) (string, error) {
	return getCurrentBranch(r.workingDir)
}

// GetDefaultBranch resolves the repository's trunk branch. It prefers the
// remote HEAD symbolic ref, then falls back to a local main/master branch.
func (r *realRunner) GetDefaultBranch(ctx context.Context) (string, error) {
	remote := r.GetRemote(ctx)

	ref, err := r.cmd.Run(ctx, "symbolic-ref", "--short", fmt.Sprintf("refs/remotes/%s/HEAD", remote))
	if err == nil && ref != "" {
		// "origin/main" -> "main"
		if idx := strings.Index(ref, "/"); idx >= 0 {
			return ref[idx+1:], nil
		}
		return ref, nil
	}

	for _, candidate := range []string{"main", "master"} {
		exists, err := r.BranchExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if exists {
			return candidate, nil
		}
	}

	return "", prshiperrors.NewBranchNotFoundError("main")
}

// GetRemote returns the remote name for the current branch, defaulting to origin.
func (r *realRunner) GetRemote(ctx context.Context) string {
	branch, err := getCurrentBranch(r.workingDir)
	if err == nil && branch != "" {
		remote, err := r.cmd.Run(ctx, "config", "--get", fmt.Sprintf("branch.%s.remote", branch))
		if err == nil && remote != "" {
			return remote
		}
	}
	return "origin"
}

func (r *realRunner) BranchExists(ctx context.Context, branchName string) (bool, error) {
	_, err := r.cmd.Run(ctx, "show-ref", "--verify", "--quiet", "refs/heads/"+branchName)
	if err != nil {
		var cmdErr *prshiperrors.GitCommandError
		if errors.As(err, &cmdErr) {
			// show-ref exits non-zero when the ref is missing
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetRevision returns the commit SHA for a ref
func (r *realRunner) GetRevision(ctx context.Context, ref string) (string, error) {
	sha, err := r.cmd.Run(ctx, "rev-parse", ref)
	if err != nil {
		return "", prshiperrors.NewBranchNotFoundError(ref)
	}
	return sha, nil
}

// GetRemoteRevision returns the commit SHA of the remote-tracking ref for a
// branch, or "" when no remote-tracking ref exists.
func (r *realRunner) GetRemoteRevision(ctx context.Context, remote, branchName string) (string, error) {
	sha, err := r.cmd.Run(ctx, "rev-parse", fmt.Sprintf("refs/remotes/%s/%s", remote, branchName))
	if err != nil {
		var cmdErr *prshiperrors.GitCommandError
		if errors.As(err, &cmdErr) {
			return "", nil
		}
		return "", err
	}
	return sha, nil
}

// CommitsAhead returns the number of commits on head that are not on base
func (r *realRunner) CommitsAhead(ctx context.Context, base, head string) (int, error) {
	out, err := r.cmd.Run(ctx, "rev-list", "--count", fmt.Sprintf("%s..%s", base, head))
	if err != nil {
		return 0, err
	}
	var count int
	if _, err := fmt.Sscanf(out, "%d", &count); err != nil {
		return 0, fmt.Errorf("failed to parse rev-list count %q: %w", out, err)
	}
	return count, nil
}

// IsMergedInto reports whether branchName is an ancestor of base, i.e. all
// of its commits are reachable from base.
func (r *realRunner) IsMergedInto(ctx context.Context, branchName, base string) (bool, error) {
	_, err := r.cmd.Run(ctx, "merge-base", "--is-ancestor", branchName, base)
	if err != nil {
		var cmdErr *prshiperrors.GitCommandError
		if errors.As(err, &cmdErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
