// Package branches provides the branch-management capability consumed by the
// submit pipeline. Two interchangeable implementations honor one contract: a
// plain-branch manager that works directly against git, and a Graphite-backed
// manager that additionally registers branches with the stacking tool.
// Callers never branch on which implementation they hold.
package branches

import (
	"context"

	prshiperrors "prship.dev/prship/internal/errors"
	"prship.dev/prship/internal/git"
)

// CreateResult reports the outcome of a successful CreateBranch call
type CreateResult int

const (
	// BranchCreated indicates a new branch was created at the base
	BranchCreated CreateResult = iota
	// BranchAlreadyExists indicates the branch existed and was left untouched
	BranchAlreadyExists
)

// Manager creates and manages a branch and its relationship to a base
// branch. It holds only gateway dependencies and is reusable across many
// invocations.
//
// CreateBranch refuses to branch from a base whose local and remote tips
// disagree: building on a stale local base would silently drop collaborator
// commits. The Graphite-backed implementation checks out the new branch to
// register it with the stacking tool and then restores the original branch;
// callers must not assume the working-directory branch is unchanged after
// CreateBranch and should explicitly check out the branch they need.
type Manager interface {
	// CreateBranch creates branchName at base. Returns BranchAlreadyExists
	// without side effects if the branch is already present. Returns an
	// error satisfying errors.Is(err, prshiperrors.ErrBranchDiverged) when
	// the base's local and remote tips differ.
	CreateBranch(ctx context.Context, branchName, base string) (CreateResult, error)

	// CheckoutBranch switches the working directory to branchName
	CheckoutBranch(ctx context.Context, branchName string) error

	// DeleteBranch deletes branchName. Without force, deletion fails with
	// an error satisfying errors.Is(err, prshiperrors.ErrBranchNotMerged)
	// if the branch has commits not reachable from its base.
	DeleteBranch(ctx context.Context, branchName string, force bool) error

	// TrackBranch records parent as the base of branchName. The plain
	// implementation has no parent metadata to keep and succeeds as a no-op.
	TrackBranch(ctx context.Context, branchName, parent string) error
}

// checkBaseReady verifies that base exists locally and that, if a
// remote-tracking tip exists, it matches the local tip. This is the
// divergence guard shared by both manager implementations; it runs before
// any branch-creation side effect.
func checkBaseReady(ctx context.Context, g git.Runner, base string) error {
	exists, err := g.BranchExists(ctx, base)
	if err != nil {
		return err
	}
	if !exists {
		return prshiperrors.NewBranchNotFoundError(base)
	}

	localSHA, err := g.GetRevision(ctx, base)
	if err != nil {
		return err
	}

	remote := g.GetRemote(ctx)
	remoteSHA, err := g.GetRemoteRevision(ctx, remote, base)
	if err != nil {
		return err
	}
	if remoteSHA != "" && remoteSHA != localSHA {
		return prshiperrors.NewBranchDivergedError(base, localSHA, remoteSHA)
	}

	return nil
}
