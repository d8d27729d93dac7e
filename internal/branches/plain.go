package branches

import (
	"context"

	"prship.dev/prship/internal/git"
)

// PlainManager manages branches directly against git with no stacking
// metadata. TrackBranch is a recorded no-op: plain branches carry their base
// relationship implicitly through the PR, not through local metadata.
type PlainManager struct {
	git git.Runner
}

// NewPlainManager creates a Manager backed only by git
func NewPlainManager(g git.Runner) *PlainManager {
	return &PlainManager{git: g}
}

// CreateBranch creates branchName at base without checking it out
func (m *PlainManager) CreateBranch(ctx context.Context, branchName, base string) (CreateResult, error) {
	exists, err := m.git.BranchExists(ctx, branchName)
	if err != nil {
		return 0, err
	}
	if exists {
		return BranchAlreadyExists, nil
	}

	if err := checkBaseReady(ctx, m.git, base); err != nil {
		return 0, err
	}

	if err := m.git.CreateBranch(ctx, branchName, base); err != nil {
		return 0, err
	}
	return BranchCreated, nil
}

// CheckoutBranch switches to branchName
func (m *PlainManager) CheckoutBranch(ctx context.Context, branchName string) error {
	return m.git.CheckoutBranch(ctx, branchName)
}

// DeleteBranch deletes branchName, honoring git's unmerged protection
// unless force is set
func (m *PlainManager) DeleteBranch(ctx context.Context, branchName string, force bool) error {
	return m.git.DeleteBranch(ctx, branchName, force)
}

// TrackBranch succeeds without side effects
func (m *PlainManager) TrackBranch(_ context.Context, _, _ string) error {
	return nil
}
