package branches

import (
	"context"
	"fmt"

	"prship.dev/prship/internal/git"
	"prship.dev/prship/internal/graphite"
)

// GraphiteManager manages branches through the gt CLI so the stacking tool
// knows each branch's parent. gt only tracks the checked-out branch, so
// CreateBranch checks out the new branch to register it and then restores
// the branch that was active when it was called. The working-directory
// branch after CreateBranch is therefore whatever was active before it, not
// the new branch; callers must check out explicitly.
type GraphiteManager struct {
	git      git.Runner
	graphite graphite.Client
}

// NewGraphiteManager creates a Manager backed by git and the gt CLI
func NewGraphiteManager(g git.Runner, gt graphite.Client) *GraphiteManager {
	return &GraphiteManager{git: g, graphite: gt}
}

// CreateBranch creates branchName at base and registers it with gt
func (m *GraphiteManager) CreateBranch(ctx context.Context, branchName, base string) (CreateResult, error) {
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

	original, err := m.git.GetCurrentBranch(ctx)
	if err != nil {
		return 0, err
	}

	if err := m.git.CreateAndCheckoutBranch(ctx, branchName, base); err != nil {
		return 0, err
	}

	if err := m.graphite.TrackBranch(ctx, branchName, base); err != nil {
		// Undo the half-made branch so a failed create leaves no trace
		_ = m.git.CheckoutBranch(ctx, original)
		_ = m.git.DeleteBranch(ctx, branchName, true)
		return 0, fmt.Errorf("failed to register %s with graphite: %w", branchName, err)
	}

	if err := m.git.CheckoutBranch(ctx, original); err != nil {
		return 0, fmt.Errorf("failed to restore branch %s: %w", original, err)
	}

	return BranchCreated, nil
}

// CheckoutBranch switches to branchName
func (m *GraphiteManager) CheckoutBranch(ctx context.Context, branchName string) error {
	return m.git.CheckoutBranch(ctx, branchName)
}

// DeleteBranch deletes branchName, honoring git's unmerged protection
// unless force is set
func (m *GraphiteManager) DeleteBranch(ctx context.Context, branchName string, force bool) error {
	return m.git.DeleteBranch(ctx, branchName, force)
}

// TrackBranch registers or updates the parent relationship with gt
func (m *GraphiteManager) TrackBranch(ctx context.Context, branchName, parent string) error {
	return m.graphite.TrackBranch(ctx, branchName, parent)
}
