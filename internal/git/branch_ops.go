package git

import (
	"context"
	"fmt"
	"strings"

	prshiperrors "prship.dev/prship/internal/errors"
)

// CreateBranch creates a branch at base without checking it out. Creating a
// branch that already exists is surfaced as ErrBranchExists.
func (r *realRunner) CreateBranch(ctx context.Context, branchName, base string) error {
	_, err := r.cmd.Run(ctx, "branch", branchName, base)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return fmt.Errorf("branch %s: %w", branchName, prshiperrors.ErrBranchExists)
		}
		return fmt.Errorf("failed to create branch %s from %s: %w", branchName, base, err)
	}
	return nil
}

// CreateAndCheckoutBranch creates a branch at base and checks it out
func (r *realRunner) CreateAndCheckoutBranch(ctx context.Context, branchName, base string) error {
	_, err := r.cmd.Run(ctx, "checkout", "-b", branchName, base)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return fmt.Errorf("branch %s: %w", branchName, prshiperrors.ErrBranchExists)
		}
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CheckoutBranch checks out an existing branch
func (r *realRunner) CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := r.cmd.Run(ctx, "checkout", branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// DeleteBranch deletes a branch. Without force, git refuses to delete a
// branch whose commits are not reachable from its upstream; that refusal is
// surfaced as ErrBranchNotMerged.
func (r *realRunner) DeleteBranch(ctx context.Context, branchName string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := r.cmd.Run(ctx, "branch", flag, branchName)
	if err != nil {
		if strings.Contains(err.Error(), "not fully merged") {
			return fmt.Errorf("branch %s: %w", branchName, prshiperrors.ErrBranchNotMerged)
		}
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}
