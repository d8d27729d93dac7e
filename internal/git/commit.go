package git

import (
	"context"
	"fmt"
)

// HasUncommittedChanges reports whether the working tree has staged,
// unstaged, or untracked changes.
func (r *realRunner) HasUncommittedChanges(ctx context.Context) (bool, error) {
	out, err := r.cmd.Run(ctx, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to read working tree status: %w", err)
	}
	return out != "", nil
}

// StageAll stages all changes including untracked files
func (r *realRunner) StageAll(ctx context.Context) error {
	_, err := r.cmd.Run(ctx, "add", "--all")
	if err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Commit creates a commit with the given message. Non-interactive: the
// pipeline never opens an editor.
func (r *realRunner) Commit(ctx context.Context, message string) error {
	_, err := r.cmd.Run(ctx, "commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
