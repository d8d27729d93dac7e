package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	prshiperrors "prship.dev/prship/internal/errors"
)

// PushBranch pushes a branch to remote with optional force.
// If forceWithLease is true, uses --force-with-lease (safer).
// If force is true, uses --force (overwrites remote).
// If both are false, does a normal push.
//
// A push rejected because the remote changed since it was last fetched is
// surfaced as ErrStaleRemoteInfo so callers can suggest a sync.
func (r *realRunner) PushBranch(ctx context.Context, branchName, remote string, force, forceWithLease bool) error {
	args := []string{"push", "-u", remote}

	if force {
		args = append(args, "--force")
	} else if forceWithLease {
		args = append(args, "--force-with-lease")
	}

	args = append(args, branchName)

	_, err := r.cmd.Run(ctx, args...)
	if err != nil {
		var cmdErr *prshiperrors.GitCommandError
		if errors.As(err, &cmdErr) {
			combined := cmdErr.Stderr + cmdErr.Stdout
			if strings.Contains(combined, "stale info") || strings.Contains(combined, "forced update") {
				return fmt.Errorf("push of %s rejected: %w", branchName, prshiperrors.ErrStaleRemoteInfo)
			}
		}
		return fmt.Errorf("failed to push branch %s: %w", branchName, err)
	}

	return nil
}
