// Package graphite is the stacking-tool gateway. It wraps the gt CLI, which
// tracks parent-child branch relationships and can submit an entire
// dependency chain of branches as linked pull requests in one operation.
package graphite

import (
	"context"
)

// StackPR describes one pull request created or updated by a stack submit
type StackPR struct {
	Branch string
	Number int
	URL    string
}

// SubmitStackOptions contains options for submitting a stack
type SubmitStackOptions struct {
	Branch  string
	Draft   bool
	Publish bool
}

// Client is an interface for stacking-tool interactions
type Client interface {
	// TrackBranch registers a branch with the stacking tool under the given
	// parent. The branch must be checked out when this is called.
	TrackBranch(ctx context.Context, branchName, parent string) error

	// SubmitStack pushes the branch and its ancestors and creates or updates
	// one pull request per branch, returning the PRs in stack order.
	SubmitStack(ctx context.Context, opts SubmitStackOptions) ([]StackPR, error)

	// GetStackMetadataURL returns the stack visualization URL for a pull
	// request, suitable for embedding in the PR body.
	GetStackMetadataURL(ctx context.Context, owner, repo string, prNumber int) (string, error)
}
