// Package github provides a client for interacting with the GitHub API.
package github

import (
	"context"
)

// PullRequestInfo contains information about a pull request
// This is a simplified struct to avoid coupling to go-github library
type PullRequestInfo struct {
	Number  int
	NodeID  string
	HTMLURL string
	Title   string
	Body    string
	State   string
	Draft   bool
	Base    string
	Head    string
}

// CreatePROptions contains options for creating a pull request
type CreatePROptions struct {
	Title string
	Body  string
	Head  string
	Base  string
	Draft bool
}

// UpdatePROptions contains options for updating a pull request.
// Nil fields are left unchanged.
type UpdatePROptions struct {
	Title *string
	Body  *string
	Base  *string
}

// Client is an interface for GitHub API interactions
type Client interface {
	// CreatePullRequest creates a new pull request
	CreatePullRequest(ctx context.Context, owner, repo string, opts CreatePROptions) (*PullRequestInfo, error)

	// UpdatePullRequest updates an existing pull request
	UpdatePullRequest(ctx context.Context, owner, repo string, prNumber int, opts UpdatePROptions) error

	// GetPullRequestByBranch gets the open pull request for a branch, or nil
	// if the branch has none
	GetPullRequestByBranch(ctx context.Context, owner, repo, branchName string) (*PullRequestInfo, error)

	// GetDiff returns the unified diff between base and head
	GetDiff(ctx context.Context, owner, repo, base, head string) (string, error)

	// AddLabels adds labels to a pull request
	AddLabels(ctx context.Context, owner, repo string, prNumber int, labels []string) error

	// GetOwnerRepo returns the repository owner and name
	GetOwnerRepo() (owner, repo string)
}
