// Package ai provides AI-assisted generation of pull request titles and
// bodies from branch context and diff content.
package ai

import (
	"context"
)

// PRContext contains the information available for PR description generation
type PRContext struct {
	BranchName       string
	ParentBranchName string
	TrunkBranchName  string
	CommitMessages   []string
	CodeDiff         string
	ChangedFiles     []string
}

// Client defines the interface for AI-powered PR description generation.
//
// GeneratePRDescription should use the PRContext to build a prompt, call the
// AI service, and parse the response into a title and body suitable for PR
// creation. Implementations may handle rate limiting and retries as
// appropriate for their service; callers treat any error as "no AI output"
// and fall back to synthesized metadata.
type Client interface {
	// GeneratePRDescription generates a PR title and body from the provided
	// context. The context parameter is used for cancellation and timeouts.
	GeneratePRDescription(ctx context.Context, prContext *PRContext) (title string, body string, err error)
}
