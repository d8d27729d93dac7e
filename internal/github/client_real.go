package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// diffFetchMaxRetries bounds the retry of the read-only diff fetch. Only
// idempotent GETs are retried; mutating calls go out exactly once.
const diffFetchMaxRetries = 3

// RealClient implements Client using the real GitHub API
type RealClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewRealClient creates a Client authenticated from GITHUB_TOKEN or the gh
// CLI, bound to the repository named by the origin remote of repoRoot.
func NewRealClient(ctx context.Context, repoRoot string) (*RealClient, error) {
	token, err := getToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get GitHub token: %w", err)
	}

	owner, repo, err := getRepoInfo(ctx, repoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository info: %w", err)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &RealClient{
		client: github.NewClient(tc),
		owner:  owner,
		repo:   repo,
	}, nil
}

// GetOwnerRepo returns the repository owner and name
func (c *RealClient) GetOwnerRepo() (string, string) {
	return c.owner, c.repo
}

// CreatePullRequest creates a new pull request
func (c *RealClient) CreatePullRequest(ctx context.Context, owner, repo string, opts CreatePROptions) (*PullRequestInfo, error) {
	pr := &github.NewPullRequest{
		Title: github.String(opts.Title),
		Head:  github.String(opts.Head),
		Base:  github.String(opts.Base),
		Draft: github.Bool(opts.Draft),
	}

	if opts.Body != "" {
		pr.Body = github.String(opts.Body)
	}

	createdPR, _, err := c.client.PullRequests.Create(ctx, owner, repo, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}

	return toPullRequestInfo(createdPR), nil
}

// UpdatePullRequest updates an existing pull request
func (c *RealClient) UpdatePullRequest(ctx context.Context, owner, repo string, prNumber int, opts UpdatePROptions) error {
	update := &github.PullRequest{}

	if opts.Title != nil {
		update.Title = opts.Title
	}
	if opts.Body != nil {
		update.Body = opts.Body
	}
	if opts.Base != nil {
		update.Base = &github.PullRequestBranch{
			Ref: opts.Base,
		}
	}

	_, _, err := c.client.PullRequests.Edit(ctx, owner, repo, prNumber, update)
	if err != nil {
		return fmt.Errorf("failed to update pull request: %w", err)
	}

	return nil
}

// GetPullRequestByBranch gets the open pull request for a branch
func (c *RealClient) GetPullRequestByBranch(ctx context.Context, owner, repo, branchName string) (*PullRequestInfo, error) {
	prs, _, err := c.client.PullRequests.List(ctx, owner, repo, &github.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", owner, branchName),
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests for %s: %w", branchName, err)
	}

	if len(prs) == 0 {
		return nil, nil
	}

	return toPullRequestInfo(prs[0]), nil
}

// GetDiff returns the unified diff between base and head
func (c *RealClient) GetDiff(ctx context.Context, owner, repo, base, head string) (string, error) {
	var diff string
	operation := func() error {
		raw, _, err := c.client.Repositories.CompareCommitsRaw(ctx, owner, repo, base, head, github.RawOptions{
			Type: github.Diff,
		})
		if err != nil {
			var apiErr *github.ErrorResponse
			if errors.As(err, &apiErr) && apiErr.Response != nil && !transientStatus(apiErr.Response.StatusCode) {
				return backoff.Permanent(err)
			}
			return err
		}
		diff = raw
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), diffFetchMaxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", fmt.Errorf("failed to get diff %s..%s: %w", base, head, err)
	}

	return diff, nil
}

// transientStatus reports whether an API response status is worth retrying.
// Client errors like 404 and 422 will not heal on a retry.
func transientStatus(code int) bool {
	return code >= 500 || code == http.StatusTooManyRequests
}

// AddLabels adds labels to a pull request
func (c *RealClient) AddLabels(ctx context.Context, owner, repo string, prNumber int, labels []string) error {
	if len(labels) == 0 {
		return nil
	}
	_, _, err := c.client.Issues.AddLabelsToIssue(ctx, owner, repo, prNumber, labels)
	if err != nil {
		return fmt.Errorf("failed to add labels to PR %d: %w", prNumber, err)
	}
	return nil
}

// toPullRequestInfo converts a go-github pull request to the decoupled struct
func toPullRequestInfo(pr *github.PullRequest) *PullRequestInfo {
	info := &PullRequestInfo{}
	if pr.Number != nil {
		info.Number = *pr.Number
	}
	if pr.NodeID != nil {
		info.NodeID = *pr.NodeID
	}
	if pr.HTMLURL != nil {
		info.HTMLURL = *pr.HTMLURL
	}
	if pr.Title != nil {
		info.Title = *pr.Title
	}
	if pr.Body != nil {
		info.Body = *pr.Body
	}
	if pr.State != nil {
		info.State = strings.ToUpper(*pr.State)
	}
	if pr.Draft != nil {
		info.Draft = *pr.Draft
	}
	if pr.Base != nil && pr.Base.Ref != nil {
		info.Base = *pr.Base.Ref
	}
	if pr.Head != nil && pr.Head.Ref != nil {
		info.Head = *pr.Head.Ref
	}
	return info
}

// getToken resolves a GitHub token from the environment or the gh CLI
func getToken(ctx context.Context) (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	cmd := exec.CommandContext(ctx, "gh", "auth", "token")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("GITHUB_TOKEN not set and gh auth token failed: %w", err)
	}

	token := strings.TrimSpace(stdout.String())
	if token == "" {
		return "", fmt.Errorf("empty GitHub token")
	}

	return token, nil
}

// getRepoInfo gets repository owner and name from the origin remote URL.
// Handles both https and ssh formats:
//
//	https://github.com/owner/repo.git
//	git@github.com:owner/repo.git
func getRepoInfo(ctx context.Context, repoRoot string) (string, string, error) {
	cmd := exec.CommandContext(ctx, "git", "config", "--get", "remote.origin.url")
	if repoRoot != "" {
		cmd.Dir = repoRoot
	}
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", "", fmt.Errorf("failed to read remote.origin.url: %w", err)
	}

	return parseRemoteURL(strings.TrimSpace(stdout.String()))
}

func parseRemoteURL(url string) (string, string, error) {
	url = strings.TrimSuffix(url, ".git")
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("invalid remote URL %q", url)
	}

	repoName := parts[len(parts)-1]
	var owner string
	if strings.Contains(url, "@") {
		// SSH format: git@github.com:owner/repo
		sshParts := strings.Split(url, ":")
		if len(sshParts) < 2 {
			return "", "", fmt.Errorf("invalid SSH remote URL %q", url)
		}
		pathParts := strings.Split(sshParts[1], "/")
		if len(pathParts) < 2 {
			return "", "", fmt.Errorf("invalid SSH remote URL %q", url)
		}
		owner = pathParts[0]
	} else {
		owner = parts[len(parts)-2]
	}

	return owner, repoName, nil
}
