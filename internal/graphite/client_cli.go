package graphite

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	prshiperrors "prship.dev/prship/internal/errors"
)

// DefaultCommandTimeout is the default timeout for gt commands. Stack
// submits push multiple branches, so this is longer than a single git call.
const DefaultCommandTimeout = 10 * time.Minute

// CLIClient implements Client by shelling out to the gt CLI
type CLIClient struct {
	workingDir string
}

// NewCLIClient creates a CLIClient running gt commands in workingDir
func NewCLIClient(workingDir string) *CLIClient {
	return &CLIClient{workingDir: workingDir}
}

// IsInstalled reports whether the gt CLI is available on PATH
func IsInstalled() bool {
	_, err := exec.LookPath("gt")
	return err == nil
}

func (c *CLIClient) run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "gt", args...)
	if c.workingDir != "" {
		cmd.Dir = c.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", prshiperrors.NewGraphiteCommandError(args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// TrackBranch registers the checked-out branch with gt under parent
func (c *CLIClient) TrackBranch(ctx context.Context, branchName, parent string) error {
	_, err := c.run(ctx, "track", branchName, "--parent", parent, "--force")
	if err != nil {
		return fmt.Errorf("failed to track branch %s under %s: %w", branchName, parent, err)
	}
	return nil
}

// SubmitStack submits the branch and its ancestors via gt submit
func (c *CLIClient) SubmitStack(ctx context.Context, opts SubmitStackOptions) ([]StackPR, error) {
	args := []string{"submit", "--no-edit", "--no-interactive"}
	if opts.Draft {
		args = append(args, "--draft")
	}
	if opts.Publish {
		args = append(args, "--publish")
	}
	if opts.Branch != "" {
		args = append(args, "--branch", opts.Branch)
	}

	output, err := c.run(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("gt submit failed: %w", err)
	}

	return parseSubmitOutput(output), nil
}

// GetStackMetadataURL returns the Graphite app URL for a pull request.
// It verifies gt can see the repository before handing out the link.
func (c *CLIClient) GetStackMetadataURL(ctx context.Context, owner, repo string, prNumber int) (string, error) {
	if _, err := c.run(ctx, "log", "short"); err != nil {
		return "", fmt.Errorf("gt unavailable for stack metadata: %w", err)
	}
	return fmt.Sprintf("https://app.graphite.dev/github/pr/%s/%s/%d", owner, repo, prNumber), nil
}

// submitLineRe matches gt submit result lines of the form
//
//	<branch>: https://github.com/<owner>/<repo>/pull/<number>
var submitLineRe = regexp.MustCompile(`(?m)^\s*([\w./-]+):\s+(https://[^\s]+/pull/(\d+))`)

// bareURLRe matches PR URLs that gt prints without a branch prefix
var bareURLRe = regexp.MustCompile(`(?m)(https://[^\s]+/pull/(\d+))`)

// parseSubmitOutput extracts the created/updated PRs from gt submit output
func parseSubmitOutput(output string) []StackPR {
	var prs []StackPR
	seen := make(map[int]bool)

	for _, m := range submitLineRe.FindAllStringSubmatch(output, -1) {
		number, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		prs = append(prs, StackPR{Branch: m[1], Number: number, URL: m[2]})
		seen[number] = true
	}

	for _, m := range bareURLRe.FindAllStringSubmatch(output, -1) {
		number, err := strconv.Atoi(m[2])
		if err != nil || seen[number] {
			continue
		}
		prs = append(prs, StackPR{Number: number, URL: m[1]})
		seen[number] = true
	}

	return prs
}
