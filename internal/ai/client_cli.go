package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// defaultAgentBinary is the coding-agent CLI used for generation when the
// user config does not name one. The -p flag runs it in non-interactive
// print mode.
const defaultAgentBinary = "claude"

// AgentClient implements Client using a local coding-agent CLI
type AgentClient struct {
	binary string
}

// NewAgentClient creates an AgentClient running the given command, failing
// if it is not on PATH. An empty command selects the default agent CLI.
func NewAgentClient(command string) (*AgentClient, error) {
	if command == "" {
		command = defaultAgentBinary
	}
	if _, err := exec.LookPath(command); err != nil {
		return nil, fmt.Errorf("%s CLI not available in PATH", command)
	}
	return &AgentClient{binary: command}, nil
}

// GeneratePRDescription generates a PR title and body from the provided context
func (c *AgentClient) GeneratePRDescription(ctx context.Context, prContext *PRContext) (string, string, error) {
	prompt := BuildPrompt(prContext)

	response, err := c.callAgentCLI(ctx, prompt)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate PR description: %w", err)
	}

	title, body := ParsePRResponse(response)
	if title == "" {
		return "", "", fmt.Errorf("generated empty PR title")
	}
	return title, body, nil
}

func (c *AgentClient) callAgentCLI(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, "-p", prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return "", fmt.Errorf("%s not found in PATH", c.binary)
		}

		var errorMsg strings.Builder
		fmt.Fprintf(&errorMsg, "%s failed", c.binary)
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			fmt.Fprintf(&errorMsg, " with exit code %d", exitError.ExitCode())
		}
		fmt.Fprintf(&errorMsg, ": %v", err)
		if stderr.Len() > 0 {
			fmt.Fprintf(&errorMsg, "\nstderr:\n%s", stderr.String())
		}
		return "", errors.New(errorMsg.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}
