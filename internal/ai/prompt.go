package ai

import (
	"fmt"
	"strings"
)

const (
	// maxDiffSize is the maximum size of diff to include in the prompt (in
	// characters). Larger diffs are truncated with a marker so the model
	// still sees the leading hunks.
	maxDiffSize = 50000
)

// BuildPrompt constructs the prompt for PR description generation
func BuildPrompt(prContext *PRContext) string {
	var sections []string

	sections = append(sections, "You are helping to generate a pull request description. Use the following context to create a concise title and a clear description.")

	sections = append(sections, buildBranchSection(prContext))

	if len(prContext.CommitMessages) > 0 {
		sections = append(sections, buildCommitSection(prContext.CommitMessages))
	}

	if len(prContext.ChangedFiles) > 0 {
		sections = append(sections, buildChangedFilesSection(prContext.ChangedFiles))
	}

	if prContext.CodeDiff != "" {
		sections = append(sections, buildDiffSection(prContext.CodeDiff))
	}

	sections = append(sections, buildOutputFormatSection())

	return strings.Join(sections, "\n\n")
}

func buildBranchSection(prContext *PRContext) string {
	var lines []string
	lines = append(lines, "## Branch Information")
	lines = append(lines, fmt.Sprintf("- **Branch**: %s", prContext.BranchName))
	if prContext.ParentBranchName != "" {
		lines = append(lines, fmt.Sprintf("- **Base Branch**: %s", prContext.ParentBranchName))
	}
	if prContext.TrunkBranchName != "" {
		lines = append(lines, fmt.Sprintf("- **Trunk Branch**: %s", prContext.TrunkBranchName))
	}
	return strings.Join(lines, "\n")
}

func buildCommitSection(messages []string) string {
	var lines []string
	lines = append(lines, "## Commit Messages")
	for _, msg := range messages {
		lines = append(lines, fmt.Sprintf("- %s", msg))
	}
	return strings.Join(lines, "\n")
}

func buildChangedFilesSection(files []string) string {
	var lines []string
	lines = append(lines, "## Changed Files")
	for _, file := range files {
		lines = append(lines, fmt.Sprintf("- %s", file))
	}
	return strings.Join(lines, "\n")
}

func buildDiffSection(diff string) string {
	if len(diff) > maxDiffSize {
		diff = diff[:maxDiffSize] + "\n... (diff truncated)"
	}
	return "## Code Diff\n```diff\n" + diff + "\n```"
}

func buildOutputFormatSection() string {
	return strings.Join([]string{
		"## Output Format",
		"Respond with the PR title on the first line (50-72 characters, no markers),",
		"followed by a blank line, followed by the PR body in markdown.",
	}, "\n")
}

// ParsePRResponse extracts a title and body from an AI response. The first
// line is the title; everything after is the body. Common markers the model
// might add are stripped.
func ParsePRResponse(response string) (string, string) {
	response = strings.TrimSpace(response)

	lines := strings.Split(response, "\n")
	if len(lines) == 0 {
		return response, ""
	}

	title := strings.TrimSpace(lines[0])
	title = strings.TrimPrefix(title, "Title: ")
	title = strings.TrimPrefix(title, "# ")

	body := strings.TrimSpace(strings.Join(lines[1:], "\n"))
	body = strings.TrimPrefix(body, "Body: ")
	body = strings.TrimPrefix(body, "Description: ")

	return title, body
}
