package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("includes every populated section", func(t *testing.T) {
		t.Parallel()
		prompt := BuildPrompt(&PRContext{
			BranchName:       "feat/add-widget",
			ParentBranchName: "main",
			TrunkBranchName:  "main",
			CommitMessages:   []string{"add widget", "fix widget test"},
			ChangedFiles:     []string{"widget.go"},
			CodeDiff:         "diff --git a/widget.go b/widget.go",
		})

		require.Contains(t, prompt, "## Branch Information")
		require.Contains(t, prompt, "feat/add-widget")
		require.Contains(t, prompt, "## Commit Messages")
		require.Contains(t, prompt, "- add widget")
		require.Contains(t, prompt, "## Changed Files")
		require.Contains(t, prompt, "## Code Diff")
		require.Contains(t, prompt, "## Output Format")
	})

	t.Run("omits empty sections", func(t *testing.T) {
		t.Parallel()
		prompt := BuildPrompt(&PRContext{BranchName: "feat/x"})

		require.NotContains(t, prompt, "## Commit Messages")
		require.NotContains(t, prompt, "## Changed Files")
		require.NotContains(t, prompt, "## Code Diff")
	})

	t.Run("truncates oversized diffs", func(t *testing.T) {
		t.Parallel()
		big := strings.Repeat("x", maxDiffSize+100)
		prompt := BuildPrompt(&PRContext{BranchName: "feat/x", CodeDiff: big})

		require.Contains(t, prompt, "(diff truncated)")
		require.Less(t, len(prompt), len(big)+2000)
	})
}

func TestParsePRResponse(t *testing.T) {
	t.Parallel()

	t.Run("first line is the title, rest is the body", func(t *testing.T) {
		t.Parallel()
		title, body := ParsePRResponse("Add the widget\n\nThis PR adds the widget.\nIt also adds tests.")
		require.Equal(t, "Add the widget", title)
		require.Equal(t, "This PR adds the widget.\nIt also adds tests.", body)
	})

	t.Run("strips common markers", func(t *testing.T) {
		t.Parallel()
		title, body := ParsePRResponse("Title: Add the widget\n\nBody: The body.")
		require.Equal(t, "Add the widget", title)
		require.Equal(t, "The body.", body)

		title, _ = ParsePRResponse("# Add the widget\n\ntext")
		require.Equal(t, "Add the widget", title)
	})

	t.Run("title-only responses have an empty body", func(t *testing.T) {
		t.Parallel()
		title, body := ParsePRResponse("Add the widget")
		require.Equal(t, "Add the widget", title)
		require.Empty(t, body)
	})
}
