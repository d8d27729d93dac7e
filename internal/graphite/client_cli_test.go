package graphite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSubmitOutput(t *testing.T) {
	t.Parallel()

	t.Run("parses branch-labeled result lines", func(t *testing.T) {
		t.Parallel()
		output := `Submitting stack...
feat/base: https://github.com/acme/widgets/pull/12
feat/add-widget: https://github.com/acme/widgets/pull/13
Done.`

		prs := parseSubmitOutput(output)
		require.Len(t, prs, 2)
		require.Equal(t, StackPR{Branch: "feat/base", Number: 12, URL: "https://github.com/acme/widgets/pull/12"}, prs[0])
		require.Equal(t, StackPR{Branch: "feat/add-widget", Number: 13, URL: "https://github.com/acme/widgets/pull/13"}, prs[1])
	})

	t.Run("falls back to bare URLs", func(t *testing.T) {
		t.Parallel()
		output := "Created https://github.com/acme/widgets/pull/42 for your branch"

		prs := parseSubmitOutput(output)
		require.Len(t, prs, 1)
		require.Empty(t, prs[0].Branch)
		require.Equal(t, 42, prs[0].Number)
	})

	t.Run("does not duplicate a URL seen in both forms", func(t *testing.T) {
		t.Parallel()
		output := "feat/x: https://github.com/acme/widgets/pull/5\nview at https://github.com/acme/widgets/pull/5"

		prs := parseSubmitOutput(output)
		require.Len(t, prs, 1)
		require.Equal(t, "feat/x", prs[0].Branch)
	})

	t.Run("empty output yields no PRs", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, parseSubmitOutput(""))
	})
}
