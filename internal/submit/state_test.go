package submit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateClone(t *testing.T) {
	t.Parallel()

	t.Run("copies shares nothing with the original", func(t *testing.T) {
		t.Parallel()
		n := 42
		original := State{
			Branch:   "feat/x",
			PRNumber: &n,
			Labels:   []string{"feature"},
		}

		copied := original.clone()
		*copied.PRNumber = 99
		copied.Labels[0] = "changed"

		require.Equal(t, 42, *original.PRNumber)
		require.Equal(t, "feature", original.Labels[0])
	})

	t.Run("handles nil pointer and slice fields", func(t *testing.T) {
		t.Parallel()
		copied := State{Branch: "feat/x"}.clone()
		require.Nil(t, copied.PRNumber)
		require.Nil(t, copied.Labels)
	})
}

func TestStateWithPR(t *testing.T) {
	t.Parallel()

	st := State{Branch: "feat/x"}
	next := st.withPR(7, "https://github.com/acme/widgets/pull/7")

	require.Nil(t, st.PRNumber, "the original state must not change")
	require.Equal(t, 7, *next.PRNumber)
	require.Equal(t, "https://github.com/acme/widgets/pull/7", next.PRURL)
}

func TestPrepareStateIdempotent(t *testing.T) {
	t.Parallel()

	c, _, _, _ := testContext(Options{})

	first, serr := prepareState(c, State{})
	require.Nil(t, serr)
	second, serr := prepareState(c, State{})
	require.Nil(t, serr)

	require.Equal(t, first, second, "discovery on an unchanged repo must be deterministic")
}
