package branches

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	prshiperrors "prship.dev/prship/internal/errors"
	"prship.dev/prship/internal/graphite"
)

// stubGit implements the git.Runner surface the managers use
type stubGit struct {
	current    string
	remote     string
	branches   map[string]string
	remoteSHAs map[string]string

	Calls []string
}

func newStubGit() *stubGit {
	return &stubGit{
		current: "main",
		remote:  "origin",
		branches: map[string]string{
			"main": "aaa111",
		},
		remoteSHAs: map[string]string{
			"main": "aaa111",
		},
	}
}

func (s *stubGit) record(call string, args ...interface{}) {
	s.Calls = append(s.Calls, fmt.Sprintf(call, args...))
}

func (s *stubGit) GetRepoRoot() (string, error) { return "/repo", nil }

func (s *stubGit) GetCurrentBranch(context.Context) (string, error) { return s.current, nil }

func (s *stubGit) GetDefaultBranch(context.Context) (string, error) { return "main", nil }

func (s *stubGit) GetRemote(context.Context) string { return s.remote }

func (s *stubGit) BranchExists(_ context.Context, name string) (bool, error) {
	_, ok := s.branches[name]
	return ok, nil
}

func (s *stubGit) GetRevision(_ context.Context, ref string) (string, error) {
	sha, ok := s.branches[ref]
	if !ok {
		return "", fmt.Errorf("unknown revision %s", ref)
	}
	return sha, nil
}

func (s *stubGit) GetRemoteRevision(_ context.Context, _, name string) (string, error) {
	return s.remoteSHAs[name], nil
}

func (s *stubGit) CommitsAhead(context.Context, string, string) (int, error) { return 0, nil }

func (s *stubGit) IsMergedInto(context.Context, string, string) (bool, error) { return true, nil }

func (s *stubGit) HasUncommittedChanges(context.Context) (bool, error) { return false, nil }

func (s *stubGit) StageAll(context.Context) error { return nil }

func (s *stubGit) Commit(context.Context, string) error { return nil }

func (s *stubGit) CreateBranch(_ context.Context, name, base string) error {
	s.record("CreateBranch(%s, %s)", name, base)
	s.branches[name] = s.branches[base]
	return nil
}

func (s *stubGit) CreateAndCheckoutBranch(_ context.Context, name, base string) error {
	s.record("CreateAndCheckoutBranch(%s, %s)", name, base)
	s.branches[name] = s.branches[base]
	s.current = name
	return nil
}

func (s *stubGit) CheckoutBranch(_ context.Context, name string) error {
	s.record("CheckoutBranch(%s)", name)
	if _, ok := s.branches[name]; !ok {
		return fmt.Errorf("branch %s not found", name)
	}
	s.current = name
	return nil
}

func (s *stubGit) DeleteBranch(_ context.Context, name string, force bool) error {
	s.record("DeleteBranch(%s, force=%t)", name, force)
	delete(s.branches, name)
	return nil
}

func (s *stubGit) PushBranch(context.Context, string, string, bool, bool) error { return nil }

func TestPlainManagerCreateBranch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates at the base without checking out", func(t *testing.T) {
		t.Parallel()
		g := newStubGit()
		mgr := NewPlainManager(g)

		result, err := mgr.CreateBranch(ctx, "feat/x", "main")
		require.NoError(t, err)
		require.Equal(t, BranchCreated, result)
		require.Equal(t, "main", g.current, "plain create must not move the working directory")
		require.Contains(t, g.branches, "feat/x")
	})

	t.Run("returns already-exists without side effects", func(t *testing.T) {
		t.Parallel()
		g := newStubGit()
		g.branches["feat/x"] = "bbb222"
		mgr := NewPlainManager(g)

		result, err := mgr.CreateBranch(ctx, "feat/x", "main")
		require.NoError(t, err)
		require.Equal(t, BranchAlreadyExists, result)
		require.Empty(t, g.Calls)
	})

	t.Run("refuses a diverged base before any side effect", func(t *testing.T) {
		t.Parallel()
		g := newStubGit()
		g.remoteSHAs["main"] = "ccc333"
		mgr := NewPlainManager(g)

		_, err := mgr.CreateBranch(ctx, "feat/x", "main")
		require.Error(t, err)
		require.True(t, errors.Is(err, prshiperrors.ErrBranchDiverged))
		require.Empty(t, g.Calls, "a diverged base must stop creation before anything happens")
		require.NotContains(t, g.branches, "feat/x")
	})

	t.Run("reports a missing base", func(t *testing.T) {
		t.Parallel()
		g := newStubGit()
		mgr := NewPlainManager(g)

		_, err := mgr.CreateBranch(ctx, "feat/x", "gone")
		require.Error(t, err)
		require.True(t, errors.Is(err, prshiperrors.ErrBranchNotFound))
	})

	t.Run("allows a base with no remote counterpart", func(t *testing.T) {
		t.Parallel()
		g := newStubGit()
		delete(g.remoteSHAs, "main")
		mgr := NewPlainManager(g)

		result, err := mgr.CreateBranch(ctx, "feat/x", "main")
		require.NoError(t, err)
		require.Equal(t, BranchCreated, result)
	})

	t.Run("track is a no-op", func(t *testing.T) {
		t.Parallel()
		g := newStubGit()
		mgr := NewPlainManager(g)

		require.NoError(t, mgr.TrackBranch(ctx, "feat/x", "main"))
		require.Empty(t, g.Calls)
	})
}

func TestGraphiteManagerCreateBranch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("registers with gt and restores the original branch", func(t *testing.T) {
		t.Parallel()
		g := newStubGit()
		gt := graphite.NewMockClient()
		mgr := NewGraphiteManager(g, gt)

		result, err := mgr.CreateBranch(ctx, "feat/x", "main")
		require.NoError(t, err)
		require.Equal(t, BranchCreated, result)
		require.Equal(t, "main", gt.Tracked["feat/x"])
		require.Equal(t, "main", g.current, "original branch must be restored after registration")
		require.Equal(t, []string{
			"CreateAndCheckoutBranch(feat/x, main)",
			"CheckoutBranch(main)",
		}, g.Calls)
	})

	t.Run("rolls back the branch when gt registration fails", func(t *testing.T) {
		t.Parallel()
		g := newStubGit()
		gt := graphite.NewMockClient()
		gt.TrackErr = fmt.Errorf("gt unavailable")
		mgr := NewGraphiteManager(g, gt)

		_, err := mgr.CreateBranch(ctx, "feat/x", "main")
		require.Error(t, err)
		require.NotContains(t, g.branches, "feat/x", "a failed create must leave no branch behind")
		require.Equal(t, "main", g.current)
	})

	t.Run("refuses a diverged base", func(t *testing.T) {
		t.Parallel()
		g := newStubGit()
		g.remoteSHAs["main"] = "ccc333"
		gt := graphite.NewMockClient()
		mgr := NewGraphiteManager(g, gt)

		_, err := mgr.CreateBranch(ctx, "feat/x", "main")
		require.True(t, errors.Is(err, prshiperrors.ErrBranchDiverged))
		require.Empty(t, gt.Calls)
	})

	t.Run("track delegates to gt", func(t *testing.T) {
		t.Parallel()
		g := newStubGit()
		gt := graphite.NewMockClient()
		mgr := NewGraphiteManager(g, gt)

		require.NoError(t, mgr.TrackBranch(ctx, "feat/x", "main"))
		require.Equal(t, "main", gt.Tracked["feat/x"])
	})
}
