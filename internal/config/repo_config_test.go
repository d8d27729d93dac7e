package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"prship.dev/prship/testhelpers"
)

func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }

func writeConfig(t *testing.T, dir string, config *RepoConfig) {
	t.Helper()
	configJSON, err := json.MarshalIndent(config, "", "  ")
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, ".git", ".prship_config"), configJSON, 0600)
	require.NoError(t, err)
}

func TestGetTrunk(t *testing.T) {
	t.Parallel()

	t.Run("defaults to main when config does not exist", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		trunk, err := GetTrunk(dir)
		require.NoError(t, err)
		require.Equal(t, "main", trunk)
	})

	t.Run("returns the configured trunk", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		writeConfig(t, scene.Dir, &RepoConfig{Trunk: stringPtr("develop")})

		trunk, err := GetTrunk(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "develop", trunk)
	})
}

func TestSetTrunk(t *testing.T) {
	t.Parallel()

	t.Run("writes and round-trips", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)

		require.NoError(t, SetTrunk(scene.Dir, "develop"))

		trunk, err := GetTrunk(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "develop", trunk)
		require.True(t, IsInitialized(scene.Dir))
	})

	t.Run("preserves other settings", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		writeConfig(t, scene.Dir, &RepoConfig{UseGraphite: boolPtr(true), Labels: []string{"team-a"}})

		require.NoError(t, SetTrunk(scene.Dir, "main"))

		cfg, err := GetRepoConfig(scene.Dir)
		require.NoError(t, err)
		require.True(t, *cfg.UseGraphite)
		require.Equal(t, []string{"team-a"}, cfg.Labels)
	})
}

func TestIsInitialized(t *testing.T) {
	t.Parallel()

	t.Run("false without a config", func(t *testing.T) {
		t.Parallel()
		require.False(t, IsInitialized(t.TempDir()))
	})

	t.Run("false with a config missing the trunk", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		writeConfig(t, scene.Dir, &RepoConfig{UseGraphite: boolPtr(true)})
		require.False(t, IsInitialized(scene.Dir))
	})
}

func TestGetUseGraphite(t *testing.T) {
	t.Parallel()

	t.Run("defaults to false", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)

		enabled, err := GetUseGraphite(scene.Dir)
		require.NoError(t, err)
		require.False(t, enabled)
	})

	t.Run("round-trips through SetUseGraphite", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)

		require.NoError(t, SetUseGraphite(scene.Dir, true))

		enabled, err := GetUseGraphite(scene.Dir)
		require.NoError(t, err)
		require.True(t, enabled)
	})
}

func TestGetSubmitAI(t *testing.T) {
	t.Parallel()

	t.Run("defaults to false", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)

		enabled, err := GetSubmitAI(scene.Dir)
		require.NoError(t, err)
		require.False(t, enabled)
	})

	t.Run("round-trips through SetSubmitAI", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)

		require.NoError(t, SetSubmitAI(scene.Dir, true))

		enabled, err := GetSubmitAI(scene.Dir)
		require.NoError(t, err)
		require.True(t, enabled)
	})

	t.Run("rejects a missing repo root", func(t *testing.T) {
		t.Parallel()
		require.Error(t, SetSubmitAI("/does/not/exist", true))
	})
}

func TestGetDefaultLabels(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, nil)
	writeConfig(t, scene.Dir, &RepoConfig{Trunk: stringPtr("main"), Labels: []string{"feature", "team-a"}})

	labels, err := GetDefaultLabels(scene.Dir)
	require.NoError(t, err)
	require.Equal(t, []string{"feature", "team-a"}, labels)
}

func TestGetRepoConfigMalformed(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, nil)
	err := os.WriteFile(filepath.Join(scene.Dir, ".git", ".prship_config"), []byte("{not json"), 0600)
	require.NoError(t, err)

	_, err = GetRepoConfig(scene.Dir)
	require.Error(t, err)
}
