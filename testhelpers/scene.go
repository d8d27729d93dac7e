package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene is a test fixture holding a temporary directory with an initialized
// git repository and a default prship config
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup customizes a scene after repo creation
type SceneSetup func(*Scene) error

// NewScene creates a scene with a temporary git repository. Cleanup is
// registered with t.Cleanup. Safe for parallel tests: it never changes the
// process working directory.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir := t.TempDir()

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if err := scene.writeDefaultConfig(); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// writeDefaultConfig marks the repo as initialized with trunk main
func (s *Scene) writeDefaultConfig() error {
	configPath := filepath.Join(s.Dir, ".git", ".prship_config")
	config := `{
  "trunk": "main"
}
`
	return os.WriteFile(configPath, []byte(config), 0600)
}

// BasicSceneSetup creates a scene with a single commit on main
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}
