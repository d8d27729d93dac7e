package git

import (
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	prshiperrors "prship.dev/prship/internal/errors"
)

// openRepository opens the git repository containing dir (or the current
// directory when dir is empty), walking up to find the .git directory.
func openRepository(dir string) (*gogit.Repository, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return repo, nil
}

// GetRepoRoot returns the root directory of the git repository containing dir.
func GetRepoRoot(dir string) (string, error) {
	repo, err := openRepository(dir)
	if err != nil {
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

func (r *realRunner) GetRepoRoot() (string, error) {
	return GetRepoRoot(r.workingDir)
}

// getCurrentBranch reads HEAD via go-git and returns the short branch name.
// Returns ErrNotOnBranch for a detached HEAD.
func getCurrentBranch(dir string) (string, error) {
	repo, err := openRepository(dir)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", prshiperrors.ErrNotOnBranch
	}
	return head.Name().Short(), nil
}

// ListBranches returns all local branch names via go-git.
func ListBranches(dir string) ([]string, error) {
	repo, err := openRepository(dir)
	if err != nil {
		return nil, err
	}

	branches, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return names, nil
}
