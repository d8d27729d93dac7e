package submit

import (
	"context"
	"fmt"

	"prship.dev/prship/internal/git"
)

// fakeRunner implements git.Runner in memory, recording every mutation in
// order so tests can assert on what the pipeline did and in what sequence.
type fakeRunner struct {
	repoRoot      string
	currentBranch string
	defaultBranch string
	remote        string
	branches      map[string]string // name -> local SHA
	remoteSHAs    map[string]string // name -> remote SHA ("" means no remote tip)
	commitsAhead  map[string]int    // head -> commits beyond base
	dirty         bool

	currentBranchErr error
	pushErr          error
	commitErr        error

	Calls []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		repoRoot:      "/repo",
		currentBranch: "feat/add-widget",
		defaultBranch: "main",
		remote:        "origin",
		branches: map[string]string{
			"main":            "aaa111",
			"feat/add-widget": "bbb222",
		},
		remoteSHAs: map[string]string{
			"main": "aaa111",
		},
		commitsAhead: map[string]int{
			"feat/add-widget": 2,
		},
	}
}

func (f *fakeRunner) record(call string, args ...interface{}) {
	f.Calls = append(f.Calls, fmt.Sprintf(call, args...))
}

func (f *fakeRunner) GetRepoRoot() (string, error) {
	return f.repoRoot, nil
}

func (f *fakeRunner) GetCurrentBranch(context.Context) (string, error) {
	if f.currentBranchErr != nil {
		return "", f.currentBranchErr
	}
	return f.currentBranch, nil
}

func (f *fakeRunner) GetDefaultBranch(context.Context) (string, error) {
	return f.defaultBranch, nil
}

func (f *fakeRunner) GetRemote(context.Context) string {
	return f.remote
}

func (f *fakeRunner) BranchExists(_ context.Context, branchName string) (bool, error) {
	_, ok := f.branches[branchName]
	return ok, nil
}

func (f *fakeRunner) GetRevision(_ context.Context, ref string) (string, error) {
	sha, ok := f.branches[ref]
	if !ok {
		return "", fmt.Errorf("unknown revision %s", ref)
	}
	return sha, nil
}

func (f *fakeRunner) GetRemoteRevision(_ context.Context, _, branchName string) (string, error) {
	return f.remoteSHAs[branchName], nil
}

func (f *fakeRunner) CommitsAhead(_ context.Context, _, head string) (int, error) {
	return f.commitsAhead[head], nil
}

func (f *fakeRunner) IsMergedInto(_ context.Context, branchName, _ string) (bool, error) {
	return f.commitsAhead[branchName] == 0, nil
}

func (f *fakeRunner) HasUncommittedChanges(context.Context) (bool, error) {
	return f.dirty, nil
}

func (f *fakeRunner) StageAll(context.Context) error {
	f.record("git.StageAll")
	return nil
}

func (f *fakeRunner) Commit(_ context.Context, message string) error {
	f.record("git.Commit(%s)", message)
	if f.commitErr != nil {
		return f.commitErr
	}
	f.dirty = false
	f.commitsAhead[f.currentBranch]++
	return nil
}

func (f *fakeRunner) CreateBranch(_ context.Context, branchName, base string) error {
	f.record("git.CreateBranch(%s, %s)", branchName, base)
	f.branches[branchName] = f.branches[base]
	return nil
}

func (f *fakeRunner) CreateAndCheckoutBranch(_ context.Context, branchName, base string) error {
	f.record("git.CreateAndCheckoutBranch(%s, %s)", branchName, base)
	f.branches[branchName] = f.branches[base]
	f.currentBranch = branchName
	return nil
}

func (f *fakeRunner) CheckoutBranch(_ context.Context, branchName string) error {
	f.record("git.CheckoutBranch(%s)", branchName)
	if _, ok := f.branches[branchName]; !ok {
		return fmt.Errorf("branch %s not found", branchName)
	}
	f.currentBranch = branchName
	return nil
}

func (f *fakeRunner) DeleteBranch(_ context.Context, branchName string, force bool) error {
	f.record("git.DeleteBranch(%s, force=%t)", branchName, force)
	delete(f.branches, branchName)
	return nil
}

func (f *fakeRunner) PushBranch(_ context.Context, branchName, remote string, force, forceWithLease bool) error {
	f.record("git.PushBranch(%s, %s)", branchName, remote)
	if f.pushErr != nil {
		return f.pushErr
	}
	f.remoteSHAs[branchName] = f.branches[branchName]
	return nil
}

var _ git.Runner = (*fakeRunner)(nil)
