package github

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a mock implementation of Client for testing. It records
// every call in order and serves canned responses without touching the
// network.
type MockClient struct {
	mu sync.Mutex

	Owner string
	Repo  string

	// Canned state
	ExistingPRs map[string]*PullRequestInfo // branch -> PR
	DiffContent string
	NextPRNum   int

	// Injected failures
	CreateErr error
	UpdateErr error
	DiffErr   error
	LabelsErr error

	// Recorded activity
	Calls       []string
	CreatedPRs  []CreatePROptions
	UpdatedPRs  map[int]UpdatePROptions
	AddedLabels map[int][]string
}

// NewMockClient creates a MockClient with sensible defaults
func NewMockClient() *MockClient {
	return &MockClient{
		Owner:       "acme",
		Repo:        "widgets",
		ExistingPRs: make(map[string]*PullRequestInfo),
		NextPRNum:   1,
		UpdatedPRs:  make(map[int]UpdatePROptions),
		AddedLabels: make(map[int][]string),
	}
}

func (m *MockClient) record(call string) {
	m.Calls = append(m.Calls, call)
}

// GetOwnerRepo returns the configured owner and repo
func (m *MockClient) GetOwnerRepo() (string, string) {
	return m.Owner, m.Repo
}

// CreatePullRequest records the call and returns a synthetic PR
func (m *MockClient) CreatePullRequest(_ context.Context, owner, repo string, opts CreatePROptions) (*PullRequestInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("github.CreatePullRequest")

	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	number := m.NextPRNum
	m.NextPRNum++
	pr := &PullRequestInfo{
		Number:  number,
		HTMLURL: fmt.Sprintf("https://github.com/%s/%s/pull/%d", owner, repo, number),
		Title:   opts.Title,
		Body:    opts.Body,
		State:   "OPEN",
		Draft:   opts.Draft,
		Base:    opts.Base,
		Head:    opts.Head,
	}
	m.CreatedPRs = append(m.CreatedPRs, opts)
	m.ExistingPRs[opts.Head] = pr
	return pr, nil
}

// UpdatePullRequest records the update
func (m *MockClient) UpdatePullRequest(_ context.Context, _, _ string, prNumber int, opts UpdatePROptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("github.UpdatePullRequest")

	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.UpdatedPRs[prNumber] = opts
	return nil
}

// GetPullRequestByBranch returns the canned PR for a branch, if any
func (m *MockClient) GetPullRequestByBranch(_ context.Context, _, _, branchName string) (*PullRequestInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("github.GetPullRequestByBranch")

	return m.ExistingPRs[branchName], nil
}

// GetDiff returns the canned diff
func (m *MockClient) GetDiff(_ context.Context, _, _, base, head string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("github.GetDiff")

	if m.DiffErr != nil {
		return "", m.DiffErr
	}
	if m.DiffContent != "" {
		return m.DiffContent, nil
	}
	return fmt.Sprintf("diff --git a/%s..%s", base, head), nil
}

// AddLabels records the labels added to a PR
func (m *MockClient) AddLabels(_ context.Context, _, _ string, prNumber int, labels []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("github.AddLabels")

	if m.LabelsErr != nil {
		return m.LabelsErr
	}
	m.AddedLabels[prNumber] = append(m.AddedLabels[prNumber], labels...)
	return nil
}
