package graphite

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a mock implementation of Client for testing. It records
// calls in order and serves canned responses.
type MockClient struct {
	mu sync.Mutex

	// Canned state
	StackPRs map[string]StackPR // branch -> PR returned by SubmitStack
	NextPR   int

	// Injected failures
	TrackErr  error
	SubmitErr error
	URLErr    error

	// Recorded activity
	Calls      []string
	Tracked    map[string]string // branch -> parent
	LastSubmit SubmitStackOptions
}

// NewMockClient creates a MockClient with sensible defaults
func NewMockClient() *MockClient {
	return &MockClient{
		StackPRs: make(map[string]StackPR),
		NextPR:   100,
		Tracked:  make(map[string]string),
	}
}

func (m *MockClient) record(call string) {
	m.Calls = append(m.Calls, call)
}

// TrackBranch records the parent relationship
func (m *MockClient) TrackBranch(_ context.Context, branchName, parent string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("graphite.TrackBranch")

	if m.TrackErr != nil {
		return m.TrackErr
	}
	m.Tracked[branchName] = parent
	return nil
}

// SubmitStack returns the canned PR for the branch, minting one if needed
func (m *MockClient) SubmitStack(_ context.Context, opts SubmitStackOptions) ([]StackPR, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("graphite.SubmitStack")
	m.LastSubmit = opts

	if m.SubmitErr != nil {
		return nil, m.SubmitErr
	}

	pr, ok := m.StackPRs[opts.Branch]
	if !ok {
		pr = StackPR{
			Branch: opts.Branch,
			Number: m.NextPR,
			URL:    fmt.Sprintf("https://github.com/acme/widgets/pull/%d", m.NextPR),
		}
		m.NextPR++
		m.StackPRs[opts.Branch] = pr
	}
	return []StackPR{pr}, nil
}

// GetStackMetadataURL returns a canned Graphite URL
func (m *MockClient) GetStackMetadataURL(_ context.Context, owner, repo string, prNumber int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("graphite.GetStackMetadataURL")

	if m.URLErr != nil {
		return "", m.URLErr
	}
	return fmt.Sprintf("https://app.graphite.dev/github/pr/%s/%s/%d", owner, repo, prNumber), nil
}
