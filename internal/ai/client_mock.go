package ai

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a mock implementation of Client for testing purposes.
// It allows setting predefined responses and errors without making actual API calls.
type MockClient struct {
	mu           sync.Mutex
	mockTitle    string
	mockBody     string
	mockError    error
	callCount    int
	lastContext  *PRContext
	callContexts []*PRContext
}

// NewMockClient creates a new MockClient instance
func NewMockClient() *MockClient {
	return &MockClient{
		callContexts: make([]*PRContext, 0),
	}
}

// GeneratePRDescription implements Client.
// Returns the mock response if set, otherwise returns an error.
func (m *MockClient) GeneratePRDescription(_ context.Context, prContext *PRContext) (string, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callCount++
	m.lastContext = prContext
	contextCopy := *prContext
	m.callContexts = append(m.callContexts, &contextCopy)

	if m.mockError != nil {
		return "", "", m.mockError
	}

	if m.mockTitle == "" && m.mockBody == "" {
		return "", "", fmt.Errorf("no mock response set, use SetMockResponse()")
	}

	return m.mockTitle, m.mockBody, nil
}

// SetMockResponse sets the mock response to return for GeneratePRDescription
func (m *MockClient) SetMockResponse(title, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockTitle = title
	m.mockBody = body
}

// SetMockError sets an error to return from GeneratePRDescription
func (m *MockClient) SetMockError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockError = err
}

// CallCount returns the number of GeneratePRDescription calls
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastContext returns the PRContext from the most recent call
func (m *MockClient) LastContext() *PRContext {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastContext
}
