package git

import "context"

// MockResponse is a canned result for a single MockRunner invocation.
type MockResponse struct {
	Stdout string
	Stderr string
	Err    error
}

// MockRunner is a test double for CommandRunner.
// It replays canned responses in order and records every call, so tests
// can drive the locator and extractor without invoking a real repository.
type MockRunner struct {
	Responses []MockResponse
	Calls     [][]string

	next int
}

// NewMockRunner creates a MockRunner that replays the given responses.
// The last response repeats once the queue is exhausted.
func NewMockRunner(responses ...MockResponse) *MockRunner {
	return &MockRunner{Responses: responses}
}

// Run returns the next canned response and records the call.
func (m *MockRunner) Run(_ context.Context, dir string, args ...string) (string, string, error) {
	call := append([]string{dir}, args...)
	m.Calls = append(m.Calls, call)

	if len(m.Responses) == 0 {
		return "", "", nil
	}
	resp := m.Responses[m.next]
	if m.next < len(m.Responses)-1 {
		m.next++
	}
	return resp.Stdout, resp.Stderr, resp.Err
}

// Compile-time interface conformance check.
var _ CommandRunner = (*MockRunner)(nil)
