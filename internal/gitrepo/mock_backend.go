package gitrepo

import (
	"fmt"
	"time"
)

// MockBackend is a test double for Backend. It records every call and
// can be scripted to fail on a given operation, without needing a real
// repository.
type MockBackend struct {
	Calls []string
	// FailOn names the operation ("init", "stage", "remove", "commit")
	// that returns Err. Empty means every call succeeds.
	FailOn string
	Err    error
}

func (m *MockBackend) call(op string, detail string) error {
	m.Calls = append(m.Calls, fmt.Sprintf("%s %s", op, detail))
	if op == m.FailOn {
		return m.Err
	}
	return nil
}

func (m *MockBackend) Init() error {
	return m.call("init", "")
}

func (m *MockBackend) Stage(path string) error {
	return m.call("stage", path)
}

func (m *MockBackend) Remove(path string) error {
	return m.call("remove", path)
}

func (m *MockBackend) Commit(author, email, message string, when time.Time, allowEmpty bool) error {
	return m.call("commit", fmt.Sprintf("%s <%s> %q", author, email, message))
}
