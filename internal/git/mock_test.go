package git

import (
	"github.com/stretchr/testify/mock"
)

// MockGitCommander is a test mock for the Commander interface.
type MockGitCommander struct {
	mock.Mock
}

// Ensure MockGitCommander implements Commander interface at compile time.
var _ Commander = (*MockGitCommander)(nil)

func (m *MockGitCommander) Run(workDir string, args ...string) (stdout, stderr []byte, err error) {
	mockArgs := []interface{}{workDir}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	called := m.Called(mockArgs...)
	return called.Get(0).([]byte), called.Get(1).([]byte), called.Error(2)
}

func (m *MockGitCommander) RunQuiet(workDir string, args ...string) error {
	mockArgs := []interface{}{workDir}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	called := m.Called(mockArgs...)
	return called.Error(0)
}
