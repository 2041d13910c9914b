package mocks

import (
	"github.com/brettbedarf/memfs"
	"github.com/stretchr/testify/mock"
)

// MockOperator implements memfs.Operator for testing across packages
type MockOperator struct {
	mock.Mock
}

func (m *MockOperator) CreateFile(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockOperator) ReadFile(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

func (m *MockOperator) WriteFile(name, content string) error {
	args := m.Called(name, content)
	return args.Error(0)
}

func (m *MockOperator) DeleteFile(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockOperator) CreateDirectory(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockOperator) ChangeDirectory(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockOperator) GoToParent() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockOperator) GoToRoot() {
	m.Called()
}

func (m *MockOperator) List() memfs.Listing {
	args := m.Called()

	// Handle function return types (for listings that depend on prior calls)
	if fn, ok := args.Get(0).(func() memfs.Listing); ok {
		return fn()
	}
	if args.Get(0) == nil {
		return memfs.Listing{}
	}
	return args.Get(0).(memfs.Listing)
}

func (m *MockOperator) Pwd() string {
	args := m.Called()
	return args.String(0)
}

var _ memfs.Operator = (*MockOperator)(nil)
