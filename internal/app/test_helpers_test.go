package app

import (
	"context"
)

// MockManager records calls for command tests.
type MockManager struct {
	formatArgs [][]string
	checkArgs  [][]string
	watchPaths [][]string
	fetchCalls []bool

	formatErr error
	checkErr  error
	fetchErr  error
	watchErr  error
}

var _ Manager = (*MockManager)(nil)

func (m *MockManager) Format(_ context.Context, args []string) error {
	m.formatArgs = append(m.formatArgs, args)
	return m.formatErr
}

func (m *MockManager) Check(_ context.Context, files []string) error {
	m.checkArgs = append(m.checkArgs, files)
	return m.checkErr
}

func (m *MockManager) Fetch(_ context.Context, latest bool) error {
	m.fetchCalls = append(m.fetchCalls, latest)
	return m.fetchErr
}

func (m *MockManager) Watch(_ context.Context, paths []string) error {
	m.watchPaths = append(m.watchPaths, paths)
	return m.watchErr
}
