// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/boardkit/picodeploy/pkg/transfer"
)

// MockTransport is a mock implementation of the transfer.Transport interface
type MockTransport struct {
	mock.Mock
}

// Name provides a mock function with given fields:
func (m *MockTransport) Name() string {
	ret := m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// Type provides a mock function with given fields:
func (m *MockTransport) Type() string {
	ret := m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// Put provides a mock function with given fields: ctx, localPath, remotePath
func (m *MockTransport) Put(ctx context.Context, localPath string, remotePath string) error {
	ret := m.Called(ctx, localPath, remotePath)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, localPath, remotePath)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// List provides a mock function with given fields: ctx
func (m *MockTransport) List(ctx context.Context) ([]transfer.FileInfo, error) {
	ret := m.Called(ctx)

	var r0 []transfer.FileInfo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]transfer.FileInfo, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []transfer.FileInfo); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]transfer.FileInfo)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Remove provides a mock function with given fields: ctx, remotePath
func (m *MockTransport) Remove(ctx context.Context, remotePath string) error {
	ret := m.Called(ctx, remotePath)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, remotePath)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Exists provides a mock function with given fields: ctx, remotePath
func (m *MockTransport) Exists(ctx context.Context, remotePath string) (bool, error) {
	ret := m.Called(ctx, remotePath)

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (bool, error)); ok {
		return rf(ctx, remotePath)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) bool); ok {
		r0 = rf(ctx, remotePath)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, remotePath)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Close provides a mock function with given fields:
func (m *MockTransport) Close() error {
	ret := m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockTransport creates a new instance of MockTransport
func NewMockTransport(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransport {
	mock_1 := &MockTransport{}
	mock_1.Mock.Test(t)

	t.Cleanup(func() { mock_1.AssertExpectations(t) })

	return mock_1
}

// MockResettableTransport is a MockTransport that also implements transfer.Resetter
type MockResettableTransport struct {
	MockTransport
}

// Reset provides a mock function with given fields: ctx
func (m *MockResettableTransport) Reset(ctx context.Context) error {
	ret := m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockResettableTransport creates a new instance of MockResettableTransport
func NewMockResettableTransport(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockResettableTransport {
	mock_1 := &MockResettableTransport{}
	mock_1.Mock.Test(t)

	t.Cleanup(func() { mock_1.AssertExpectations(t) })

	return mock_1
}
