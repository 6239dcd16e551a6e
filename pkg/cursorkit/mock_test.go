package cursorkit_test

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockStringContainer is a mock of the Appender[string] and Prepender[string] interfaces.
type MockStringContainer struct {
	ctrl     *gomock.Controller
	recorder *MockStringContainerMockRecorder
}

// MockStringContainerMockRecorder is the mock recorder for MockStringContainer.
type MockStringContainerMockRecorder struct {
	mock *MockStringContainer
}

// NewMockStringContainer creates a new mock instance.
func NewMockStringContainer(ctrl *gomock.Controller) *MockStringContainer {
	mock := &MockStringContainer{ctrl: ctrl}
	mock.recorder = &MockStringContainerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStringContainer) EXPECT() *MockStringContainerMockRecorder {
	return m.recorder
}

// Append mocks base method.
func (m *MockStringContainer) Append(vs ...string) {
	m.ctrl.T.Helper()
	varargs := []interface{}{}
	for _, a := range vs {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Append", varargs...)
}

// Append indicates an expected call of Append.
func (mr *MockStringContainerMockRecorder) Append(vs ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Append", reflect.TypeOf((*MockStringContainer)(nil).Append), vs...)
}

// Prepend mocks base method.
func (m *MockStringContainer) Prepend(vs ...string) {
	m.ctrl.T.Helper()
	varargs := []interface{}{}
	for _, a := range vs {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Prepend", varargs...)
}

// Prepend indicates an expected call of Prepend.
func (mr *MockStringContainerMockRecorder) Prepend(vs ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Prepend", reflect.TypeOf((*MockStringContainer)(nil).Prepend), vs...)
}
