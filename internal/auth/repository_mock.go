// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=auth
//

// Package auth is a generated GoMock package.
package auth

import (
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// CreateHousehold mocks base method.
func (m *MockRepository) CreateHousehold(ctx context.Context, h *Household) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateHousehold", ctx, h)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateHousehold indicates an expected call of CreateHousehold.
func (mr *MockRepositoryMockRecorder) CreateHousehold(ctx, h any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateHousehold", reflect.TypeOf((*MockRepository)(nil).CreateHousehold), ctx, h)
}

// CreateUser mocks base method.
func (m *MockRepository) CreateUser(ctx context.Context, u *User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateUser", ctx, u)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateUser indicates an expected call of CreateUser.
func (mr *MockRepositoryMockRecorder) CreateUser(ctx, u any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateUser", reflect.TypeOf((*MockRepository)(nil).CreateUser), ctx, u)
}

// GetHousehold mocks base method.
func (m *MockRepository) GetHousehold(ctx context.Context, id uuid.UUID) (*Household, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHousehold", ctx, id)
	ret0, _ := ret[0].(*Household)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHousehold indicates an expected call of GetHousehold.
func (mr *MockRepositoryMockRecorder) GetHousehold(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHousehold", reflect.TypeOf((*MockRepository)(nil).GetHousehold), ctx, id)
}

// GetUserByID mocks base method.
func (m *MockRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserByID", ctx, id)
	ret0, _ := ret[0].(*User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserByID indicates an expected call of GetUserByID.
func (mr *MockRepositoryMockRecorder) GetUserByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserByID", reflect.TypeOf((*MockRepository)(nil).GetUserByID), ctx, id)
}

// GetUserByUserName mocks base method.
func (m *MockRepository) GetUserByUserName(ctx context.Context, userName string) (*User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserByUserName", ctx, userName)
	ret0, _ := ret[0].(*User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserByUserName indicates an expected call of GetUserByUserName.
func (mr *MockRepositoryMockRecorder) GetUserByUserName(ctx, userName any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserByUserName", reflect.TypeOf((*MockRepository)(nil).GetUserByUserName), ctx, userName)
}

// ListAttempts mocks base method.
func (m *MockRepository) ListAttempts(ctx context.Context, limit int) ([]*LoginAttempt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAttempts", ctx, limit)
	ret0, _ := ret[0].([]*LoginAttempt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListAttempts indicates an expected call of ListAttempts.
func (mr *MockRepositoryMockRecorder) ListAttempts(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAttempts", reflect.TypeOf((*MockRepository)(nil).ListAttempts), ctx, limit)
}

// RecordAttempt mocks base method.
func (m *MockRepository) RecordAttempt(ctx context.Context, attempt *LoginAttempt) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordAttempt", ctx, attempt)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecordAttempt indicates an expected call of RecordAttempt.
func (mr *MockRepositoryMockRecorder) RecordAttempt(ctx, attempt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordAttempt", reflect.TypeOf((*MockRepository)(nil).RecordAttempt), ctx, attempt)
}

// UpdatePassword mocks base method.
func (m *MockRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, tokenEpoch int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePassword", ctx, id, passwordHash, tokenEpoch)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdatePassword indicates an expected call of UpdatePassword.
func (mr *MockRepositoryMockRecorder) UpdatePassword(ctx, id, passwordHash, tokenEpoch any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePassword", reflect.TypeOf((*MockRepository)(nil).UpdatePassword), ctx, id, passwordHash, tokenEpoch)
}
