// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=accounttx
//

// Package accounttx is a generated GoMock package.
package accounttx

import (
	context "context"
	reflect "reflect"
	time "time"

	account "github.com/MrJamesThe3rd/homeledger/internal/account"
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

// CreateMovement mocks base method.
func (m *MockRepository) CreateMovement(ctx context.Context, tx *Transaction, deltas map[uuid.UUID]int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateMovement", ctx, tx, deltas)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateMovement indicates an expected call of CreateMovement.
func (mr *MockRepositoryMockRecorder) CreateMovement(ctx, tx, deltas any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateMovement", reflect.TypeOf((*MockRepository)(nil).CreateMovement), ctx, tx, deltas)
}

// ListTransactions mocks base method.
func (m *MockRepository) ListTransactions(ctx context.Context, householdID uuid.UUID, filter ListFilter) ([]*Transaction, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTransactions", ctx, householdID, filter)
	ret0, _ := ret[0].([]*Transaction)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListTransactions indicates an expected call of ListTransactions.
func (mr *MockRepositoryMockRecorder) ListTransactions(ctx, householdID, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTransactions", reflect.TypeOf((*MockRepository)(nil).ListTransactions), ctx, householdID, filter)
}

// RecentTransactions mocks base method.
func (m *MockRepository) RecentTransactions(ctx context.Context, householdID uuid.UUID, month time.Month, year, limit int) ([]*Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecentTransactions", ctx, householdID, month, year, limit)
	ret0, _ := ret[0].([]*Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecentTransactions indicates an expected call of RecentTransactions.
func (mr *MockRepositoryMockRecorder) RecentTransactions(ctx, householdID, month, year, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecentTransactions", reflect.TypeOf((*MockRepository)(nil).RecentTransactions), ctx, householdID, month, year, limit)
}

// MockAccountLookup is a mock of AccountLookup interface.
type MockAccountLookup struct {
	ctrl     *gomock.Controller
	recorder *MockAccountLookupMockRecorder
	isgomock struct{}
}

// MockAccountLookupMockRecorder is the mock recorder for MockAccountLookup.
type MockAccountLookupMockRecorder struct {
	mock *MockAccountLookup
}

// NewMockAccountLookup creates a new mock instance.
func NewMockAccountLookup(ctrl *gomock.Controller) *MockAccountLookup {
	mock := &MockAccountLookup{ctrl: ctrl}
	mock.recorder = &MockAccountLookupMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountLookup) EXPECT() *MockAccountLookupMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockAccountLookup) Get(ctx context.Context, householdID, id uuid.UUID) (*account.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, householdID, id)
	ret0, _ := ret[0].(*account.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockAccountLookupMockRecorder) Get(ctx, householdID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockAccountLookup)(nil).Get), ctx, householdID, id)
}
