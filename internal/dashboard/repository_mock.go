// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=dashboard
//

// Package dashboard is a generated GoMock package.
package dashboard

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

// ExpensesByCategory mocks base method.
func (m *MockRepository) ExpensesByCategory(ctx context.Context, householdID uuid.UUID, month, year int) ([]CategorySlice, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExpensesByCategory", ctx, householdID, month, year)
	ret0, _ := ret[0].([]CategorySlice)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExpensesByCategory indicates an expected call of ExpensesByCategory.
func (mr *MockRepositoryMockRecorder) ExpensesByCategory(ctx, householdID, month, year any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExpensesByCategory", reflect.TypeOf((*MockRepository)(nil).ExpensesByCategory), ctx, householdID, month, year)
}

// MonthTotals mocks base method.
func (m *MockRepository) MonthTotals(ctx context.Context, householdID uuid.UUID, month, year int) (MonthTotals, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MonthTotals", ctx, householdID, month, year)
	ret0, _ := ret[0].(MonthTotals)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MonthTotals indicates an expected call of MonthTotals.
func (mr *MockRepositoryMockRecorder) MonthTotals(ctx, householdID, month, year any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MonthTotals", reflect.TypeOf((*MockRepository)(nil).MonthTotals), ctx, householdID, month, year)
}

// TotalBalance mocks base method.
func (m *MockRepository) TotalBalance(ctx context.Context, householdID uuid.UUID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TotalBalance", ctx, householdID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TotalBalance indicates an expected call of TotalBalance.
func (mr *MockRepositoryMockRecorder) TotalBalance(ctx, householdID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TotalBalance", reflect.TypeOf((*MockRepository)(nil).TotalBalance), ctx, householdID)
}

// TotalsBefore mocks base method.
func (m *MockRepository) TotalsBefore(ctx context.Context, householdID uuid.UUID, month, year int) (MonthTotals, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TotalsBefore", ctx, householdID, month, year)
	ret0, _ := ret[0].(MonthTotals)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TotalsBefore indicates an expected call of TotalsBefore.
func (mr *MockRepositoryMockRecorder) TotalsBefore(ctx, householdID, month, year any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TotalsBefore", reflect.TypeOf((*MockRepository)(nil).TotalsBefore), ctx, householdID, month, year)
}

// YearTotals mocks base method.
func (m *MockRepository) YearTotals(ctx context.Context, householdID uuid.UUID, year int) ([]MonthTotals, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "YearTotals", ctx, householdID, year)
	ret0, _ := ret[0].([]MonthTotals)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// YearTotals indicates an expected call of YearTotals.
func (mr *MockRepositoryMockRecorder) YearTotals(ctx, householdID, year any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "YearTotals", reflect.TypeOf((*MockRepository)(nil).YearTotals), ctx, householdID, year)
}
