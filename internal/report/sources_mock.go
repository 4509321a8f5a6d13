// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=sources_mock.go -package=report
//

// Package report is a generated GoMock package.
package report

import (
	context "context"
	reflect "reflect"

	accounttx "github.com/MrJamesThe3rd/homeledger/internal/accounttx"
	budget "github.com/MrJamesThe3rd/homeledger/internal/budget"
	expense "github.com/MrJamesThe3rd/homeledger/internal/expense"
	milk "github.com/MrJamesThe3rd/homeledger/internal/milk"
	trip "github.com/MrJamesThe3rd/homeledger/internal/trip"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockExpenseSource is a mock of ExpenseSource interface.
type MockExpenseSource struct {
	ctrl     *gomock.Controller
	recorder *MockExpenseSourceMockRecorder
	isgomock struct{}
}

// MockExpenseSourceMockRecorder is the mock recorder for MockExpenseSource.
type MockExpenseSourceMockRecorder struct {
	mock *MockExpenseSource
}

// NewMockExpenseSource creates a new mock instance.
func NewMockExpenseSource(ctrl *gomock.Controller) *MockExpenseSource {
	mock := &MockExpenseSource{ctrl: ctrl}
	mock.recorder = &MockExpenseSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExpenseSource) EXPECT() *MockExpenseSourceMockRecorder {
	return m.recorder
}

// List mocks base method.
func (m *MockExpenseSource) List(ctx context.Context, householdID uuid.UUID, filter expense.ListFilter) ([]*expense.Expense, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, householdID, filter)
	ret0, _ := ret[0].([]*expense.Expense)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// List indicates an expected call of List.
func (mr *MockExpenseSourceMockRecorder) List(ctx, householdID, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockExpenseSource)(nil).List), ctx, householdID, filter)
}

// MockBudgetSource is a mock of BudgetSource interface.
type MockBudgetSource struct {
	ctrl     *gomock.Controller
	recorder *MockBudgetSourceMockRecorder
	isgomock struct{}
}

// MockBudgetSourceMockRecorder is the mock recorder for MockBudgetSource.
type MockBudgetSourceMockRecorder struct {
	mock *MockBudgetSource
}

// NewMockBudgetSource creates a new mock instance.
func NewMockBudgetSource(ctrl *gomock.Controller) *MockBudgetSource {
	mock := &MockBudgetSource{ctrl: ctrl}
	mock.recorder = &MockBudgetSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBudgetSource) EXPECT() *MockBudgetSourceMockRecorder {
	return m.recorder
}

// Summary mocks base method.
func (m *MockBudgetSource) Summary(ctx context.Context, householdID uuid.UUID, month, year int) ([]budget.SummaryRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Summary", ctx, householdID, month, year)
	ret0, _ := ret[0].([]budget.SummaryRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Summary indicates an expected call of Summary.
func (mr *MockBudgetSourceMockRecorder) Summary(ctx, householdID, month, year any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Summary", reflect.TypeOf((*MockBudgetSource)(nil).Summary), ctx, householdID, month, year)
}

// MockTransactionSource is a mock of TransactionSource interface.
type MockTransactionSource struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionSourceMockRecorder
	isgomock struct{}
}

// MockTransactionSourceMockRecorder is the mock recorder for MockTransactionSource.
type MockTransactionSourceMockRecorder struct {
	mock *MockTransactionSource
}

// NewMockTransactionSource creates a new mock instance.
func NewMockTransactionSource(ctrl *gomock.Controller) *MockTransactionSource {
	mock := &MockTransactionSource{ctrl: ctrl}
	mock.recorder = &MockTransactionSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionSource) EXPECT() *MockTransactionSourceMockRecorder {
	return m.recorder
}

// List mocks base method.
func (m *MockTransactionSource) List(ctx context.Context, householdID uuid.UUID, filter accounttx.ListFilter) ([]*accounttx.Transaction, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, householdID, filter)
	ret0, _ := ret[0].([]*accounttx.Transaction)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// List indicates an expected call of List.
func (mr *MockTransactionSourceMockRecorder) List(ctx, householdID, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockTransactionSource)(nil).List), ctx, householdID, filter)
}

// MockMilkSource is a mock of MilkSource interface.
type MockMilkSource struct {
	ctrl     *gomock.Controller
	recorder *MockMilkSourceMockRecorder
	isgomock struct{}
}

// MockMilkSourceMockRecorder is the mock recorder for MockMilkSource.
type MockMilkSourceMockRecorder struct {
	mock *MockMilkSource
}

// NewMockMilkSource creates a new mock instance.
func NewMockMilkSource(ctrl *gomock.Controller) *MockMilkSource {
	mock := &MockMilkSource{ctrl: ctrl}
	mock.recorder = &MockMilkSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMilkSource) EXPECT() *MockMilkSourceMockRecorder {
	return m.recorder
}

// List mocks base method.
func (m *MockMilkSource) List(ctx context.Context, householdID uuid.UUID, month, year, page, limit int) ([]*milk.Entry, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, householdID, month, year, page, limit)
	ret0, _ := ret[0].([]*milk.Entry)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// List indicates an expected call of List.
func (mr *MockMilkSourceMockRecorder) List(ctx, householdID, month, year, page, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockMilkSource)(nil).List), ctx, householdID, month, year, page, limit)
}

// MockTripSource is a mock of TripSource interface.
type MockTripSource struct {
	ctrl     *gomock.Controller
	recorder *MockTripSourceMockRecorder
	isgomock struct{}
}

// MockTripSourceMockRecorder is the mock recorder for MockTripSource.
type MockTripSourceMockRecorder struct {
	mock *MockTripSource
}

// NewMockTripSource creates a new mock instance.
func NewMockTripSource(ctrl *gomock.Controller) *MockTripSource {
	mock := &MockTripSource{ctrl: ctrl}
	mock.recorder = &MockTripSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTripSource) EXPECT() *MockTripSourceMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockTripSource) Get(ctx context.Context, householdID, id uuid.UUID) (*trip.Trip, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, householdID, id)
	ret0, _ := ret[0].(*trip.Trip)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockTripSourceMockRecorder) Get(ctx, householdID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockTripSource)(nil).Get), ctx, householdID, id)
}
