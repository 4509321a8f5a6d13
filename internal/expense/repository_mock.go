// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=expense
//

// Package expense is a generated GoMock package.
package expense

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

// CreateExpense mocks base method.
func (m *MockRepository) CreateExpense(ctx context.Context, e *Expense) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateExpense", ctx, e)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateExpense indicates an expected call of CreateExpense.
func (mr *MockRepositoryMockRecorder) CreateExpense(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateExpense", reflect.TypeOf((*MockRepository)(nil).CreateExpense), ctx, e)
}

// DeleteExpense mocks base method.
func (m *MockRepository) DeleteExpense(ctx context.Context, householdID, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteExpense", ctx, householdID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteExpense indicates an expected call of DeleteExpense.
func (mr *MockRepositoryMockRecorder) DeleteExpense(ctx, householdID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteExpense", reflect.TypeOf((*MockRepository)(nil).DeleteExpense), ctx, householdID, id)
}

// GetExpense mocks base method.
func (m *MockRepository) GetExpense(ctx context.Context, householdID, id uuid.UUID) (*Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetExpense", ctx, householdID, id)
	ret0, _ := ret[0].(*Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetExpense indicates an expected call of GetExpense.
func (mr *MockRepositoryMockRecorder) GetExpense(ctx, householdID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetExpense", reflect.TypeOf((*MockRepository)(nil).GetExpense), ctx, householdID, id)
}

// ListExpenses mocks base method.
func (m *MockRepository) ListExpenses(ctx context.Context, householdID uuid.UUID, filter ListFilter) ([]*Expense, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListExpenses", ctx, householdID, filter)
	ret0, _ := ret[0].([]*Expense)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListExpenses indicates an expected call of ListExpenses.
func (mr *MockRepositoryMockRecorder) ListExpenses(ctx, householdID, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListExpenses", reflect.TypeOf((*MockRepository)(nil).ListExpenses), ctx, householdID, filter)
}

// UpdateExpense mocks base method.
func (m *MockRepository) UpdateExpense(ctx context.Context, e *Expense, previousAmount int64, previousAccountID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateExpense", ctx, e, previousAmount, previousAccountID)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateExpense indicates an expected call of UpdateExpense.
func (mr *MockRepositoryMockRecorder) UpdateExpense(ctx, e, previousAmount, previousAccountID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateExpense", reflect.TypeOf((*MockRepository)(nil).UpdateExpense), ctx, e, previousAmount, previousAccountID)
}

// MockCategoryValidator is a mock of CategoryValidator interface.
type MockCategoryValidator struct {
	ctrl     *gomock.Controller
	recorder *MockCategoryValidatorMockRecorder
	isgomock struct{}
}

// MockCategoryValidatorMockRecorder is the mock recorder for MockCategoryValidator.
type MockCategoryValidatorMockRecorder struct {
	mock *MockCategoryValidator
}

// NewMockCategoryValidator creates a new mock instance.
func NewMockCategoryValidator(ctrl *gomock.Controller) *MockCategoryValidator {
	mock := &MockCategoryValidator{ctrl: ctrl}
	mock.recorder = &MockCategoryValidatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCategoryValidator) EXPECT() *MockCategoryValidatorMockRecorder {
	return m.recorder
}

// Validate mocks base method.
func (m *MockCategoryValidator) Validate(ctx context.Context, householdID uuid.UUID, categoryName, subcategory string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Validate", ctx, householdID, categoryName, subcategory)
	ret0, _ := ret[0].(error)
	return ret0
}

// Validate indicates an expected call of Validate.
func (mr *MockCategoryValidatorMockRecorder) Validate(ctx, householdID, categoryName, subcategory any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Validate", reflect.TypeOf((*MockCategoryValidator)(nil).Validate), ctx, householdID, categoryName, subcategory)
}
