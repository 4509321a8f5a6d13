// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=budget
//

// Package budget is a generated GoMock package.
package budget

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

// CreateBudget mocks base method.
func (m *MockRepository) CreateBudget(ctx context.Context, b *Budget) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBudget", ctx, b)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBudget indicates an expected call of CreateBudget.
func (mr *MockRepositoryMockRecorder) CreateBudget(ctx, b any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBudget", reflect.TypeOf((*MockRepository)(nil).CreateBudget), ctx, b)
}

// DeleteBudget mocks base method.
func (m *MockRepository) DeleteBudget(ctx context.Context, householdID, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteBudget", ctx, householdID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteBudget indicates an expected call of DeleteBudget.
func (mr *MockRepositoryMockRecorder) DeleteBudget(ctx, householdID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteBudget", reflect.TypeOf((*MockRepository)(nil).DeleteBudget), ctx, householdID, id)
}

// FindBudget mocks base method.
func (m *MockRepository) FindBudget(ctx context.Context, householdID uuid.UUID, category, subcategory string, month, year int) (*Budget, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindBudget", ctx, householdID, category, subcategory, month, year)
	ret0, _ := ret[0].(*Budget)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindBudget indicates an expected call of FindBudget.
func (mr *MockRepositoryMockRecorder) FindBudget(ctx, householdID, category, subcategory, month, year any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindBudget", reflect.TypeOf((*MockRepository)(nil).FindBudget), ctx, householdID, category, subcategory, month, year)
}

// GetBudget mocks base method.
func (m *MockRepository) GetBudget(ctx context.Context, householdID, id uuid.UUID) (*Budget, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBudget", ctx, householdID, id)
	ret0, _ := ret[0].(*Budget)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBudget indicates an expected call of GetBudget.
func (mr *MockRepositoryMockRecorder) GetBudget(ctx, householdID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBudget", reflect.TypeOf((*MockRepository)(nil).GetBudget), ctx, householdID, id)
}

// ListBudgets mocks base method.
func (m *MockRepository) ListBudgets(ctx context.Context, householdID uuid.UUID, month, year int) ([]*Budget, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListBudgets", ctx, householdID, month, year)
	ret0, _ := ret[0].([]*Budget)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListBudgets indicates an expected call of ListBudgets.
func (mr *MockRepositoryMockRecorder) ListBudgets(ctx, householdID, month, year any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBudgets", reflect.TypeOf((*MockRepository)(nil).ListBudgets), ctx, householdID, month, year)
}

// SumSpent mocks base method.
func (m *MockRepository) SumSpent(ctx context.Context, householdID uuid.UUID, category, subcategory string, month, year int) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SumSpent", ctx, householdID, category, subcategory, month, year)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SumSpent indicates an expected call of SumSpent.
func (mr *MockRepositoryMockRecorder) SumSpent(ctx, householdID, category, subcategory, month, year any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SumSpent", reflect.TypeOf((*MockRepository)(nil).SumSpent), ctx, householdID, category, subcategory, month, year)
}

// UpdateBudget mocks base method.
func (m *MockRepository) UpdateBudget(ctx context.Context, b *Budget) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateBudget", ctx, b)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateBudget indicates an expected call of UpdateBudget.
func (mr *MockRepositoryMockRecorder) UpdateBudget(ctx, b any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateBudget", reflect.TypeOf((*MockRepository)(nil).UpdateBudget), ctx, b)
}
