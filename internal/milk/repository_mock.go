// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=milk
//

// Package milk is a generated GoMock package.
package milk

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

// CreateEntry mocks base method.
func (m *MockRepository) CreateEntry(ctx context.Context, e *Entry) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateEntry", ctx, e)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateEntry indicates an expected call of CreateEntry.
func (mr *MockRepositoryMockRecorder) CreateEntry(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateEntry", reflect.TypeOf((*MockRepository)(nil).CreateEntry), ctx, e)
}

// CreateSettlement mocks base method.
func (m *MockRepository) CreateSettlement(ctx context.Context, s *Settlement) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSettlement", ctx, s)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateSettlement indicates an expected call of CreateSettlement.
func (mr *MockRepositoryMockRecorder) CreateSettlement(ctx, s any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSettlement", reflect.TypeOf((*MockRepository)(nil).CreateSettlement), ctx, s)
}

// DeleteEntry mocks base method.
func (m *MockRepository) DeleteEntry(ctx context.Context, householdID, id uuid.UUID) (*Entry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteEntry", ctx, householdID, id)
	ret0, _ := ret[0].(*Entry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteEntry indicates an expected call of DeleteEntry.
func (mr *MockRepositoryMockRecorder) DeleteEntry(ctx, householdID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteEntry", reflect.TypeOf((*MockRepository)(nil).DeleteEntry), ctx, householdID, id)
}

// GetEntry mocks base method.
func (m *MockRepository) GetEntry(ctx context.Context, householdID, id uuid.UUID) (*Entry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetEntry", ctx, householdID, id)
	ret0, _ := ret[0].(*Entry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetEntry indicates an expected call of GetEntry.
func (mr *MockRepositoryMockRecorder) GetEntry(ctx, householdID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetEntry", reflect.TypeOf((*MockRepository)(nil).GetEntry), ctx, householdID, id)
}

// IsSettled mocks base method.
func (m *MockRepository) IsSettled(ctx context.Context, householdID uuid.UUID, month, year int) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsSettled", ctx, householdID, month, year)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsSettled indicates an expected call of IsSettled.
func (mr *MockRepositoryMockRecorder) IsSettled(ctx, householdID, month, year any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsSettled", reflect.TypeOf((*MockRepository)(nil).IsSettled), ctx, householdID, month, year)
}

// ListEntries mocks base method.
func (m *MockRepository) ListEntries(ctx context.Context, householdID uuid.UUID, month, year, page, limit int) ([]*Entry, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListEntries", ctx, householdID, month, year, page, limit)
	ret0, _ := ret[0].([]*Entry)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListEntries indicates an expected call of ListEntries.
func (mr *MockRepositoryMockRecorder) ListEntries(ctx, householdID, month, year, page, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListEntries", reflect.TypeOf((*MockRepository)(nil).ListEntries), ctx, householdID, month, year, page, limit)
}

// ListSettledMonths mocks base method.
func (m *MockRepository) ListSettledMonths(ctx context.Context, householdID uuid.UUID) ([]SettledMonth, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListSettledMonths", ctx, householdID)
	ret0, _ := ret[0].([]SettledMonth)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListSettledMonths indicates an expected call of ListSettledMonths.
func (mr *MockRepositoryMockRecorder) ListSettledMonths(ctx, householdID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListSettledMonths", reflect.TypeOf((*MockRepository)(nil).ListSettledMonths), ctx, householdID)
}

// SumMonth mocks base method.
func (m *MockRepository) SumMonth(ctx context.Context, householdID uuid.UUID, month, year int) (int64, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SumMonth", ctx, householdID, month, year)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// SumMonth indicates an expected call of SumMonth.
func (mr *MockRepositoryMockRecorder) SumMonth(ctx, householdID, month, year any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SumMonth", reflect.TypeOf((*MockRepository)(nil).SumMonth), ctx, householdID, month, year)
}
