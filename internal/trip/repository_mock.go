// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=trip
//

// Package trip is a generated GoMock package.
package trip

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

// CreateTrip mocks base method.
func (m *MockRepository) CreateTrip(ctx context.Context, t *Trip) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTrip", ctx, t)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateTrip indicates an expected call of CreateTrip.
func (mr *MockRepositoryMockRecorder) CreateTrip(ctx, t any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTrip", reflect.TypeOf((*MockRepository)(nil).CreateTrip), ctx, t)
}

// DeleteTrip mocks base method.
func (m *MockRepository) DeleteTrip(ctx context.Context, householdID, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTrip", ctx, householdID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTrip indicates an expected call of DeleteTrip.
func (mr *MockRepositoryMockRecorder) DeleteTrip(ctx, householdID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTrip", reflect.TypeOf((*MockRepository)(nil).DeleteTrip), ctx, householdID, id)
}

// GetTrip mocks base method.
func (m *MockRepository) GetTrip(ctx context.Context, householdID, id uuid.UUID) (*Trip, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTrip", ctx, householdID, id)
	ret0, _ := ret[0].(*Trip)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTrip indicates an expected call of GetTrip.
func (mr *MockRepositoryMockRecorder) GetTrip(ctx, householdID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTrip", reflect.TypeOf((*MockRepository)(nil).GetTrip), ctx, householdID, id)
}

// ListTrips mocks base method.
func (m *MockRepository) ListTrips(ctx context.Context, householdID uuid.UUID) ([]*Trip, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTrips", ctx, householdID)
	ret0, _ := ret[0].([]*Trip)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTrips indicates an expected call of ListTrips.
func (mr *MockRepositoryMockRecorder) ListTrips(ctx, householdID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTrips", reflect.TypeOf((*MockRepository)(nil).ListTrips), ctx, householdID)
}

// SumTripExpenses mocks base method.
func (m *MockRepository) SumTripExpenses(ctx context.Context, householdID, tripID uuid.UUID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SumTripExpenses", ctx, householdID, tripID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SumTripExpenses indicates an expected call of SumTripExpenses.
func (mr *MockRepositoryMockRecorder) SumTripExpenses(ctx, householdID, tripID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SumTripExpenses", reflect.TypeOf((*MockRepository)(nil).SumTripExpenses), ctx, householdID, tripID)
}

// UpdateTrip mocks base method.
func (m *MockRepository) UpdateTrip(ctx context.Context, t *Trip) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateTrip", ctx, t)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateTrip indicates an expected call of UpdateTrip.
func (mr *MockRepositoryMockRecorder) UpdateTrip(ctx, t any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateTrip", reflect.TypeOf((*MockRepository)(nil).UpdateTrip), ctx, t)
}
