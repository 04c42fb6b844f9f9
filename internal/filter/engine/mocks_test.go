// Code generated by MockGen. DO NOT EDIT.
// Source: types.go

// Package engine is a generated GoMock package.
package engine

import (
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	model "github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
)

// MockDetector is a mock of Detector interface.
type MockDetector struct {
	ctrl     *gomock.Controller
	recorder *MockDetectorMockRecorder
}

// MockDetectorMockRecorder is the mock recorder for MockDetector.
type MockDetectorMockRecorder struct {
	mock *MockDetector
}

// NewMockDetector creates a new mock instance.
func NewMockDetector(ctrl *gomock.Controller) *MockDetector {
	mock := &MockDetector{ctrl: ctrl}
	mock.recorder = &MockDetectorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDetector) EXPECT() *MockDetectorMockRecorder {
	return m.recorder
}

// Detect mocks base method.
func (m *MockDetector) Detect(tx model.Transaction) model.DetectionResult {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Detect", tx)
	ret0, _ := ret[0].(model.DetectionResult)
	return ret0
}

// Detect indicates an expected call of Detect.
func (mr *MockDetectorMockRecorder) Detect(tx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Detect", reflect.TypeOf((*MockDetector)(nil).Detect), tx)
}

// Name mocks base method.
func (m *MockDetector) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)
	return ret0
}

// Name indicates an expected call of Name.
func (mr *MockDetectorMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockDetector)(nil).Name))
}

// MockCustomFilter is a mock of CustomFilter interface.
type MockCustomFilter struct {
	ctrl     *gomock.Controller
	recorder *MockCustomFilterMockRecorder
}

// MockCustomFilterMockRecorder is the mock recorder for MockCustomFilter.
type MockCustomFilterMockRecorder struct {
	mock *MockCustomFilter
}

// NewMockCustomFilter creates a new mock instance.
func NewMockCustomFilter(ctrl *gomock.Controller) *MockCustomFilter {
	mock := &MockCustomFilter{ctrl: ctrl}
	mock.recorder = &MockCustomFilterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCustomFilter) EXPECT() *MockCustomFilterMockRecorder {
	return m.recorder
}

// Evaluate mocks base method.
func (m *MockCustomFilter) Evaluate(tx model.Transaction) (model.CallbackResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Evaluate", tx)
	ret0, _ := ret[0].(model.CallbackResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Evaluate indicates an expected call of Evaluate.
func (mr *MockCustomFilterMockRecorder) Evaluate(tx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Evaluate", reflect.TypeOf((*MockCustomFilter)(nil).Evaluate), tx)
}

// Name mocks base method.
func (m *MockCustomFilter) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)
	return ret0
}

// Name indicates an expected call of Name.
func (mr *MockCustomFilterMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockCustomFilter)(nil).Name))
}

// MockMetrics is a mock of Metrics interface.
type MockMetrics struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsMockRecorder
}

// MockMetricsMockRecorder is the mock recorder for MockMetrics.
type MockMetricsMockRecorder struct {
	mock *MockMetrics
}

// NewMockMetrics creates a new mock instance.
func NewMockMetrics(ctrl *gomock.Controller) *MockMetrics {
	mock := &MockMetrics{ctrl: ctrl}
	mock.recorder = &MockMetricsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetrics) EXPECT() *MockMetricsMockRecorder {
	return m.recorder
}

// ObserveDetection mocks base method.
func (m *MockMetrics) ObserveDetection(detector string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveDetection", detector)
}

// ObserveDetection indicates an expected call of ObserveDetection.
func (mr *MockMetricsMockRecorder) ObserveDetection(detector interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveDetection", reflect.TypeOf((*MockMetrics)(nil).ObserveDetection), detector)
}

// ObserveEvaluation mocks base method.
func (m *MockMetrics) ObserveEvaluation(accept bool, score int, started time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveEvaluation", accept, score, started)
}

// ObserveEvaluation indicates an expected call of ObserveEvaluation.
func (mr *MockMetricsMockRecorder) ObserveEvaluation(accept, score, started interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveEvaluation", reflect.TypeOf((*MockMetrics)(nil).ObserveEvaluation), accept, score, started)
}
