// Code generated by MockGen. DO NOT EDIT.
// Source: evaluate_handler.go

// Package transport is a generated GoMock package.
package transport

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	model "github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
)

// MockEvaluator is a mock of Evaluator interface.
type MockEvaluator struct {
	ctrl     *gomock.Controller
	recorder *MockEvaluatorMockRecorder
}

// MockEvaluatorMockRecorder is the mock recorder for MockEvaluator.
type MockEvaluatorMockRecorder struct {
	mock *MockEvaluator
}

// NewMockEvaluator creates a new mock instance.
func NewMockEvaluator(ctrl *gomock.Controller) *MockEvaluator {
	mock := &MockEvaluator{ctrl: ctrl}
	mock.recorder = &MockEvaluatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEvaluator) EXPECT() *MockEvaluatorMockRecorder {
	return m.recorder
}

// Evaluate mocks base method.
func (m *MockEvaluator) Evaluate(tx model.Transaction) model.FilterVerdict {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Evaluate", tx)
	ret0, _ := ret[0].(model.FilterVerdict)
	return ret0
}

// Evaluate indicates an expected call of Evaluate.
func (mr *MockEvaluatorMockRecorder) Evaluate(tx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Evaluate", reflect.TypeOf((*MockEvaluator)(nil).Evaluate), tx)
}

// MockTxDecoder is a mock of TxDecoder interface.
type MockTxDecoder struct {
	ctrl     *gomock.Controller
	recorder *MockTxDecoderMockRecorder
}

// MockTxDecoderMockRecorder is the mock recorder for MockTxDecoder.
type MockTxDecoderMockRecorder struct {
	mock *MockTxDecoder
}

// NewMockTxDecoder creates a new mock instance.
func NewMockTxDecoder(ctrl *gomock.Controller) *MockTxDecoder {
	mock := &MockTxDecoder{ctrl: ctrl}
	mock.recorder = &MockTxDecoderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxDecoder) EXPECT() *MockTxDecoderMockRecorder {
	return m.recorder
}

// FromHex mocks base method.
func (m *MockTxDecoder) FromHex(rawHex string) (model.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FromHex", rawHex)
	ret0, _ := ret[0].(model.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FromHex indicates an expected call of FromHex.
func (mr *MockTxDecoderMockRecorder) FromHex(rawHex interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FromHex", reflect.TypeOf((*MockTxDecoder)(nil).FromHex), rawHex)
}
