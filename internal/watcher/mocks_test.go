// Code generated by MockGen. DO NOT EDIT.
// Source: types.go

// Package watcher is a generated GoMock package.
package watcher

import (
	context "context"
	reflect "reflect"

	btcjson "github.com/btcsuite/btcd/btcjson"
	chainhash "github.com/btcsuite/btcd/chaincfg/chainhash"
	gomock "github.com/golang/mock/gomock"
	model "github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
)

// MockMempoolSource is a mock of MempoolSource interface.
type MockMempoolSource struct {
	ctrl     *gomock.Controller
	recorder *MockMempoolSourceMockRecorder
}

// MockMempoolSourceMockRecorder is the mock recorder for MockMempoolSource.
type MockMempoolSourceMockRecorder struct {
	mock *MockMempoolSource
}

// NewMockMempoolSource creates a new mock instance.
func NewMockMempoolSource(ctrl *gomock.Controller) *MockMempoolSource {
	mock := &MockMempoolSource{ctrl: ctrl}
	mock.recorder = &MockMempoolSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMempoolSource) EXPECT() *MockMempoolSourceMockRecorder {
	return m.recorder
}

// GetRawMempool mocks base method.
func (m *MockMempoolSource) GetRawMempool() ([]*chainhash.Hash, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRawMempool")
	ret0, _ := ret[0].([]*chainhash.Hash)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRawMempool indicates an expected call of GetRawMempool.
func (mr *MockMempoolSourceMockRecorder) GetRawMempool() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRawMempool", reflect.TypeOf((*MockMempoolSource)(nil).GetRawMempool))
}

// GetRawTransactionVerbose mocks base method.
func (m *MockMempoolSource) GetRawTransactionVerbose(txid *chainhash.Hash) (*btcjson.TxRawResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRawTransactionVerbose", txid)
	ret0, _ := ret[0].(*btcjson.TxRawResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRawTransactionVerbose indicates an expected call of GetRawTransactionVerbose.
func (mr *MockMempoolSourceMockRecorder) GetRawTransactionVerbose(txid interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRawTransactionVerbose", reflect.TypeOf((*MockMempoolSource)(nil).GetRawTransactionVerbose), txid)
}

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

// MockVerdictSink is a mock of VerdictSink interface.
type MockVerdictSink struct {
	ctrl     *gomock.Controller
	recorder *MockVerdictSinkMockRecorder
}

// MockVerdictSinkMockRecorder is the mock recorder for MockVerdictSink.
type MockVerdictSinkMockRecorder struct {
	mock *MockVerdictSink
}

// NewMockVerdictSink creates a new mock instance.
func NewMockVerdictSink(ctrl *gomock.Controller) *MockVerdictSink {
	mock := &MockVerdictSink{ctrl: ctrl}
	mock.recorder = &MockVerdictSinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVerdictSink) EXPECT() *MockVerdictSinkMockRecorder {
	return m.recorder
}

// Add mocks base method.
func (m *MockVerdictSink) Add(ctx context.Context, v model.VerdictRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Add", ctx, v)
	ret0, _ := ret[0].(error)
	return ret0
}

// Add indicates an expected call of Add.
func (mr *MockVerdictSinkMockRecorder) Add(ctx, v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockVerdictSink)(nil).Add), ctx, v)
}
