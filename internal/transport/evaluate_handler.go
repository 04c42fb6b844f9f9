// Package transport exposes the HTTP evaluation endpoint.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Evaluator produces a verdict for one decoded transaction.
	Evaluator interface {
		Evaluate(tx model.Transaction) model.FilterVerdict
	}

	// TxDecoder turns raw wire hex into the filter model.
	TxDecoder interface {
		FromHex(rawHex string) (model.Transaction, error)
	}
)

// EvaluateRequest is the POST /v1/evaluate body. Either the raw wire hex or a
// pre-decoded transaction must be supplied.
type EvaluateRequest struct {
	Hex         string             `json:"hex,omitempty"`
	Transaction *model.Transaction `json:"transaction,omitempty"`
}

// EvaluateResponse mirrors the engine verdict.
type EvaluateResponse struct {
	TxID       string                  `json:"txid"`
	Accept     bool                    `json:"accept"`
	Score      int                     `json:"score"`
	Message    string                  `json:"message"`
	Detections []model.DetectionResult `json:"detections,omitempty"`
}

// EvaluateHandler serves spam verdicts over HTTP.
type EvaluateHandler struct {
	evaluator Evaluator
	decoder   TxDecoder
	logger    *zap.Logger
}

// NewEvaluateHandler returns an EvaluateHandler instance.
func NewEvaluateHandler(evaluator Evaluator, decoder TxDecoder, logger *zap.Logger) (*EvaluateHandler, error) {
	if evaluator == nil {
		return nil, errors.New("evaluator is required")
	}
	if decoder == nil {
		return nil, errors.New("tx decoder is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	return &EvaluateHandler{
		evaluator: evaluator,
		decoder:   decoder,
		logger:    logger.Named("evaluateHandler"),
	}, nil
}

// ServeHTTP handles POST /v1/evaluate.
func (h *EvaluateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	tx, err := h.resolveTransaction(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	verdict := h.evaluator.Evaluate(tx)

	w.Header().Set("Content-Type", "application/json")
	if encodeErr := json.NewEncoder(w).Encode(EvaluateResponse{
		TxID:       tx.TxID,
		Accept:     verdict.Accept,
		Score:      verdict.Score,
		Message:    verdict.Message,
		Detections: verdict.Detections,
	}); encodeErr != nil {
		h.logger.Warn("write evaluate response", zap.Error(encodeErr))
	}
}

func (h *EvaluateHandler) resolveTransaction(req EvaluateRequest) (model.Transaction, error) {
	switch {
	case req.Hex != "" && req.Transaction != nil:
		return model.Transaction{}, errors.New("provide either hex or transaction, not both")
	case req.Hex != "":
		tx, err := h.decoder.FromHex(req.Hex)
		if err != nil {
			return model.Transaction{}, errors.New("malformed transaction hex")
		}
		return tx, nil
	case req.Transaction != nil:
		if len(req.Transaction.Inputs) == 0 || len(req.Transaction.Outputs) == 0 {
			return model.Transaction{}, errors.New("transaction must have inputs and outputs")
		}
		return *req.Transaction, nil
	default:
		return model.Transaction{}, errors.New("hex or transaction is required")
	}
}
