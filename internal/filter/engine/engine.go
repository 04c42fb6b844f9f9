// Package engine aggregates detector and callback scores into a verdict.
package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/detector"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
)

// Engine evaluates transactions against the configured detectors and any
// registered custom filters. It holds no per-evaluation state: a single
// instance may evaluate transactions from many goroutines, provided all
// filters are registered before the first evaluation.
type Engine struct {
	cfg      model.Config
	logger   *zap.Logger
	metrics  Metrics
	p2wsh    Detector
	opReturn Detector
	filters  []CustomFilter
}

// New constructs an Engine with the built-in detectors.
func New(cfg model.Config, metrics Metrics, logger *zap.Logger) (*Engine, error) {
	if cfg.Threshold < 0 {
		return nil, fmt.Errorf("threshold %d must not be negative", cfg.Threshold)
	}
	if metrics == nil {
		return nil, errors.New("engine metrics is required")
	}
	if logger == nil {
		return nil, errors.New("engine logger is required")
	}

	return &Engine{
		cfg:      cfg,
		logger:   logger.Named("filterEngine"),
		metrics:  metrics,
		p2wsh:    detector.NewP2WSHDetector(),
		opReturn: detector.NewOpReturnDetector(),
	}, nil
}

// RegisterFilter appends a custom scoring callback. Registration must finish
// before the engine starts evaluating; the registry is not locked.
func (e *Engine) RegisterFilter(f CustomFilter) error {
	if f == nil {
		return errors.New("custom filter is nil")
	}
	e.filters = append(e.filters, f)
	return nil
}

// Evaluate runs the enabled detectors and registered filters in order and
// sums their scores. The transaction is rejected once the total reaches the
// configured threshold.
func (e *Engine) Evaluate(tx model.Transaction) model.FilterVerdict {
	started := time.Now()

	var (
		score      int
		detections []model.DetectionResult
	)

	if e.cfg.EnableP2WSHDetection {
		if res := e.p2wsh.Detect(tx); res.Detected {
			score += res.Confidence
			detections = append(detections, res)
			e.metrics.ObserveDetection(e.p2wsh.Name())
		}
	}
	if e.cfg.EnableOpReturnDetection {
		if res := e.opReturn.Detect(tx); res.Detected {
			score += res.Confidence
			detections = append(detections, res)
			e.metrics.ObserveDetection(e.opReturn.Name())
		}
	}

	for _, f := range e.filters {
		res, err := e.runFilter(f, tx)
		if err != nil {
			// A failing callback must not abort the evaluation.
			e.logger.Warn("custom filter failed, ignoring its verdict",
				zap.String("filter", f.Name()),
				zap.String("txid", tx.TxID),
				zap.Error(err),
			)
			continue
		}
		if res.Accept {
			continue
		}
		score += res.Score
		detections = append(detections, model.DetectionResult{
			Detected:   true,
			Confidence: res.Score,
			Reason:     fmt.Sprintf("custom filter %s: %s", f.Name(), res.Message),
		})
		e.metrics.ObserveDetection(f.Name())
	}

	accept := score < e.cfg.Threshold
	verdict := model.FilterVerdict{
		Accept:     accept,
		Score:      score,
		Detections: detections,
		Message:    verdictMessage(accept, score, detections),
	}
	e.metrics.ObserveEvaluation(accept, score, started)
	return verdict
}

// runFilter invokes a callback, converting a panic into an error so one
// misbehaving filter cannot take down the evaluation.
func (e *Engine) runFilter(f CustomFilter, tx model.Transaction) (res model.CallbackResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("custom filter panic: %v", r)
		}
	}()
	return f.Evaluate(tx)
}

func verdictMessage(accept bool, score int, detections []model.DetectionResult) string {
	if len(detections) == 0 {
		return "no spam patterns detected"
	}

	reasons := make([]string, 0, len(detections))
	for _, d := range detections {
		reasons = append(reasons, d.Reason)
	}
	decision := "accepted"
	if !accept {
		decision = "rejected"
	}
	return fmt.Sprintf("%s with score %d: %s", decision, score, strings.Join(reasons, "; "))
}
