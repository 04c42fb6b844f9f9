package model

import "time"

// DetectionResult is the outcome of a single detector run. Confidence is a
// 0-100 estimate of how strongly the transaction matches the pattern.
// Details carries optional structured facts for diagnostics.
type DetectionResult struct {
	Detected   bool              `json:"detected"`
	Confidence int               `json:"confidence"`
	Reason     string            `json:"reason"`
	Details    map[string]string `json:"details,omitempty"`
}

// FilterVerdict is the engine's final decision for one transaction.
// Detections preserves detector invocation order.
type FilterVerdict struct {
	Accept     bool              `json:"accept"`
	Score      int               `json:"score"`
	Detections []DetectionResult `json:"detections,omitempty"`
	Message    string            `json:"message"`
}

// CallbackResult is what an externally registered scoring callback returns.
// Accept=false marks a detection worth Score points.
type CallbackResult struct {
	Accept  bool
	Score   int
	Message string
}

// Config governs which detectors run and the rejection threshold.
// It is fixed at engine construction.
type Config struct {
	Threshold               int
	EnableP2WSHDetection    bool
	EnableOpReturnDetection bool
}

// DefaultThreshold rejects a transaction once detector confidences sum to a
// single strong match.
const DefaultThreshold = 50

// DefaultConfig returns a Config with both detectors enabled.
func DefaultConfig() Config {
	return Config{
		Threshold:               DefaultThreshold,
		EnableP2WSHDetection:    true,
		EnableOpReturnDetection: true,
	}
}

// VerdictRecord is a verdict row persisted for the audit trail.
type VerdictRecord struct {
	Network     string
	TxID        string
	Accept      bool
	Score       int
	Reasons     []string
	Message     string
	EvaluatedAt time.Time
}
