package detector

import (
	"fmt"
	"strconv"

	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/script"
)

// OpReturnDetectorName labels results produced by the chained-OP_RETURN detector.
const OpReturnDetectorName = "chained_op_return"

const (
	// Chunked payloads start with this two-byte marker followed by chunk
	// index and chunk total.
	magicByte0 = 0x01
	magicByte1 = 0xbc

	// continuationMaxValue bounds the dust outputs used to fund the next
	// chunk in a chain; the value must be strictly below it.
	continuationMaxValue = 15000

	// maxStandardPayload is the standard relay limit for OP_RETURN data.
	maxStandardPayload = 80

	magicConfidence        = 95
	continuationConfidence = 60
	oversizeConfidence     = 40
)

// OpReturnDetector flags transactions that chain OP_RETURN outputs to embed
// multi-chunk data payloads.
type OpReturnDetector struct{}

// NewOpReturnDetector constructs the chained-OP_RETURN detector.
func NewOpReturnDetector() *OpReturnDetector {
	return &OpReturnDetector{}
}

// Name returns the detector identifier.
func (d *OpReturnDetector) Name() string {
	return OpReturnDetectorName
}

// Detect scores OP_RETURN usage. Rules are checked in priority order: the
// chunk marker wins over the continuation-dust pattern, which wins over an
// oversized payload.
func (d *OpReturnDetector) Detect(tx model.Transaction) model.DetectionResult {
	var (
		opReturnCount int
		largest       int
		hasMagic      bool
		chunkIndex    int
		chunkTotal    int
	)

	for _, out := range tx.Outputs {
		if !out.IsOpReturn() {
			continue
		}
		opReturnCount++

		payload := script.ExtractOpReturnPayload(out.ScriptPubKey)
		if len(payload) > largest {
			largest = len(payload)
		}
		if len(payload) >= 2 && payload[0] == magicByte0 && payload[1] == magicByte1 {
			hasMagic = true
			if len(payload) >= 4 {
				chunkIndex = int(payload[2])
				chunkTotal = int(payload[3])
			}
		}
	}

	if opReturnCount == 0 {
		return model.DetectionResult{
			Detected:   false,
			Confidence: 0,
			Reason:     "no OP_RETURN outputs",
		}
	}

	continuation := false
	for _, out := range tx.Outputs {
		if out.Value > 0 && out.Value < continuationMaxValue {
			continuation = true
			break
		}
	}

	switch {
	case hasMagic:
		return model.DetectionResult{
			Detected:   true,
			Confidence: magicConfidence,
			Reason:     "OP_RETURN payload carries chunk marker",
			Details: map[string]string{
				"chunk_index": strconv.Itoa(chunkIndex),
				"chunk_total": strconv.Itoa(chunkTotal),
			},
		}
	case continuation:
		return model.DetectionResult{
			Detected:   true,
			Confidence: continuationConfidence,
			Reason:     fmt.Sprintf("OP_RETURN output with continuation dust below %d sats", continuationMaxValue),
		}
	case largest > maxStandardPayload:
		return model.DetectionResult{
			Detected:   true,
			Confidence: oversizeConfidence,
			Reason:     fmt.Sprintf("OP_RETURN payload of %d bytes exceeds %d", largest, maxStandardPayload),
			Details: map[string]string{
				"payload_bytes": strconv.Itoa(largest),
			},
		}
	default:
		return model.DetectionResult{
			Detected:   false,
			Confidence: 0,
			Reason:     "OP_RETURN outputs within policy",
		}
	}
}
