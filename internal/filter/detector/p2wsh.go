// Package detector implements the structural spam pattern detectors.
package detector

import (
	"fmt"
	"strconv"

	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/script"
)

// P2WSHDetectorName labels results produced by the fake-multisig detector.
const P2WSHDetectorName = "p2wsh_fake_multisig"

const (
	// minWitnessItems is the smallest witness stack that can spend a
	// multisig P2WSH input (signature(s), dummy, witness script).
	minWitnessItems = 3

	// Fake-pubkey thresholds over the 32 bytes following the prefix.
	maxZeroRun     = 4
	maxZeroCount   = 10
	maxRepeatRuns  = 2
	repeatRunWidth = 4

	// Suspicion gates. The ratio rule needs strictly more than
	// ratioCountGate pubkeys and a fake share above one half; the count
	// rule fires on strictly more than absoluteCountGate pubkeys alone.
	ratioCountGate    = 3
	absoluteCountGate = 10
)

// P2WSHDetector flags inputs whose witness scripts carry multisig pubkey
// slots filled with data instead of real compressed keys.
type P2WSHDetector struct{}

// NewP2WSHDetector constructs the fake-multisig detector.
func NewP2WSHDetector() *P2WSHDetector {
	return &P2WSHDetector{}
}

// Name returns the detector identifier.
func (d *P2WSHDetector) Name() string {
	return P2WSHDetectorName
}

// Detect scores the share of P2WSH inputs whose witness scripts look like
// fake multisig. Inputs with fewer than three witness items, or whose last
// witness item does not end in OP_CHECKMULTISIG, are not counted.
func (d *P2WSHDetector) Detect(tx model.Transaction) model.DetectionResult {
	var total, suspicious int

	for _, in := range tx.Inputs {
		if len(in.Witness) < minWitnessItems {
			continue
		}
		witnessScript := in.Witness[len(in.Witness)-1]
		if len(witnessScript) == 0 || witnessScript[len(witnessScript)-1] != script.OpCheckMultisig {
			continue
		}

		total++
		if witnessScriptSuspicious(witnessScript) {
			suspicious++
		}
	}

	if total == 0 || suspicious == 0 {
		return model.DetectionResult{
			Detected:   false,
			Confidence: 0,
			Reason:     "no fake multisig witness scripts",
		}
	}

	return model.DetectionResult{
		Detected:   true,
		Confidence: 100 * suspicious / total,
		Reason:     fmt.Sprintf("fake multisig witness scripts in %d of %d P2WSH inputs", suspicious, total),
		Details: map[string]string{
			"suspicious_inputs": strconv.Itoa(suspicious),
			"p2wsh_inputs":      strconv.Itoa(total),
		},
	}
}

func witnessScriptSuspicious(witnessScript []byte) bool {
	pubkeys := script.ExtractMultisigPubkeys(witnessScript)

	fake := 0
	for _, pk := range pubkeys {
		if pk[0] != 0x02 && pk[0] != 0x03 {
			continue
		}
		if likelyFakePubkey(pk[1:]) {
			fake++
		}
	}

	if len(pubkeys) > ratioCountGate && fake*2 > len(pubkeys) {
		return true
	}
	return len(pubkeys) > absoluteCountGate
}

// likelyFakePubkey inspects the 32 bytes after the compressed-key prefix.
// Real keys are close to uniformly random; embedded data tends to contain
// zero padding and repeated runs.
func likelyFakePubkey(body []byte) bool {
	zeros, run, longestRun := 0, 0, 0
	for _, b := range body {
		if b != 0 {
			run = 0
			continue
		}
		zeros++
		run++
		if run > longestRun {
			longestRun = run
		}
	}

	repeats := 0
	for i := 0; i+repeatRunWidth <= len(body); i++ {
		if body[i] == body[i+1] && body[i] == body[i+2] && body[i] == body[i+3] {
			repeats++
		}
	}

	return longestRun > maxZeroRun || zeros > maxZeroCount || repeats > maxRepeatRuns
}
