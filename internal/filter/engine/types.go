package engine

import (
	"time"

	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Detector scores one structural spam pattern on a transaction.
	Detector interface {
		Name() string
		Detect(tx model.Transaction) model.DetectionResult
	}

	// CustomFilter is an externally registered scoring callback. The engine
	// never inspects its implementation; Accept=false counts as a detection
	// worth Score points.
	CustomFilter interface {
		Name() string
		Evaluate(tx model.Transaction) (model.CallbackResult, error)
	}

	// Metrics records evaluation outcomes.
	Metrics interface {
		ObserveEvaluation(accept bool, score int, started time.Time)
		ObserveDetection(detector string)
	}
)
