package watcher

import (
	"context"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// MempoolSource lists and fetches mempool transactions from the node.
	MempoolSource interface {
		GetRawMempool() ([]*chainhash.Hash, error)
		GetRawTransactionVerbose(txid *chainhash.Hash) (*btcjson.TxRawResult, error)
	}

	// Evaluator produces a verdict for one decoded transaction.
	Evaluator interface {
		Evaluate(tx model.Transaction) model.FilterVerdict
	}

	// VerdictSink receives verdict rows for persistence.
	VerdictSink interface {
		Add(ctx context.Context, v model.VerdictRecord) error
	}
)
