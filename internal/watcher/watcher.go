// Package watcher evaluates mempool transactions as they arrive.
package watcher

import (
	"context"
	"errors"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/spamguard7000-backend/internal/bitcoin"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/clock"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
)

// Service polls the node's mempool and runs every new transaction through
// the filter engine. Rejected verdicts are forwarded to the sink for the
// audit trail. A ZMQ rawtx signal, when configured, wakes the poll loop
// early; polling still happens at pollInterval without it.
type Service struct {
	logger       *zap.Logger
	network      string
	source       MempoolSource
	evaluator    Evaluator
	sink         VerdictSink
	txSignal     <-chan struct{}
	sleep        func(context.Context, time.Duration) error
	pollInterval time.Duration
	errorBackoff time.Duration

	// seen holds the txids of the previous poll; only transactions not in
	// it are evaluated. Bounded by the node's mempool size.
	seen map[string]struct{}
}

// NewService builds a mempool watcher with dependencies.
func NewService(
	source MempoolSource,
	evaluator Evaluator,
	sink VerdictSink,
	network string,
	logger *zap.Logger,
	txSignal <-chan struct{},
) (*Service, error) {
	if source == nil {
		return nil, errors.New("mempool source is required")
	}
	if evaluator == nil {
		return nil, errors.New("evaluator is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &Service{
		logger:       logger.Named("mempoolWatcher").With(zap.String("network", network)),
		network:      network,
		source:       source,
		evaluator:    evaluator,
		sink:         sink,
		txSignal:     txSignal,
		sleep:        clock.SleepWithContext,
		pollInterval: pollInterval,
		errorBackoff: errorBackoff,
		seen:         map[string]struct{}{},
	}, nil
}

// Run starts the watch loop until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			s.logger.Warn("watch iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.errorBackoff))
			if sleepErr := s.sleep(ctx, s.errorBackoff); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		if err := s.wait(ctx); err != nil {
			return err
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	txids, err := s.source.GetRawMempool()
	if err != nil {
		return err
	}

	next := make(map[string]struct{}, len(txids))
	for _, txid := range txids {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		id := txid.String()
		next[id] = struct{}{}
		if _, ok := s.seen[id]; ok {
			continue
		}

		if err := s.evaluateOne(ctx, txid); err != nil {
			// Transactions vanish from the mempool between listing and
			// fetching; log and keep going.
			s.logger.Debug("skip mempool transaction", zap.String("txid", id), zap.Error(err))
		}
	}

	s.seen = next
	return nil
}

func (s *Service) evaluateOne(ctx context.Context, txid *chainhash.Hash) error {
	raw, err := s.source.GetRawTransactionVerbose(txid)
	if err != nil {
		return err
	}

	tx, err := bitcoin.FromRawResult(*raw)
	if err != nil {
		return err
	}

	verdict := s.evaluator.Evaluate(tx)
	if verdict.Accept {
		return nil
	}

	s.logger.Info("rejected mempool transaction",
		zap.String("txid", tx.TxID),
		zap.Int("score", verdict.Score),
		zap.String("message", verdict.Message),
	)

	if s.sink == nil {
		return nil
	}
	reasons := make([]string, 0, len(verdict.Detections))
	for _, d := range verdict.Detections {
		reasons = append(reasons, d.Reason)
	}
	return s.sink.Add(ctx, model.VerdictRecord{
		Network:     s.network,
		TxID:        tx.TxID,
		Accept:      verdict.Accept,
		Score:       verdict.Score,
		Reasons:     reasons,
		Message:     verdict.Message,
		EvaluatedAt: time.Now().UTC(),
	})
}

func (s *Service) wait(ctx context.Context) error {
	if s.txSignal == nil {
		return s.sleep(ctx, s.pollInterval)
	}

	timer := time.NewTimer(s.pollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.txSignal:
		return nil
	case <-timer.C:
		return nil
	}
}
