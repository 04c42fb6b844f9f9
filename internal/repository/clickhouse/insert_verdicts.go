package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
)

// InsertVerdicts stores verdict rows in ClickHouse.
func (r *Repository) InsertVerdicts(ctx context.Context, verdicts []model.VerdictRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_verdicts", err, start)
	}()

	if len(verdicts) == 0 {
		return nil
	}

	const query = `
INSERT INTO spam_verdicts (
	network,
	txid,
	accept,
	score,
	reasons,
	message,
	evaluated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare verdicts batch: %w", err)
	}

	for _, v := range verdicts {
		if err = batch.Append(
			v.Network,
			v.TxID,
			v.Accept,
			uint32(v.Score),
			v.Reasons,
			v.Message,
			v.EvaluatedAt,
		); err != nil {
			return fmt.Errorf("append verdict: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert verdicts: %w", err)
	}
	return nil
}
