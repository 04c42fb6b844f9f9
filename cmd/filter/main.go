// Command filter evaluates raw transactions from the command line and prints
// one JSON verdict per transaction. It exits non-zero when any transaction is
// rejected, so it can gate scripts and CI checks.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/spamguard7000-backend/internal/bitcoin"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/engine"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/luafilter"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/metrics"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/transport"
	"github.com/goodnatureofminers/spamguard7000-backend/pkg/workerpool"
)

type config struct {
	Network         string   `long:"network" env:"SPAMGUARD_NETWORK" description:"network name" default:"mainnet"`
	Threshold       int      `long:"threshold" env:"SPAMGUARD_THRESHOLD" description:"rejection threshold" default:"50"`
	DisableP2WSH    bool     `long:"disable-p2wsh" description:"disable the P2WSH fake multisig detector"`
	DisableOpReturn bool     `long:"disable-op-return" description:"disable the chained OP_RETURN detector"`
	LuaFilters      []string `long:"lua-filter" description:"paths to Lua filter scripts"`
	File            string   `long:"file" short:"f" description:"file with one raw transaction hex per line"`
	Workers         int      `long:"workers" description:"concurrent evaluations in batch mode" default:"4"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	args, err := flags.ParseArgs(&cfg, os.Args)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	allAccepted, err := run(ctx, cfg, args[1:], logger)
	if err != nil {
		logger.Fatal("filter failed", zap.Error(err))
	}
	if !allAccepted {
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, args []string, logger *zap.Logger) (bool, error) {
	eng, err := engine.New(model.Config{
		Threshold:               cfg.Threshold,
		EnableP2WSHDetection:    !cfg.DisableP2WSH,
		EnableOpReturnDetection: !cfg.DisableOpReturn,
	}, metrics.NewFilterEngine(cfg.Network), logger)
	if err != nil {
		return false, fmt.Errorf("init filter engine: %w", err)
	}

	for _, path := range cfg.LuaFilters {
		f, err := luafilter.NewFromFile(path)
		if err != nil {
			return false, fmt.Errorf("load lua filter %s: %w", path, err)
		}
		if err := eng.RegisterFilter(f); err != nil {
			return false, fmt.Errorf("register lua filter %s: %w", path, err)
		}
	}

	hexes, err := collectTransactions(cfg.File, args)
	if err != nil {
		return false, err
	}
	if len(hexes) == 0 {
		return false, errors.New("no transactions to evaluate, pass hex arguments or --file")
	}

	responses, err := workerpool.Map(ctx, cfg.Workers, hexes, func(_ context.Context, rawHex string) (transport.EvaluateResponse, error) {
		tx, err := bitcoin.FromHex(rawHex)
		if err != nil {
			return transport.EvaluateResponse{}, err
		}
		verdict := eng.Evaluate(tx)
		return transport.EvaluateResponse{
			TxID:       tx.TxID,
			Accept:     verdict.Accept,
			Score:      verdict.Score,
			Message:    verdict.Message,
			Detections: verdict.Detections,
		}, nil
	})
	if err != nil {
		return false, fmt.Errorf("evaluate transactions: %w", err)
	}

	allAccepted := true
	enc := json.NewEncoder(os.Stdout)
	for _, res := range responses {
		if !res.Accept {
			allAccepted = false
		}
		if err := enc.Encode(res); err != nil {
			return false, fmt.Errorf("write verdict: %w", err)
		}
	}
	return allAccepted, nil
}

// collectTransactions merges positional hex arguments with the lines of the
// optional batch file. Blank lines and #-comments in the file are skipped.
func collectTransactions(path string, args []string) ([]string, error) {
	hexes := make([]string, 0, len(args))
	hexes = append(hexes, args...)

	if path == "" {
		return hexes, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		hexes = append(hexes, line)
	}
	return hexes, nil
}
