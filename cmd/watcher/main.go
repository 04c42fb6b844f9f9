package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/spamguard7000-backend/internal/bitcoin"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/engine"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/luafilter"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/metrics"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/transport"
	"github.com/goodnatureofminers/spamguard7000-backend/internal/watcher"
	"github.com/goodnatureofminers/spamguard7000-backend/pkg/batcher"
)

type config struct {
	Network         string        `long:"network" env:"SPAMGUARD_NETWORK" description:"network name" default:"mainnet"`
	RPCURL          string        `long:"rpc-url" env:"SPAMGUARD_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser         string        `long:"rpc-user" env:"SPAMGUARD_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword     string        `long:"rpc-password" env:"SPAMGUARD_RPC_PASSWORD" description:"Bitcoin RPC password"`
	ZMQAddr         string        `long:"zmq-addr" env:"SPAMGUARD_ZMQ_ADDR" description:"ZMQ rawtx endpoint for early mempool wakeups"`
	HTTPAddr        string        `long:"http-addr" env:"SPAMGUARD_HTTP_ADDR" description:"address for the HTTP API and metrics" default:":8000"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"SPAMGUARD_CLICKHOUSE_DSN" description:"ClickHouse DSN for the verdict audit trail"`
	Threshold       int           `long:"threshold" env:"SPAMGUARD_THRESHOLD" description:"rejection threshold" default:"50"`
	DisableP2WSH    bool          `long:"disable-p2wsh" env:"SPAMGUARD_DISABLE_P2WSH" description:"disable the P2WSH fake multisig detector"`
	DisableOpReturn bool          `long:"disable-op-return" env:"SPAMGUARD_DISABLE_OP_RETURN" description:"disable the chained OP_RETURN detector"`
	LuaFilters      []string      `long:"lua-filter" env:"SPAMGUARD_LUA_FILTERS" env-delim:"," description:"paths to Lua filter scripts"`
	FlushSize       int           `long:"flush-size" env:"SPAMGUARD_FLUSH_SIZE" description:"verdict batch size" default:"100"`
	FlushInterval   time.Duration `long:"flush-interval" env:"SPAMGUARD_FLUSH_INTERVAL" description:"verdict flush interval" default:"5s"`
	FlushRPS        int           `long:"flush-rps" env:"SPAMGUARD_FLUSH_RPS" description:"max verdict flushes per second" default:"1"`
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

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("mempool watcher failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	eng, err := engine.New(model.Config{
		Threshold:               cfg.Threshold,
		EnableP2WSHDetection:    !cfg.DisableP2WSH,
		EnableOpReturnDetection: !cfg.DisableOpReturn,
	}, metrics.NewFilterEngine(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init filter engine: %w", err)
	}

	for _, path := range cfg.LuaFilters {
		f, err := luafilter.NewFromFile(path)
		if err != nil {
			return fmt.Errorf("load lua filter %s: %w", path, err)
		}
		if err := eng.RegisterFilter(f); err != nil {
			return fmt.Errorf("register lua filter %s: %w", path, err)
		}
		logger.Info("registered lua filter", zap.String("name", f.Name()))
	}

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc := bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Network))

	var sink watcher.VerdictSink
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository(cfg.Network))
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		verdicts := batcher.New(logger.Named("verdictBatcher"), repo.InsertVerdicts, cfg.FlushSize, cfg.FlushInterval, cfg.FlushRPS)
		verdicts.Start(ctx)
		defer verdicts.Stop()
		sink = verdicts
	}

	txSignal, err := startTxSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return fmt.Errorf("init zmq signal: %w", err)
	}

	if err := startHTTPServer(ctx, cfg.HTTPAddr, eng, logger); err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	svc, err := watcher.NewService(rpc, eng, sink, cfg.Network, logger, txSignal)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startHTTPServer(ctx context.Context, addr string, eng *engine.Engine, logger *zap.Logger) error {
	evaluateHandler, err := transport.NewEvaluateHandler(eng, bitcoin.Decoder{}, logger)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/v1/evaluate", evaluateHandler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting http server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	return nil
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
