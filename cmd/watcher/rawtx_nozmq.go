//go:build !zmq

package main

import (
	"context"

	"go.uber.org/zap"
)

// Without the zmq build tag the watcher relies on interval polling alone.
func startTxSignal(_ context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr != "" {
		logger.Warn("zmq support not compiled in, ignoring zmq-addr", zap.String("addr", addr))
	}
	return nil, nil
}
