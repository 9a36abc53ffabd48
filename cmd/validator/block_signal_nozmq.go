//go:build !zmq

package main

import (
	"context"

	"go.uber.org/zap"
)

func startBlockSignal(_ context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr != "" {
		logger.Warn("built without zmq support, polling the node instead", zap.String("zmq_addr", addr))
	}
	return nil, nil
}
