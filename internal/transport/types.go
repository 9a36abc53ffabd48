package transport

import (
	"context"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/spork"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	VerdictReader interface {
		VerdictByHash(ctx context.Context, network model.Network, hash string) (model.BlockVerdict, error)
		RejectionsByReason(ctx context.Context, network model.Network, reason string, limit int) ([]model.TxRejection, error)
	}
	SporkLister interface {
		All() []spork.Entry
	}
	TxChecker interface {
		CheckStructure(tx *model.Transaction, checkDuplicateInputs bool) error
	}
	HealthChecker interface {
		Check(ctx context.Context, in *healthpb.HealthCheckRequest, opts ...grpc.CallOption) (*healthpb.HealthCheckResponse, error)
	}
)
