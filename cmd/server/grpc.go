package main

import (
	"github.com/charithe/scicalc/pkg/calculator"
	"github.com/charithe/scicalc/pkg/v1pb"
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"go.opencensus.io/plugin/ocgrpc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/channelz/service"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// newGRPCServer registers the calculator and its health service together with
// reflection and channelz.
func newGRPCServer(svc *calculator.Service) *grpc.Server {
	grpc.EnableTracing = true
	grpcLogger := zap.L().Named("grpc")

	// evaluation failures are InvalidArgument and already logged at debug by
	// the service
	codeToLevel := grpc_zap.CodeToLevel(func(code codes.Code) zapcore.Level {
		switch code {
		case codes.OK, codes.InvalidArgument:
			return zapcore.DebugLevel
		}
		return grpc_zap.DefaultCodeToLevel(code)
	})
	recoveryOpt := grpc_recovery.WithRecoveryHandler(recoverPanic)

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(&ocgrpc.ServerHandler{}),
		grpc_middleware.WithUnaryServerChain(
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_zap.UnaryServerInterceptor(grpcLogger, grpc_zap.WithLevels(codeToLevel)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc_middleware.WithStreamServerChain(
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_zap.StreamServerInterceptor(grpcLogger, grpc_zap.WithLevels(codeToLevel)),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	v1pb.RegisterCalculatorServer(grpcServer, svc)
	healthpb.RegisterHealthServer(grpcServer, svc)

	reflection.Register(grpcServer)
	service.RegisterChannelzServiceToServer(grpcServer)

	return grpcServer
}

func recoverPanic(p interface{}) error {
	zap.S().Errorw("Recovered from panic", "panic", p)
	return status.Errorf(codes.Internal, "internal error")
}
