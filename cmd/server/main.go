package main

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charithe/scicalc/pkg/calculator"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

const httpTimeout = 5 * time.Second

var (
	app = kingpin.New("Calculator Server", "A scientific calculator RPC server")

	debug      = app.Flag("debug", "Enable debug mode").Envar("CALC_DEBUG").Bool()
	listenAddr = app.Flag("listen_addr", "Listen address").Default(":8080").Envar("CALC_LISTEN_ADDR").String()
	logLevel   = app.Flag("log_level", "Log level").Default("info").Envar("CALC_LOG_LEVEL").Enum("error", "warn", "info", "debug")
	statusAddr = app.Flag("status_addr", "Status address").Default(":5000").Envar("CALC_STATUS_ADDR").String()
	tlsCA      = app.Flag("tls_ca", "Path to TLS CA certificate").Envar("CALC_TLS_CA").ExistingFile()
	tlsCert    = app.Flag("tls_cert", "Path to TLS certificate").Envar("CALC_TLS_CERT").ExistingFile()
	tlsKey     = app.Flag("tls_key", "Path to TLS key").Envar("CALC_TLS_KEY").ExistingFile()
	maxExprLen = app.Flag("max_expr_len", "Maximum expression length in characters (0 for no limit)").Default("4096").Envar("CALC_MAX_EXPR_LEN").Int()
	strict     = app.Flag("strict", "Reject unknown characters and unbalanced parentheses").Envar("CALC_STRICT").Bool()
)

func main() {
	_ = kingpin.MustParse(app.Parse(os.Args[1:]))

	initLogging(*logLevel)
	if err := run(); err != nil {
		zap.S().Fatalw("Server failed", "error", err)
	}
}

func run() error {
	promExporter, err := newMetricsExporter()
	if err != nil {
		return errors.Wrap(err, "Failed to create OpenCensus exporter")
	}

	grpcListener, err := net.Listen("tcp", *listenAddr)
	if err != nil {
		return errors.Wrap(err, "Failed to create grpc listener")
	}

	if *tlsKey != "" && *tlsCert != "" {
		zap.S().Info("Configuring TLS")
		tlsConf, err := loadTLSConfig(*tlsCert, *tlsKey, *tlsCA)
		if err != nil {
			return err
		}
		grpcListener = tls.NewListener(grpcListener, tlsConf)
	}

	httpListener, err := net.Listen("tcp", *statusAddr)
	if err != nil {
		return errors.Wrap(err, "Failed to create http listener")
	}

	svc := calculator.NewService(calculator.Config{
		MaxExpressionLength: *maxExprLen,
		Strict:              *strict,
	})
	grpcServer := newGRPCServer(svc)
	statusServer := newStatusServer(newStatusMux(svc, promExporter, *debug))

	errChan := make(chan error, 2)
	go func() {
		zap.S().Infow("Starting grpc server", "addr", *listenAddr, "max_expr_len", *maxExprLen, "strict", *strict)
		if err := grpcServer.Serve(grpcListener); err != nil {
			errChan <- errors.Wrap(err, "grpc server failed")
		}
	}()
	go func() {
		zap.S().Infow("Starting HTTP server", "addr", *statusAddr)
		if err := statusServer.Serve(httpListener); err != http.ErrServerClosed {
			errChan <- errors.Wrap(err, "HTTP server failed")
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-shutdownChan:
		zap.S().Infow("Shutting down", "signal", sig.String())
	case err = <-errChan:
		zap.S().Errorw("Shutting down after server failure", "error", err)
	}

	// health checks report NOT_SERVING while in-flight calls finish
	svc.Shutdown()
	grpcServer.GracefulStop()

	ctx, cancelFunc := context.WithTimeout(context.Background(), httpTimeout)
	defer cancelFunc()
	if shutdownErr := statusServer.Shutdown(ctx); shutdownErr != nil {
		zap.S().Warnw("Failed to stop HTTP server cleanly", "error", shutdownErr)
	}

	return err
}
