package main

import (
	"io"
	"io/ioutil"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/charithe/scicalc/pkg/calculator"
	prom "github.com/prometheus/client_golang/prometheus"
	"go.opencensus.io/exporter/prometheus"
	"go.opencensus.io/plugin/ocgrpc"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/zpages"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// newMetricsExporter registers the gRPC and calculator views and exports them
// through the default Prometheus registry.
func newMetricsExporter() (*prometheus.Exporter, error) {
	views := append(append([]*view.View{}, ocgrpc.DefaultServerViews...), calculator.DefaultViews...)
	if err := view.Register(views...); err != nil {
		return nil, err
	}

	registry, ok := prom.DefaultRegisterer.(*prom.Registry)
	if !ok {
		zap.S().Warn("Unable to obtain default Prometheus registry. Creating new one.")
		registry = nil
	}

	exporter, err := prometheus.NewExporter(prometheus.Options{Registry: registry})
	if err != nil {
		return nil, err
	}

	view.RegisterExporter(exporter)
	view.SetReportingPeriod(15 * time.Second)

	return exporter, nil
}

// statusHandler answers 200 while the health service reports SERVING and 503
// otherwise.
func statusHandler(health healthpb.HealthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			io.Copy(ioutil.Discard, r.Body)
			r.Body.Close()
		}

		resp, err := health.Check(r.Context(), &healthpb.HealthCheckRequest{})
		if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			if err != nil {
				zap.S().Warnw("Health check failed", "error", err)
			}
			w.WriteHeader(http.StatusServiceUnavailable)
			io.WriteString(w, "NOT SERVING")
			return
		}
		io.WriteString(w, "OK")
	}
}

func newStatusMux(health healthpb.HealthServer, metrics http.Handler, debug bool) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/status", statusHandler(health))
	mux.Handle("/metrics", metrics)

	if debug {
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
		mux.Handle("/debug/", http.StripPrefix("/debug", zpages.Handler))
	}

	return mux
}

func newStatusServer(handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ErrorLog:          zap.NewStdLog(zap.L().Named("http")),
		ReadHeaderTimeout: httpTimeout,
		WriteTimeout:      httpTimeout,
		IdleTimeout:       httpTimeout,
	}
}
