package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charithe/scicalc/pkg/calculator"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStatusHandler(t *testing.T) {
	svc := calculator.NewService(calculator.DefaultConfig())
	handler := statusHandler(svc)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())

	svc.Shutdown()

	rec = httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "NOT SERVING", rec.Body.String())
}

func TestStatusMux(t *testing.T) {
	svc := calculator.NewService(calculator.DefaultConfig())
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "calculator_evaluations 1")
	})

	testCases := []struct {
		name     string
		debug    bool
		path     string
		wantCode int
	}{
		{name: "status", path: "/status", wantCode: http.StatusOK},
		{name: "metrics", path: "/metrics", wantCode: http.StatusOK},
		{name: "pprofHidden", path: "/debug/pprof/", wantCode: http.StatusNotFound},
		{name: "pprofDebug", debug: true, path: "/debug/pprof/", wantCode: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newStatusMux(svc, metrics, tc.debug).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	err := recoverPanic("boom")
	require.Equal(t, codes.Internal, status.Code(err))
	require.NotContains(t, err.Error(), "boom")
}

func TestLoadTLSConfigMissingFiles(t *testing.T) {
	_, err := loadTLSConfig("missing.crt", "missing.key", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load server key pair")
}
