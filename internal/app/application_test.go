package app

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopMetrics_LogsShutdownFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
	})}
	go func() { _ = srv.Serve(ln) }()
	defer srv.Close()

	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/metrics")
		if err == nil {
			resp.Body.Close()
		}
	}()
	<-started

	var logs bytes.Buffer
	app := &Application{
		logger:        slog.New(slog.NewJSONHandler(&logs, nil)),
		metricsServer: srv,
	}

	// The request is still active, so shutdown cannot finish in time
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app.stopMetrics(ctx)
	close(release)

	assert.Contains(t, logs.String(), "failed to stop metrics server")
	assert.Contains(t, logs.String(), context.Canceled.Error())
}

func TestStopMetrics_NoServer(t *testing.T) {
	var logs bytes.Buffer
	app := &Application{logger: slog.New(slog.NewJSONHandler(&logs, nil))}

	app.stopMetrics(context.Background())
	assert.Empty(t, logs.String())
}
