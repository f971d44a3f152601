package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pricewatch/pkg/config"
)

func TestRun_ServerStartStop(t *testing.T) {
	// create temp directory for database
	tmpDir, err := os.MkdirTemp("", "pricewatch-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	t.Setenv("DB_PATH", tmpDir)

	cfg, err := config.Load("testdata/test_config.yml")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:18766", cfg.Server.Listen)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)

	go func() {
		if err := run(ctx, cfg, false); err != nil && ctx.Err() == nil {
			serverErr <- err
		}
		close(serverErr)
	}()

	// wait for server to start
	time.Sleep(500 * time.Millisecond)

	select {
	case err := <-serverErr:
		t.Fatalf("server failed to start: %v", err)
	default:
	}

	resp, err := http.Get("http://127.0.0.1:18766/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	// shutdown
	cancel()

	select {
	case err := <-serverErr:
		if err != nil {
			t.Logf("server stopped with error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("server shutdown timeout")
	}
}

func TestRun_BadDSN(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	cfg := &config.Config{}
	cfg.Database.DSN = "file:/no/such/dir/pricewatch.db?mode=rwc"
	cfg.Database.MaxOpenConns = 1
	cfg.Database.MaxIdleConns = 1
	cfg.Database.ConnMaxLifetime = 60

	err := run(ctx, cfg, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to init database")
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		setupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		setupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		// empty secrets are dropped, the rest masked by lgr
		setupLog(true, "secret1", "", "secret2")
	})
}
