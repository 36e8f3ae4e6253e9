package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/travel-wellness/internal/infra/config"
)

func TestProvidePlanCacheDisabledReturnsNil(t *testing.T) {
	cfg := &config.Config{Cache: config.CacheConfig{Enabled: false, TTL: time.Millisecond}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cache, cleanup := providePlanCache(cfg, logger)
	require.Nil(t, cache)
	require.NotNil(t, cleanup)
	cleanup()
}

func TestBuildValkeyOptionsPlainAddress(t *testing.T) {
	cfg := &config.Config{Cache: config.CacheConfig{Addr: "localhost:6379"}}

	opt, err := buildValkeyOptions(cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"localhost:6379"}, opt.InitAddress)
}
