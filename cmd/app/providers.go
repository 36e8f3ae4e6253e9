package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/travel-wellness/internal/domain/auth"
	"github.com/yanqian/travel-wellness/internal/domain/exposure"
	"github.com/yanqian/travel-wellness/internal/domain/hydration"
	"github.com/yanqian/travel-wellness/internal/domain/jetlag"
	"github.com/yanqian/travel-wellness/internal/infra/config"
	"github.com/yanqian/travel-wellness/internal/infra/plancache"
)

func provideJetLagConfig(cfg *config.Config) jetlag.Config {
	return jetlag.Config{
		Policy:   cfg.JetLag.Policy(),
		CacheTTL: cfg.Cache.TTL,
	}
}

func provideExposureConfig(cfg *config.Config) exposure.Config {
	return exposure.Config{Policy: cfg.Exposure.Policy()}
}

func provideHydrationConfig(cfg *config.Config) hydration.Config {
	return hydration.Config{Policy: cfg.Hydration.Policy()}
}

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{Secret: cfg.Auth.Secret}
}

func providePlanCache(cfg *config.Config, logger *slog.Logger) (jetlag.PlanCache, func()) {
	noop := func() {}
	if !cfg.Cache.Enabled {
		logger.Info("plan cache disabled")
		return nil, noop
	}
	opt, err := buildValkeyOptions(cfg)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return plancache.NewMemoryStore(cfg.Cache.TTL), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return plancache.NewMemoryStore(cfg.Cache.TTL), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = retry.Do(
		func() error {
			return client.Do(ctx, client.B().Ping().Build()).Error()
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(200*time.Millisecond),
		retry.MaxDelay(2*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Debug("retrying valkey ping", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return plancache.NewMemoryStore(cfg.Cache.TTL), noop
	}
	logger.Info("plan cache valkey store enabled", "addr", cfg.Cache.Addr)
	return plancache.NewValkeyStore(client, cfg.Cache.Prefix), client.Close
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	if strings.Contains(cfg.Cache.Addr, "://") {
		return valkey.ParseURL(cfg.Cache.Addr)
	}
	return valkey.ClientOption{InitAddress: []string{cfg.Cache.Addr}}, nil
}
