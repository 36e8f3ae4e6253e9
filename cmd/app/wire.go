//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/travel-wellness/internal/bootstrap"
	"github.com/yanqian/travel-wellness/internal/domain/auth"
	"github.com/yanqian/travel-wellness/internal/domain/exposure"
	"github.com/yanqian/travel-wellness/internal/domain/hydration"
	"github.com/yanqian/travel-wellness/internal/domain/jetlag"
	"github.com/yanqian/travel-wellness/internal/infra/config"
	httpiface "github.com/yanqian/travel-wellness/internal/interface/http"
	"github.com/yanqian/travel-wellness/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideJetLagConfig,
		provideExposureConfig,
		provideHydrationConfig,
		provideAuthConfig,
		providePlanCache,
		jetlag.NewService,
		exposure.NewService,
		hydration.NewService,
		auth.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
