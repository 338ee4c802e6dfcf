// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/handler"
	"github.com/MKhiriev/go-fit-tracker/internal/limiter"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/server"
	"github.com/MKhiriev/go-fit-tracker/internal/service"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/internal/workers"
	"github.com/MKhiriev/go-fit-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	exitCode := 0
	defer func() { os.Exit(exitCode) }()

	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("go-fit-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevelForEnvironment(cfg.App.Environment)

	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("address", cfg.Server.HTTPAddress).
		Dur("session_ttl", cfg.App.SessionTTL).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer closeWithLog(log, "storages", storages.Close)

	loginLimiter, closeLimiter, err := limiter.New(ctx, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating login limiter")
	}
	defer closeWithLog(log, "login limiter", closeLimiter)

	services := service.NewServices(storages, loginLimiter, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	ws := workers.New(services.SessionService, cfg.Workers, log)

	srv, err := server.NewServer(handlers, ws, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
		exitCode = 1
	}
}

func closeWithLog(log *logger.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Err(err).Str("resource", name).Msg("error closing resource")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
