package main

import (
	"fmt"

	"github.com/MKhiriev/go-brand-kit/internal/config"
	"github.com/MKhiriev/go-brand-kit/internal/handler/http"
	"github.com/MKhiriev/go-brand-kit/internal/logger"
	"github.com/MKhiriev/go-brand-kit/internal/server"
	"github.com/MKhiriev/go-brand-kit/internal/service"
	"github.com/MKhiriev/go-brand-kit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("brand-kit-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(*cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	srv, err := server.NewServer(http.NewHandler(services, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	build = build.OrNotAvailable()
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
