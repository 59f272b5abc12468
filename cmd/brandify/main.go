// Command brandify bakes the configured application name into static assets
// such as web manifests. It takes no arguments: the branding values come from
// NEXT_PUBLIC_APP_NAME and NEXT_PUBLIC_APP_SHORT_NAME, the target files from
// the BRANDING_* variables or the file named by CONFIG.
//
// One status line per target is printed to stdout; logs go to stderr. A file
// that cannot be processed does not change the exit status.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-brand-kit/internal/assets"
	"github.com/MKhiriev/go-brand-kit/internal/branding"
	"github.com/MKhiriev/go-brand-kit/internal/config"
	"github.com/MKhiriev/go-brand-kit/internal/logger"
	"github.com/MKhiriev/go-brand-kit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLoggerTo("brandify", os.Stderr)
	logBuildInfo(log, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	os.Exit(run(os.Stdout, log))
}

func run(stdout io.Writer, log *logger.Logger) int {
	cfg, err := config.GetTemplatingConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}

	processor := assets.NewProcessor(nil, branding.NewResolver(branding.OSLookup), log)

	report, err := processor.ProcessAll(assets.ResolveTargets(cfg.Branding.RootDir, cfg.Branding.Targets))
	if err != nil {
		log.Error().Err(err).Msg("error processing branding files")
		return 1
	}

	for _, outcome := range report.Outcomes {
		fmt.Fprintln(stdout, outcome.String())
	}

	log.Info().
		Int("processed", report.Processed()).
		Int("skipped", report.Skipped()).
		Int("failed", report.Failed()).
		Msg("branding files done")

	return 0
}

func logBuildInfo(log *logger.Logger, info models.AppBuildInfo) {
	info = info.OrNotAvailable()
	log.Info().
		Str("version", info.BuildVersion()).
		Str("date", info.BuildDate()).
		Str("commit", info.BuildCommit()).
		Msg("build info")
}
