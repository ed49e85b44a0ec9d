package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/sotf-server-config/internal/config"
	"github.com/MKhiriev/sotf-server-config/internal/environment"
	"github.com/MKhiriev/sotf-server-config/internal/logger"
	"github.com/MKhiriev/sotf-server-config/internal/output"
	"github.com/MKhiriev/sotf-server-config/internal/settings"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run generates the server config and returns the process exit code. Every
// failure is reported as a single "Error: ..." line on stderr.
func run(args []string, stdout, stderr io.Writer) int {
	log := logger.NewLogger("sotf-config-creator", stderr)

	cfg, err := config.GetStructuredConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		config.PrintUsage(stderr)
		return 0
	}
	if err != nil {
		return fail(stderr, err)
	}

	if cfg.ShowVersion {
		printBuildInfo(stdout)
		return 0
	}

	log, err = log.WithLevel(cfg.Log.Level)
	if err != nil {
		return fail(stderr, err)
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	env, err := environment.Load(cfg.Source.EnvFiles...)
	if err != nil {
		return fail(stderr, err)
	}

	doc, err := settings.NewBuilder(env, log).Render()
	if err != nil {
		log.Debug().Err(err).Msg("error building server config")
		return fail(stderr, err)
	}

	if err = output.Write(cfg.Output.Path, doc, stdout); err != nil {
		return fail(stderr, err)
	}

	log.Debug().Str("output", destination(cfg.Output.Path)).Msg("server config created")
	return 0
}

func fail(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}

func destination(path string) string {
	if path == "" {
		return output.Stdout
	}
	return path
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
