// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/gridcheck/internal/adapter"
	"github.com/MKhiriev/gridcheck/internal/config"
	"github.com/MKhiriev/gridcheck/internal/handler"
	"github.com/MKhiriev/gridcheck/internal/logger"
	"github.com/MKhiriev/gridcheck/internal/resolver"
	"github.com/MKhiriev/gridcheck/internal/server"
	"github.com/MKhiriev/gridcheck/internal/service"
	"github.com/MKhiriev/gridcheck/internal/utils"
	"github.com/MKhiriev/gridcheck/internal/workers"
	"github.com/MKhiriev/gridcheck/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	exitOK         = 0
	exitFailure    = 1
	exitUsageError = 2
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)

	code := run(ctx, os.Args[1:], config.EnvironSnapshot(), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run resolves the settings and either prints them (check mode) or serves
// until ctx is cancelled. It returns the process exit code.
func run(ctx context.Context, args []string, environ map[string]string, stdout, stderr io.Writer) int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Fprint(stderr, buildInfo.Banner())

	log := logger.NewLoggerWithWriter("gridcheck", stderr)

	res, err := config.Resolve(args, environ, log)
	if err != nil {
		return reportResolveError(err, stdout, stderr)
	}
	settings := res.Settings

	log.Debug().Any("settings", settings).Msg("resolved settings")

	if settings.CheckConfig {
		if err = utils.WriteIndentedJSON(stdout, settings); err != nil {
			log.Error().Err(err).Msg("error printing settings")
			return exitFailure
		}
		return exitOK
	}

	if settings.LogTCPJSON != "" {
		tcpLog, closer, err := log.WithTCPSink(settings.LogTCPJSON, stderr)
		if err != nil {
			log.Error().Err(err).Msg("error setting up TCP log sink")
			return exitFailure
		}
		defer closer.Close()
		log = tcpLog
	}

	if err = serve(ctx, settings, buildInfo, log); err != nil {
		log.Error().Err(err).Msg("gridcheck stopped with error")
		return exitFailure
	}
	return exitOK
}

func serve(ctx context.Context, settings *config.Settings, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	seedAdapter := adapter.NewHTTPSeedAdapter(adapter.DefaultProbeTimeout, log)

	services, err := service.NewServices(settings, buildInfo, seedAdapter, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, settings, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workersDone := make(chan struct{})
	go func() {
		workers.NewWorkers(services, workers.DefaultProbeInterval, log).Run(ctx)
		close(workersDone)
	}()

	err = srv.RunServer(ctx)
	cancel()
	<-workersDone

	return err
}

// reportResolveError prints err and maps it to an exit code. Help exits 0,
// bad input exits 2 and inconsistent option declarations exit 1.
func reportResolveError(err error, stdout, stderr io.Writer) int {
	switch {
	case errors.Is(err, pflag.ErrHelp):
		fmt.Fprintf(stdout, "Usage of gridcheck:\n%s", config.Usage())
		return exitOK
	case errors.Is(err, resolver.ErrParse),
		errors.Is(err, resolver.ErrConflictingEnvironment),
		errors.Is(err, config.ErrUnknownAddressSource),
		errors.Is(err, config.ErrIncompleteAddressing):
		fmt.Fprintf(stderr, "gridcheck: %v\n", err)
		if errors.Is(err, resolver.ErrParse) {
			fmt.Fprintf(stderr, "Usage of gridcheck:\n%s", config.Usage())
		}
		return exitUsageError
	default:
		fmt.Fprintf(stderr, "gridcheck: %v\n", err)
		return exitFailure
	}
}
