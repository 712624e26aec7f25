package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"energy-flow/internal/config"
	"energy-flow/internal/engine"
	"energy-flow/internal/export"
	"energy-flow/internal/logging"
)

const (
	windowTitle         = "Energy flow in a simple circuit"
	instrumentationName = "energy-flow/internal/engine"
)

func main() {
	flags, dir, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}

	settings, err := config.Load(dir, flags)
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(settings.LogLevel, os.Stderr)

	if settings.Exporting() {
		if err := runExport(logger, settings); err != nil {
			logger.Fatal().Err(err).Msg("export failed")
		}
		return
	}

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(mp)

	game, err := NewGame(logger, settings, otel.Meter(instrumentationName))
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(game)
	logFrameTotals(logger, reader)
	if err := mp.Shutdown(context.Background()); err != nil {
		logger.Warn().Err(err).Msg("meter provider shutdown")
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// logFrameTotals reports how many frames were drawn, rejected and skipped
// over the session.
func logFrameTotals(logger zerolog.Logger, reader sdkmetric.Reader) {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		logger.Warn().Err(err).Msg("metrics collection failed")
		return
	}
	totals := engine.CounterTotals(rm)
	logger.Info().
		Int64("frames", totals[engine.MetricFrames]).
		Int64("rejected", totals[engine.MetricErrors]).
		Int64("skipped", totals[engine.MetricSkipped]).
		Msg("session finished")
}

// runExport samples the configured circuit and writes every requested file.
func runExport(logger zerolog.Logger, s config.Settings) error {
	cfg, err := s.Model()
	if err != nil {
		return err
	}
	samples, err := export.Record(cfg, s.Export.Step, s.Export.Samples)
	if err != nil {
		return err
	}

	if s.Export.XLSX != "" {
		if err := export.WriteXLSX(s.Export.XLSX, cfg, samples); err != nil {
			return err
		}
		logger.Info().Str("file", s.Export.XLSX).Int("samples", len(samples)).Msg("waveform table saved")
	}
	if s.Export.TSV != "" {
		if err := export.WriteTSV(s.Export.TSV, samples); err != nil {
			return err
		}
		logger.Info().Str("file", s.Export.TSV).Int("samples", len(samples)).Msg("waveform table saved")
	}
	if s.Export.Plot != "" {
		if err := export.WritePlot(s.Export.Plot, cfg, samples); err != nil {
			return err
		}
		logger.Info().Str("file", s.Export.Plot).Msg("waveform plot saved")
	}
	return nil
}
