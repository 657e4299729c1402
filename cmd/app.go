package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"passwordStrengthBackend/internal/adapter/corpus"
	"passwordStrengthBackend/internal/adapter/reference"
	"passwordStrengthBackend/internal/config"
	"passwordStrengthBackend/internal/core/lookup"
	services "passwordStrengthBackend/internal/core/service"
	"passwordStrengthBackend/internal/pkg/logging"
	"passwordStrengthBackend/internal/pkg/metrics"
)

// app holds everything the commands share.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	analyzer *services.AnalyzerService
	auditor  *services.AuditService
	reporter *metrics.Reporter
}

func newApp(ctx context.Context, withReporter bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	src, err := corpus.NewSource(cfg.Corpus)
	if err != nil {
		return nil, fmt.Errorf("corpus source: %w", err)
	}
	store, err := corpus.LoadStore(ctx, src, logger)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	analyzer := services.NewAnalyzerService(store,
		services.WithReference(reference.NewZxcvbn(lookup.SeedWords)),
		services.WithMetrics(collector),
		services.WithLogger(logger),
	)

	auditOpts := []services.AuditOption{
		services.WithAuditWorkers(cfg.Audit.Workers),
		services.WithMaxBatch(cfg.Audit.MaxBatch),
		services.WithAuditMetrics(collector),
		services.WithAuditLogger(logger),
	}

	var reporter *metrics.Reporter
	if withReporter && cfg.ReportPath != "" {
		reporter, err = metrics.NewReporter(cfg.ReportPath)
		if err != nil {
			logger.Warn("audit report log disabled", zap.Error(err))
		} else {
			auditOpts = append(auditOpts, services.WithReporter(reporter))
		}
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		analyzer: analyzer,
		auditor:  services.NewAuditService(analyzer, auditOpts...),
		reporter: reporter,
	}, nil
}

func (a *app) Close() {
	if a.reporter != nil {
		if err := a.reporter.Close(); err != nil {
			a.logger.Warn("failed to close audit report log", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
