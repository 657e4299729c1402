package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"passwordStrengthBackend/internal/core/domain"
	"passwordStrengthBackend/internal/pkg/concurrency"
	"passwordStrengthBackend/internal/pkg/logging"
	"passwordStrengthBackend/internal/pkg/metrics"
	"passwordStrengthBackend/internal/port"
)

const (
	DefaultAuditWorkers  = 4
	DefaultAuditMaxBatch = 1000
	reportCategory       = "audit"
)

type AuditService struct {
	analyzer port.Analyzer
	workers  int
	maxBatch int
	metrics  *metrics.Collector
	reporter *metrics.Reporter
	logger   *zap.Logger
}

type AuditOption func(*AuditService)

func WithAuditWorkers(n int) AuditOption {
	return func(s *AuditService) {
		if n > 0 {
			s.workers = n
		}
	}
}

func WithMaxBatch(n int) AuditOption {
	return func(s *AuditService) {
		if n > 0 {
			s.maxBatch = n
		}
	}
}

func WithAuditMetrics(c *metrics.Collector) AuditOption {
	return func(s *AuditService) { s.metrics = c }
}

// WithReporter appends every finished report to r.
func WithReporter(r *metrics.Reporter) AuditOption {
	return func(s *AuditService) { s.reporter = r }
}

func WithAuditLogger(l *zap.Logger) AuditOption {
	return func(s *AuditService) { s.logger = logging.OrNop(l) }
}

func NewAuditService(analyzer port.Analyzer, opts ...AuditOption) *AuditService {
	s := &AuditService{
		analyzer: analyzer,
		workers:  DefaultAuditWorkers,
		maxBatch: DefaultAuditMaxBatch,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Audit analyses every password on a worker pool. Entries keep input order and
// carry only a masked form of each password.
func (s *AuditService) Audit(ctx context.Context, passwords []string) (*domain.AuditReport, error) {
	if len(passwords) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	if len(passwords) > s.maxBatch {
		return nil, fmt.Errorf("%w: %d passwords, limit %d", domain.ErrBatchTooLarge, len(passwords), s.maxBatch)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &domain.AuditReport{
		ID:        uuid.New().String(),
		StartTime: time.Now(),
		Entries:   make([]domain.AuditEntry, len(passwords)),
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := s.workers
	if workers > len(passwords) {
		workers = len(passwords)
	}
	pool := concurrency.NewWorkerPool(workers, len(passwords))
	report.Workers = pool.Size()
	pool.Start(ctx)

	for i, pw := range passwords {
		err := pool.Submit(ctx, concurrency.Task{
			Index: i,
			Function: func(context.Context) (domain.AnalysisResult, error) {
				return s.analyzer.Analyze(pw), nil
			},
		})
		if err != nil {
			pool.CloseInput()
			return nil, err
		}
	}
	pool.CloseInput()

	perf, err := metrics.CapturePerformance(func() error {
		return collect(ctx, pool, passwords, report.Entries)
	})
	if err != nil {
		return nil, err
	}

	report.EndTime = time.Now()
	report.TimeTaken = report.EndTime.Sub(report.StartTime)
	report.Summary = summarize(report.Entries)

	s.metrics.ObserveAudit(len(passwords))
	s.logger.Info("audit completed",
		zap.String("auditId", report.ID),
		zap.Int("total", report.Summary.Total),
		zap.Int("compromised", report.Summary.Compromised),
		zap.Float64("averageScore", report.Summary.AverageScore),
		zap.Duration("took", report.TimeTaken),
		zap.Uint64("allocBytes", perf.AllocBytes),
		zap.Uint32("gcCycles", perf.GCCycles),
		zap.Duration("avgLatency", pool.Stats().AverageLatency),
	)

	if s.reporter != nil {
		s.reporter.Record(reportCategory, report)
		if err := s.reporter.Flush(); err != nil {
			s.logger.Warn("failed to write audit report", zap.String("auditId", report.ID), zap.Error(err))
		}
	}

	return report, nil
}

// collect drains pool results into entries by input index.
func collect(ctx context.Context, pool *concurrency.WorkerPool, passwords []string, entries []domain.AuditEntry) error {
	received := 0
	for res := range pool.Results() {
		if res.Error != nil {
			return res.Error
		}
		entries[res.Index] = domain.AuditEntry{
			Index:  res.Index,
			Masked: Mask(passwords[res.Index]),
			Result: redact(res.Value),
		}
		received++
	}
	if received < len(passwords) {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fmt.Errorf("audit incomplete: %d of %d analysed", received, len(passwords))
	}
	return nil
}

func summarize(entries []domain.AuditEntry) domain.AuditSummary {
	summary := domain.AuditSummary{
		Total:          len(entries),
		ByAttackVector: make(map[domain.AttackVector]int),
		WeakestIndex:   -1,
	}

	total := 0
	for _, e := range entries {
		total += e.Result.Score
		if e.Result.IsCompromised {
			summary.Compromised++
		}
		summary.ByAttackVector[e.Result.AttackVector]++
		if summary.WeakestIndex < 0 || e.Result.Score < summary.WeakestScore {
			summary.WeakestIndex = e.Index
			summary.WeakestScore = e.Result.Score
		}
	}
	if len(entries) > 0 {
		summary.AverageScore = float64(total) / float64(len(entries))
	}
	return summary
}

// redact drops the example suggestion, which is derived from the plaintext.
func redact(result domain.AnalysisResult) domain.AnalysisResult {
	kept := make([]string, 0, len(result.Suggestions))
	for _, line := range result.Suggestions {
		if !strings.HasPrefix(line, exampleSuggestionPrefix) {
			kept = append(kept, line)
		}
	}
	result.Suggestions = kept
	return result
}

// Mask keeps the first character and replaces the rest with '*'.
func Mask(password string) string {
	if password == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(password)
	rest := utf8.RuneCountInString(password[size:])
	return string(first) + strings.Repeat("*", rest)
}
