package port

import (
	"context"

	"passwordStrengthBackend/internal/core/domain"
)

// LeakLookup is the read-only view of the leaked-password corpus and word list.
type LeakLookup interface {
	IsLeaked(password string) bool
	CommonWords() []string
}

// CorpusSource loads SHA-256 hex digests of leaked passwords.
type CorpusSource interface {
	Name() domain.CorpusSource
	Load(ctx context.Context) ([]string, error)
}

type ReferenceEstimator interface {
	Estimate(password string) domain.ReferenceEstimate
}

type Analyzer interface {
	Analyze(password string) domain.AnalysisResult
}

type AnalyzerService interface {
	Analyzer
	Assess(password string) domain.Report
	GenerateImprovedPassword(password string) (string, string)
	ExplainWeakness(password, timeToCrack, attackVector string) string
	GenerateStrongPassword(criteria domain.GenerationCriteria) domain.GeneratedPassword
}

type AuditService interface {
	Audit(ctx context.Context, passwords []string) (*domain.AuditReport, error)
}
