package services

import (
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"passwordStrengthBackend/internal/core/algorithm"
	"passwordStrengthBackend/internal/core/domain"
	"passwordStrengthBackend/internal/core/suggest"
	"passwordStrengthBackend/internal/pkg/logging"
	"passwordStrengthBackend/internal/pkg/metrics"
	"passwordStrengthBackend/internal/port"
	"passwordStrengthBackend/internal/utils/random"
)

const (
	ShortPasswordLength       = 8
	RecommendedPasswordLength = 12
	DefaultGenerationAttempts = 10
	DefaultGenerationMinScore = 80
	DefaultGenerationMinDays  = 36500
	FallbackStrongPassword    = "Tr0ub4dor&3"
	fallbackNote              = "Could not meet exact criteria, but this password is reasonably strong."
	emptyPasswordReasoning    = "An empty password provides no security."
	secondsPerDay             = 86400
	exampleSuggestionPrefix   = "Consider something like: "
)

type AnalyzerService struct {
	store     port.LeakLookup
	composer  *suggest.Composer
	reference port.ReferenceEstimator
	metrics   *metrics.Collector
	logger    *zap.Logger
}

type Option func(*AnalyzerService)

func WithReference(ref port.ReferenceEstimator) Option {
	return func(s *AnalyzerService) { s.reference = ref }
}

func WithMetrics(c *metrics.Collector) Option {
	return func(s *AnalyzerService) { s.metrics = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *AnalyzerService) { s.logger = logging.OrNop(l) }
}

// WithRandom fixes the source behind every generated password.
func WithRandom(src random.Source) Option {
	return func(s *AnalyzerService) { s.composer = suggest.NewComposer(src) }
}

func NewAnalyzerService(store port.LeakLookup, opts ...Option) *AnalyzerService {
	s := &AnalyzerService{
		store:  store,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.composer == nil {
		s.composer = suggest.NewComposer(nil)
	}
	return s
}

func (s *AnalyzerService) Analyze(password string) domain.AnalysisResult {
	start := time.Now()
	result := s.analyze(password)
	took := time.Since(start)

	s.metrics.ObserveAnalysis(result, took)
	s.logger.Debug("password analysed",
		zap.Int("length", utf8.RuneCountInString(password)),
		zap.Int("score", result.Score),
		zap.Int("patterns", len(result.PatternsDetected)),
		zap.String("attackVector", string(result.AttackVector)),
		zap.Duration("took", took),
	)
	return result
}

func (s *AnalyzerService) analyze(password string) domain.AnalysisResult {
	if password == "" {
		return domain.AnalysisResult{
			Score:                0,
			TimeToCrack:          "instant",
			VulnerabilityFactors: []string{"Empty password"},
			Suggestions:          []string{"Create a password"},
			PatternsDetected:     []domain.PatternTag{},
			AttackVector:         domain.AttackInstantGuess,
		}
	}

	patterns := algorithm.DetectPatterns(password, s.store.CommonWords())
	if patterns == nil {
		patterns = []domain.PatternTag{}
	}
	compromised := s.store.IsLeaked(password)
	entropy := algorithm.Entropy(password)
	estimate := algorithm.EstimateCrackTime(password, len(patterns))

	return domain.AnalysisResult{
		Score:                algorithm.Score(entropy, compromised, len(patterns)),
		TimeToCrack:          estimate.Formatted,
		TimeToCrackSeconds:   estimate.Seconds,
		VulnerabilityFactors: vulnerabilityFactors(password, patterns, compromised),
		Suggestions:          suggestions(password, patterns),
		PatternsDetected:     patterns,
		Entropy:              entropy,
		IsCompromised:        compromised,
		AttackVector:         algorithm.ClassifyAttackVector(patterns, compromised),
	}
}

func vulnerabilityFactors(password string, patterns []domain.PatternTag, compromised bool) []string {
	factors := make([]string, 0, len(patterns)+2)
	if compromised {
		factors = append(factors, "Password found in leaked database")
	}
	if utf8.RuneCountInString(password) < ShortPasswordLength {
		factors = append(factors, "Password too short")
	}
	for _, p := range patterns {
		factors = append(factors, "Contains "+p.Label())
	}
	return factors
}

func suggestions(password string, patterns []domain.PatternTag) []string {
	var out []string
	if utf8.RuneCountInString(password) < RecommendedPasswordLength {
		out = append(out, "Increase password length to at least 12 characters")
	}

	profile := algorithm.Profile(password)
	if !profile.HasUpper {
		out = append(out, "Add uppercase letters")
	}
	if !profile.HasLower {
		out = append(out, "Add lowercase letters")
	}
	if !profile.HasDigit {
		out = append(out, "Add numeric digits")
	}
	if !profile.HasSpecial {
		out = append(out, "Add special characters (!@#$%^&*)")
	}

	present := make(map[domain.PatternTag]bool, len(patterns))
	for _, p := range patterns {
		present[p] = true
	}
	if present[domain.PatternSequentialNumbers] {
		out = append(out, "Avoid sequential numbers (like '123')")
	}
	if present[domain.PatternRepeatedCharacters] {
		out = append(out, "Avoid repeated characters (like 'aaa')")
	}
	if present[domain.PatternKeyboard] {
		out = append(out, "Avoid keyboard patterns (like 'qwerty')")
	}
	if present[domain.PatternCommonWord] {
		out = append(out, "Avoid dictionary words")
	}
	if present[domain.PatternYear] || present[domain.PatternDate] {
		out = append(out, "Avoid using dates, especially birth years")
	}

	return append(out, exampleSuggestionPrefix+suggest.RuleBasedImprovement(password))
}

// Assess runs the analysis and attaches a generated alternative with both explanations.
func (s *AnalyzerService) Assess(password string) domain.Report {
	result := s.Analyze(password)

	var bundle domain.SuggestionBundle
	if password == "" {
		improved, explanation := s.composer.GenerateImprovedPassword(password)
		bundle = domain.SuggestionBundle{
			ImprovedPassword:       improved,
			ImprovementExplanation: explanation,
			WeaknessReasoning:      emptyPasswordReasoning,
		}
	} else {
		bundle = s.composer.Compose(password, result.TimeToCrack, string(result.AttackVector))
	}

	report := domain.Report{Result: result, SuggestionBundle: bundle}
	if s.reference != nil && password != "" {
		ref := s.reference.Estimate(password)
		report.Reference = &ref
	}
	return report
}

func (s *AnalyzerService) GenerateImprovedPassword(password string) (string, string) {
	return s.composer.GenerateImprovedPassword(password)
}

func (s *AnalyzerService) ExplainWeakness(password, timeToCrack, attackVector string) string {
	return suggest.ExplainWeakness(password, timeToCrack, attackVector)
}

// GenerateStrongPassword retries generation until a candidate meets criteria or
// MaxAttempts is spent, then falls back to FallbackStrongPassword.
func (s *AnalyzerService) GenerateStrongPassword(criteria domain.GenerationCriteria) domain.GeneratedPassword {
	maxAttempts := criteria.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultGenerationAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate, _ := s.composer.GenerateImprovedPassword("")
		result := s.Analyze(candidate)
		if result.Score >= criteria.MinScore && result.TimeToCrackSeconds/secondsPerDay >= criteria.MinDays {
			s.metrics.ObserveGeneration(attempt, false)
			s.logger.Info("strong password generated", zap.Int("attempts", attempt), zap.Int("score", result.Score))
			return domain.GeneratedPassword{
				Password:    candidate,
				Score:       result.Score,
				TimeToCrack: result.TimeToCrack,
				Attempts:    attempt,
			}
		}
	}

	s.metrics.ObserveGeneration(maxAttempts, true)
	s.logger.Warn("generation criteria not met, using fallback",
		zap.Int("attempts", maxAttempts),
		zap.Int("minScore", criteria.MinScore),
		zap.Float64("minDays", criteria.MinDays),
	)

	result := s.Analyze(FallbackStrongPassword)
	return domain.GeneratedPassword{
		Password:    FallbackStrongPassword,
		Score:       result.Score,
		TimeToCrack: result.TimeToCrack,
		Attempts:    maxAttempts,
		Note:        fallbackNote,
	}
}

func DefaultGenerationCriteria() domain.GenerationCriteria {
	return domain.GenerationCriteria{
		MinScore:    DefaultGenerationMinScore,
		MinDays:     DefaultGenerationMinDays,
		MaxAttempts: DefaultGenerationAttempts,
	}
}
