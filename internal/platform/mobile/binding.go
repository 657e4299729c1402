package mobile

import (
	"encoding/json"
	"errors"

	"passwordStrengthBackend/internal/core/domain"
	"passwordStrengthBackend/internal/port"
)

var errMalformedRequest = errors.New("malformed request")

type analyzeRequest struct {
	Password string `json:"password"`
}

type generateRequest struct {
	MinScore    *int     `json:"minScore"`
	MinDays     *float64 `json:"minDays"`
	MaxAttempts *int     `json:"maxAttempts"`
}

// MobileBinding exposes the analyzer to iOS/Android through JSON strings.
type MobileBinding struct {
	analyzer port.AnalyzerService
	criteria domain.GenerationCriteria
}

func NewMobileBinding(analyzer port.AnalyzerService, criteria domain.GenerationCriteria) *MobileBinding {
	return &MobileBinding{analyzer: analyzer, criteria: criteria}
}

// Analyze takes {"password": "..."} and returns the full report.
func (m *MobileBinding) Analyze(requestJSON string) string {
	var req analyzeRequest
	if err := json.Unmarshal([]byte(requestJSON), &req); err != nil {
		return createErrorResponse(errMalformedRequest)
	}
	return createSuccessResponse(m.analyzer.Assess(req.Password))
}

func (m *MobileBinding) Improve(requestJSON string) string {
	var req analyzeRequest
	if err := json.Unmarshal([]byte(requestJSON), &req); err != nil {
		return createErrorResponse(errMalformedRequest)
	}

	improved, explanation := m.analyzer.GenerateImprovedPassword(req.Password)
	return createSuccessResponse(domain.SuggestionBundle{
		ImprovedPassword:       improved,
		ImprovementExplanation: explanation,
	})
}

// Generate accepts an empty string to use the configured criteria.
func (m *MobileBinding) Generate(requestJSON string) string {
	var req generateRequest
	if requestJSON != "" {
		if err := json.Unmarshal([]byte(requestJSON), &req); err != nil {
			return createErrorResponse(errMalformedRequest)
		}
	}

	criteria := m.criteria
	if req.MinScore != nil {
		criteria.MinScore = *req.MinScore
	}
	if req.MinDays != nil {
		criteria.MinDays = *req.MinDays
	}
	if req.MaxAttempts != nil {
		criteria.MaxAttempts = *req.MaxAttempts
	}
	return createSuccessResponse(m.analyzer.GenerateStrongPassword(criteria))
}
