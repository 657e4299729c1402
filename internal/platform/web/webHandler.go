package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"passwordStrengthBackend/internal/core/domain"
	"passwordStrengthBackend/internal/pkg/metrics"
	"passwordStrengthBackend/internal/port"
)

type PasswordRequest struct {
	Password string `json:"password"`
}

type GenerateRequest struct {
	MinScore    *int     `json:"minScore"`
	MinDays     *float64 `json:"minDays"`
	MaxAttempts *int     `json:"maxAttempts"`
}

type ExplainRequest struct {
	Password     string `json:"password"`
	TimeToCrack  string `json:"timeToCrack"`
	AttackVector string `json:"attackVector"`
}

type AuditRequest struct {
	Passwords []string `json:"passwords"`
}

type ImproveResponse struct {
	ImprovedPassword       string `json:"improvedPassword"`
	ImprovementExplanation string `json:"improvementExplanation"`
}

type ExplainResponse struct {
	WeaknessReasoning string `json:"weaknessReasoning"`
}

type WebHandler struct {
	analyzer port.AnalyzerService
	auditor  port.AuditService
	criteria domain.GenerationCriteria
}

func NewWebHandler(analyzer port.AnalyzerService, auditor port.AuditService, criteria domain.GenerationCriteria) *WebHandler {
	return &WebHandler{
		analyzer: analyzer,
		auditor:  auditor,
		criteria: criteria,
	}
}

func (h *WebHandler) Analyze(c *gin.Context) {
	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.analyzer.Assess(req.Password))
}

func (h *WebHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	criteria := h.criteria
	if req.MinScore != nil {
		criteria.MinScore = *req.MinScore
	}
	if req.MinDays != nil {
		criteria.MinDays = *req.MinDays
	}
	if req.MaxAttempts != nil {
		criteria.MaxAttempts = *req.MaxAttempts
	}

	c.JSON(http.StatusOK, h.analyzer.GenerateStrongPassword(criteria))
}

func (h *WebHandler) Improve(c *gin.Context) {
	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	improved, explanation := h.analyzer.GenerateImprovedPassword(req.Password)
	c.JSON(http.StatusOK, ImproveResponse{
		ImprovedPassword:       improved,
		ImprovementExplanation: explanation,
	})
}

// Explain fills a missing crack time or attack vector from a fresh analysis.
func (h *WebHandler) Explain(c *gin.Context) {
	var req ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.TimeToCrack == "" || req.AttackVector == "" {
		result := h.analyzer.Analyze(req.Password)
		if req.TimeToCrack == "" {
			req.TimeToCrack = result.TimeToCrack
		}
		if req.AttackVector == "" {
			req.AttackVector = string(result.AttackVector)
		}
	}

	c.JSON(http.StatusOK, ExplainResponse{
		WeaknessReasoning: h.analyzer.ExplainWeakness(req.Password, req.TimeToCrack, req.AttackVector),
	})
}

func (h *WebHandler) Audit(c *gin.Context) {
	var req AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.auditor.Audit(c.Request.Context(), req.Passwords)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrEmptyBatch) || errors.Is(err, domain.ErrBatchTooLarge) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *WebHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.Snapshot())
}

func (h *WebHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
