package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passwordStrengthBackend/internal/core/domain"
	"passwordStrengthBackend/internal/core/lookup"
	services "passwordStrengthBackend/internal/core/service"
	"passwordStrengthBackend/internal/pkg/metrics"
	"passwordStrengthBackend/internal/utils/random"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	analyzer := services.NewAnalyzerService(lookup.NewSeedStore(),
		services.WithRandom(random.New(7)),
		services.WithMetrics(collector),
	)
	auditor := services.NewAuditService(analyzer, services.WithMaxBatch(3))
	handler := NewWebHandler(analyzer, auditor, services.DefaultGenerationCriteria())

	return NewRouter(handler, reg, nil)
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/analyze", `{"password":"password"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var report domain.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 17, report.Result.Score)
	assert.True(t, report.Result.IsCompromised)
	assert.Equal(t, domain.AttackCredentialStuffing, report.Result.AttackVector)
	assert.NotEmpty(t, report.ImprovedPassword)
	assert.NotEmpty(t, report.WeaknessReasoning)
}

func TestAnalyzeEndpointEmptyPassword(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/analyze", `{"password":""}`)
	require.Equal(t, http.StatusOK, w.Code)

	var report domain.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 0, report.Result.Score)
	assert.Equal(t, domain.AttackInstantGuess, report.Result.AttackVector)
	assert.Equal(t, "An empty password provides no security.", report.WeaknessReasoning)
}

func TestBadJSON(t *testing.T) {
	r := setupRouter(t)
	for _, path := range []string{"/api/analyze", "/api/improve", "/api/explain", "/api/audit", "/api/generate"} {
		w := doJSON(t, r, http.MethodPost, path, `{"password":`)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, w.Body.String(), "error", path)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/generate", `{"minScore":0,"minDays":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.GeneratedPassword
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Attempts)
	assert.GreaterOrEqual(t, len(got.Password), 12)

	w = doJSON(t, r, http.MethodPost, "/api/generate", `{"minScore":101,"maxAttempts":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, services.FallbackStrongPassword, got.Password)
	assert.Equal(t, 2, got.Attempts)
	assert.NotEmpty(t, got.Note)
}

func TestGenerateEndpointWithoutBody(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/generate", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestImproveEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/improve", `{"password":"sunshine"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got ImproveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.GreaterOrEqual(t, len(got.ImprovedPassword), 12)
	assert.NotEmpty(t, got.ImprovementExplanation)
}

func TestExplainEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/explain", `{"password":"abc","timeToCrack":"1.00 seconds","attackVector":"mask attack"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var got ExplainResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, strings.HasSuffix(got.WeaknessReasoning, "approximately 1.00 seconds using a mask attack."))

	w = doJSON(t, r, http.MethodPost, "/api/explain", `{"password":"password"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Contains(t, got.WeaknessReasoning, string(domain.AttackCredentialStuffing))
}

func TestAuditEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/audit", `{"passwords":["password","Tr0ub4dor&3"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Tr0ub4dor&3")

	var report domain.AuditReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 2, report.Summary.Total)
	assert.Equal(t, "p*******", report.Entries[0].Masked)

	w = doJSON(t, r, http.MethodPost, "/api/audit", `{"passwords":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/audit", `{"passwords":["a","b","c","d"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsHealthAndMetrics(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var snap domain.ResourceMetrics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Positive(t, snap.Goroutines)

	w = doJSON(t, r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)

	doJSON(t, r, http.MethodPost, "/api/analyze", `{"password":"hello"}`)
	w = doJSON(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "password_analyses_total")
}
