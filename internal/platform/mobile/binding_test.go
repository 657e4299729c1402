package mobile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passwordStrengthBackend/internal/core/domain"
	"passwordStrengthBackend/internal/core/lookup"
	services "passwordStrengthBackend/internal/core/service"
	"passwordStrengthBackend/internal/utils/random"
)

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

func newBinding() *MobileBinding {
	analyzer := services.NewAnalyzerService(lookup.NewSeedStore(), services.WithRandom(random.New(3)))
	return NewMobileBinding(analyzer, services.DefaultGenerationCriteria())
}

func decode[T any](t *testing.T, raw string) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	return env
}

func TestMobileAnalyze(t *testing.T) {
	env := decode[domain.Report](t, newBinding().Analyze(`{"password":"Tr0ub4dor&3"}`))

	require.True(t, env.Success)
	assert.Equal(t, domain.AttackBruteForce, env.Data.Result.AttackVector)
	assert.False(t, env.Data.Result.IsCompromised)
}

func TestMobileMalformedRequests(t *testing.T) {
	b := newBinding()
	for _, raw := range []string{b.Analyze("{"), b.Improve("nope"), b.Generate("[")} {
		env := decode[json.RawMessage](t, raw)
		assert.False(t, env.Success)
		assert.Equal(t, "malformed request", env.Error)
	}
}

func TestMobileImprove(t *testing.T) {
	env := decode[domain.SuggestionBundle](t, newBinding().Improve(`{"password":""}`))

	require.True(t, env.Success)
	assert.GreaterOrEqual(t, len(env.Data.ImprovedPassword), 12)
	assert.NotEmpty(t, env.Data.ImprovementExplanation)
}

func TestMobileGenerate(t *testing.T) {
	b := newBinding()

	env := decode[domain.GeneratedPassword](t, b.Generate(`{"minScore":0,"minDays":0}`))
	require.True(t, env.Success)
	assert.Equal(t, 1, env.Data.Attempts)

	env = decode[domain.GeneratedPassword](t, b.Generate(`{"minScore":101,"maxAttempts":1}`))
	require.True(t, env.Success)
	assert.Equal(t, services.FallbackStrongPassword, env.Data.Password)

	env = decode[domain.GeneratedPassword](t, b.Generate(""))
	assert.True(t, env.Success)
}
