package reference

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZxcvbnEstimate(t *testing.T) {
	z := NewZxcvbn([]string{"acme"})

	weak := z.Estimate("password")
	strong := z.Estimate("x7$Kp!q2Vz#9Lm@4")

	assert.Equal(t, EstimatorName, weak.Estimator)
	assert.LessOrEqual(t, weak.Score, 1)
	assert.GreaterOrEqual(t, strong.Score, 3)
	assert.Greater(t, strong.Entropy, weak.Entropy)
	assert.Greater(t, strong.CrackTimeSeconds, weak.CrackTimeSeconds)
	assert.NotEmpty(t, strong.CrackTimeDisplay)
}

func TestZxcvbnScoresRangeForLongInput(t *testing.T) {
	got := NewZxcvbn(nil).Estimate(strings.Repeat("Zq9!", 100))
	assert.GreaterOrEqual(t, got.Score, 0)
	assert.LessOrEqual(t, got.Score, 4)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short"))
	assert.Len(t, []rune(truncate(strings.Repeat("é", 80))), maxCheckedRunes)
}
