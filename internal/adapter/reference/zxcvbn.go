package reference

import (
	"github.com/nbutton23/zxcvbn-go"

	"passwordStrengthBackend/internal/core/domain"
)

const (
	EstimatorName = "zxcvbn"

	// zxcvbn slows down sharply on long inputs, so only a prefix is scored.
	maxCheckedRunes = 50
)

// Zxcvbn scores passwords with the zxcvbn estimator, treating userInputs as
// extra dictionary words.
type Zxcvbn struct {
	userInputs []string
}

func NewZxcvbn(userInputs []string) *Zxcvbn {
	inputs := make([]string, len(userInputs))
	copy(inputs, userInputs)
	return &Zxcvbn{userInputs: inputs}
}

func (z *Zxcvbn) Estimate(password string) domain.ReferenceEstimate {
	match := zxcvbn.PasswordStrength(truncate(password), z.userInputs)
	return domain.ReferenceEstimate{
		Estimator:        EstimatorName,
		Score:            match.Score,
		Entropy:          match.Entropy,
		CrackTimeSeconds: match.CrackTime,
		CrackTimeDisplay: match.CrackTimeDisplay,
	}
}

func truncate(password string) string {
	runes := []rune(password)
	if len(runes) <= maxCheckedRunes {
		return password
	}
	return string(runes[:maxCheckedRunes])
}
