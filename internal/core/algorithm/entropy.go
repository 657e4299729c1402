package algorithm

import "math"

const (
	entropyScoreWeight = 5.0
	compromisedFactor  = 0.2
	patternPenaltyStep = 0.15
)

// Entropy is the Shannon entropy of the character distribution multiplied by
// the password length, i.e. total information content rather than bits per char.
func Entropy(password string) float64 {
	if password == "" {
		return 0
	}

	counts := make(map[rune]int)
	length := 0
	for _, r := range password {
		counts[r]++
		length++
	}

	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / float64(length)
		entropy -= p * math.Log2(p)
	}
	return entropy * float64(length)
}

// Score maps entropy to [0,100], then applies the compromise and pattern penalties.
func Score(entropy float64, compromised bool, patternCount int) int {
	base := math.Min(100, math.Max(0, entropy*entropyScoreWeight))
	if compromised {
		base *= compromisedFactor
	}
	penalty := math.Max(0, 1-float64(patternCount)*patternPenaltyStep)
	return int(base * penalty)
}
