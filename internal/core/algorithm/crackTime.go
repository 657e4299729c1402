package algorithm

import (
	"fmt"
	"math"
	"unicode/utf8"

	"passwordStrengthBackend/internal/core/domain"
)

const (
	GuessesPerSecond = 1e10
	patternDiscount  = 0.7

	secondsPerMinute  = 60
	secondsPerHour    = 3600
	secondsPerDay     = 86400
	secondsPerYear    = 31536000
	secondsPerCentury = 3153600000
)

// Profile classifies each character as ASCII upper, lower, digit or special.
func Profile(password string) domain.CharacterProfile {
	var p domain.CharacterProfile
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			p.HasUpper = true
		case r >= 'a' && r <= 'z':
			p.HasLower = true
		case r >= '0' && r <= '9':
			p.HasDigit = true
		default:
			p.HasSpecial = true
		}
	}
	return p
}

// EstimateCrackTime computes the brute-force duration for the password's alphabet
// and length, discounted by 0.7 per detected pattern.
func EstimateCrackTime(password string, patternCount int) domain.CrackEstimate {
	length := utf8.RuneCountInString(password)
	alphabet := Profile(password).AlphabetSize()

	combinations := math.Pow(float64(alphabet), float64(length))
	combinations *= math.Pow(patternDiscount, float64(patternCount))

	seconds := combinations / GuessesPerSecond
	if math.IsInf(seconds, 1) || math.IsNaN(seconds) {
		seconds = math.MaxFloat64
	}

	return domain.CrackEstimate{
		Seconds:   seconds,
		Formatted: FormatCrackTime(seconds),
	}
}

func FormatCrackTime(seconds float64) string {
	switch {
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%.2f seconds", seconds)
	case seconds < secondsPerHour:
		return fmt.Sprintf("%.2f minutes", seconds/secondsPerMinute)
	case seconds < secondsPerDay:
		return fmt.Sprintf("%.2f hours", seconds/secondsPerHour)
	case seconds < secondsPerYear:
		return fmt.Sprintf("%.2f days", seconds/secondsPerDay)
	case seconds < secondsPerCentury:
		return fmt.Sprintf("%.2f years", seconds/secondsPerYear)
	default:
		return "centuries"
	}
}

// ClassifyAttackVector picks the most likely successful attack, first match wins.
func ClassifyAttackVector(patterns []domain.PatternTag, compromised bool) domain.AttackVector {
	has := make(map[domain.PatternTag]bool, len(patterns))
	for _, p := range patterns {
		has[p] = true
	}

	switch {
	case compromised:
		return domain.AttackCredentialStuffing
	case has[domain.PatternCommonWord]:
		return domain.AttackDictionary
	case has[domain.PatternSequentialNumbers], has[domain.PatternKeyboard],
		has[domain.PatternYear], has[domain.PatternDate]:
		return domain.AttackRuleBased
	case has[domain.PatternRepeatedCharacters]:
		return domain.AttackMask
	default:
		return domain.AttackBruteForce
	}
}
