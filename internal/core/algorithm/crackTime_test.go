package algorithm

import (
	"math"
	"strings"
	"testing"

	"passwordStrengthBackend/internal/core/domain"
)

func TestProfile_AlphabetSize(t *testing.T) {
	tests := []struct {
		password string
		want     int
	}{
		{"abc", 26},
		{"ABC", 26},
		{"123", 10},
		{"!!", 33},
		{"aB", 52},
		{"aB1", 62},
		{"aB1!", 95},
		{"é", 33},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			if got := Profile(tt.password).AlphabetSize(); got != tt.want {
				t.Errorf("Profile(%q).AlphabetSize() = %d, want %d", tt.password, got, tt.want)
			}
		})
	}
}

func TestFormatCrackTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0.00 seconds"},
		{59.99, "59.99 seconds"},
		{60, "1.00 minutes"},
		{3599.99, "60.00 minutes"},
		{3600, "1.00 hours"},
		{86399, "24.00 hours"},
		{86400, "1.00 days"},
		{31536000, "1.00 years"},
		{3153599999, "100.00 years"},
		{3153600000, "centuries"},
		{math.MaxFloat64, "centuries"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatCrackTime(tt.seconds); got != tt.want {
				t.Errorf("FormatCrackTime(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestEstimateCrackTime(t *testing.T) {
	tests := []struct {
		name         string
		password     string
		patternCount int
		wantSeconds  float64
		wantLabel    string
	}{
		{"Twelve digits", "979797979797", 0, 100, "1.67 minutes"},
		{"Thirteen digits", "9797979797979", 0, 1000, "16.67 minutes"},
		{"Three patterns stay under an hour", "97979797979797", 3, 3430, "57.17 minutes"},
		{"Fourteen digits", "97979797979797", 0, 10000, "2.78 hours"},
		{"Two patterns compound", "97979797979797", 2, 4900, "1.36 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCrackTime(tt.password, tt.patternCount)
			if math.Abs(got.Seconds-tt.wantSeconds) > 1e-6 {
				t.Errorf("EstimateCrackTime(%q).Seconds = %v, want %v", tt.password, got.Seconds, tt.wantSeconds)
			}
			if got.Formatted != tt.wantLabel {
				t.Errorf("EstimateCrackTime(%q).Formatted = %q, want %q", tt.password, got.Formatted, tt.wantLabel)
			}
		})
	}
}

func TestEstimateCrackTime_HourBoundary(t *testing.T) {
	// 14 digits: 10^14 combinations, so 3 patterns land below 3600s and 2 above.
	below := EstimateCrackTime("97979797979797", 3)
	above := EstimateCrackTime("97979797979797", 2)

	if below.Seconds >= 3600 || !strings.HasSuffix(below.Formatted, "minutes") {
		t.Errorf("3 patterns = %v (%q), want under 3600s in minutes", below.Seconds, below.Formatted)
	}
	if above.Seconds < 3600 || !strings.HasSuffix(above.Formatted, "hours") {
		t.Errorf("2 patterns = %v (%q), want at least 3600s in hours", above.Seconds, above.Formatted)
	}
}

func TestEstimateCrackTime_Overflow(t *testing.T) {
	got := EstimateCrackTime(strings.Repeat("aB1!", 200), 0)
	if math.IsInf(got.Seconds, 0) || got.Seconds != math.MaxFloat64 {
		t.Errorf("Seconds = %v, want MaxFloat64", got.Seconds)
	}
	if got.Formatted != "centuries" {
		t.Errorf("Formatted = %q, want centuries", got.Formatted)
	}
}

func TestClassifyAttackVector(t *testing.T) {
	tests := []struct {
		name        string
		patterns    []domain.PatternTag
		compromised bool
		want        domain.AttackVector
	}{
		{"Compromised wins", []domain.PatternTag{domain.PatternCommonWord}, true, domain.AttackCredentialStuffing},
		{"Dictionary", []domain.PatternTag{domain.PatternSequentialNumbers, domain.PatternCommonWord}, false, domain.AttackDictionary},
		{"Rule based from year", []domain.PatternTag{domain.PatternRepeatedCharacters, domain.PatternYear}, false, domain.AttackRuleBased},
		{"Rule based from date", []domain.PatternTag{domain.PatternDate}, false, domain.AttackRuleBased},
		{"Rule based from keyboard", []domain.PatternTag{domain.PatternKeyboard}, false, domain.AttackRuleBased},
		{"Mask", []domain.PatternTag{domain.PatternRepeatedCharacters}, false, domain.AttackMask},
		{"Brute force", nil, false, domain.AttackBruteForce},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyAttackVector(tt.patterns, tt.compromised); got != tt.want {
				t.Errorf("ClassifyAttackVector() = %q, want %q", got, tt.want)
			}
		})
	}
}
