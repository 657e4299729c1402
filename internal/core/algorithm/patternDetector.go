package algorithm

import (
	"regexp"
	"strings"

	"passwordStrengthBackend/internal/core/domain"
)

var (
	keyboardRuns = []string{"qwerty", "asdfgh", "zxcvbn"}

	yearPattern = regexp.MustCompile(`19\d{2}|20\d{2}`)
	// Month immediately followed by day, no separator.
	datePattern = regexp.MustCompile(`(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])`)
)

// patternRule reports whether a pattern is present. lower is password lowercased.
type patternRule func(password, lower string, words []string) bool

var patternRules = map[domain.PatternTag]patternRule{
	domain.PatternSequentialNumbers:  func(pw, _ string, _ []string) bool { return hasAscendingDigits(pw) },
	domain.PatternRepeatedCharacters: func(pw, _ string, _ []string) bool { return HasRepeatedRun(pw, 3) },
	domain.PatternKeyboard:           func(_, lower string, _ []string) bool { return containsAny(lower, keyboardRuns) },
	domain.PatternCommonWord:         func(_, lower string, words []string) bool { return containsAny(lower, words) },
	domain.PatternYear:               func(pw, _ string, _ []string) bool { return ContainsYear(pw) },
	domain.PatternDate:               func(pw, _ string, _ []string) bool { return datePattern.MatchString(pw) },
}

// DetectPatterns returns the pattern tags present in password, in the order of
// domain.PatternOrder. words must already be lowercase.
func DetectPatterns(password string, words []string) []domain.PatternTag {
	var patterns []domain.PatternTag
	lower := strings.ToLower(password)

	for _, tag := range domain.PatternOrder {
		if patternRules[tag](password, lower, words) {
			patterns = append(patterns, tag)
		}
	}
	return patterns
}

// hasAscendingDigits looks for "012" through "789".
func hasAscendingDigits(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '7' && s[i+1] == c+1 && s[i+2] == c+2 {
			return true
		}
	}
	return false
}

// HasRepeatedRun reports whether any character occurs n or more times in a row.
func HasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}

func ContainsYear(s string) bool {
	return yearPattern.MatchString(s)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
