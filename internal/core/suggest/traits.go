package suggest

import (
	"regexp"
	"strings"

	"passwordStrengthBackend/internal/core/algorithm"
)

// Month and day separated by '/', '.' or '-'. Stricter than the analyzer's date tag.
var separatedDate = regexp.MustCompile(`(0[1-9]|1[0-2])[/.-](0[1-9]|[12]\d|3[01])`)

type traits struct {
	hasLower      bool
	hasUpper      bool
	hasDigit      bool
	hasSpecial    bool
	hasWord       bool
	hasSequence   bool
	hasRepetition bool
	hasYear       bool
	hasDate       bool
}

func identifyTraits(password string) traits {
	p := algorithm.Profile(password)
	return traits{
		hasLower:      p.HasLower,
		hasUpper:      p.HasUpper,
		hasDigit:      p.HasDigit,
		hasSpecial:    p.HasSpecial,
		hasWord:       longestLetterRun(password) >= wordTransformMin,
		hasSequence:   hasAscendingRun(strings.ToLower(password)),
		hasRepetition: algorithm.HasRepeatedRun(password, 3),
		hasYear:       algorithm.ContainsYear(password),
		hasDate:       separatedDate.MatchString(password),
	}
}

// hasAscendingRun finds three consecutive ascending letters ("abc") or digits ("123").
func hasAscendingRun(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		c := s[i]
		if !isASCIILetter(rune(c)) && !(c >= '0' && c <= '9') {
			continue
		}
		if c == 'y' || c == 'z' || c == '8' || c == '9' {
			continue
		}
		if s[i+1] == c+1 && s[i+2] == c+2 {
			return true
		}
	}
	return false
}

type wordSpan struct {
	start, end int // rune offsets, end exclusive
	text       string
}

// extractWords returns the ASCII letter runs of at least three characters.
func extractWords(runes []rune) []wordSpan {
	var words []wordSpan
	start := -1
	flush := func(end int) {
		if start >= 0 && end-start >= wordMin {
			words = append(words, wordSpan{start: start, end: end, text: string(runes[start:end])})
		}
		start = -1
	}

	for i, r := range runes {
		if isASCIILetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(runes))
	return words
}

func longestLetterRun(s string) int {
	best, run := 0, 0
	for _, r := range s {
		if isASCIILetter(r) {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

func isASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
