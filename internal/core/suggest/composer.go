// Package suggest rewrites weak passwords into stronger, still recognisable
// variants and explains, in plain language, what was wrong and what changed.
package suggest

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"passwordStrengthBackend/internal/core/algorithm"
	"passwordStrengthBackend/internal/core/domain"
	"passwordStrengthBackend/internal/utils/random"
)

const (
	wordMin          = 3
	wordTransformMin = 4
	minLength        = 12
	specialInserts   = 3

	substituteAbove = 0.5
	capitalizeAbove = 0.7
	maxDigitSuffix  = 1000
	ruleSpecials    = "#$*"
	ruleDigits      = "2024"
	ruleMarker      = "!Secure#"
)

var substitutions = map[rune][]string{
	'a': {"@", "4"},
	'b': {"8", "6"},
	'e': {"3"},
	'i': {"1", "!", "|"},
	'l': {"1", "|", "/"},
	'o': {"0", "()"},
	's': {"5", "$"},
	't': {"7", "+"},
	'g': {"9", "&"},
	'z': {"2", "%"},
}

var paddingSymbols = []string{"!", "@", "#", "$", "%", "^", "&", "*"}

var ruleReplacer = strings.NewReplacer("a", "@", "e", "3", "i", "!", "o", "0")

type Composer struct {
	rng random.Source
}

// NewComposer uses rng for every random choice; nil falls back to a time-seeded source.
func NewComposer(rng random.Source) *Composer {
	if rng == nil {
		rng = random.NewTimeSeeded()
	}
	return &Composer{rng: rng}
}

// RuleBasedImprovement applies fixed substitutions and class fixes. Deterministic.
func RuleBasedImprovement(password string) string {
	improved := ruleReplacer.Replace(password)

	if !algorithm.Profile(improved).HasSpecial {
		improved += ruleSpecials
	}
	if !algorithm.Profile(improved).HasUpper {
		first, size := utf8.DecodeRuneInString(improved)
		improved = strings.ToUpper(string(first)) + improved[size:]
	}
	if !algorithm.Profile(improved).HasDigit {
		improved += ruleDigits
	}
	if improved == password {
		improved += ruleMarker
	}
	return improved
}

// GenerateImprovedPassword returns a randomised stronger variant of password and
// an explanation of the changes. The result always has at least 12 characters
// and contains an uppercase letter, a digit and a special character.
func (c *Composer) GenerateImprovedPassword(password string) (string, string) {
	runes := []rune(password)

	improved := make([]rune, 0, len(runes)+minLength)
	last := 0
	wordsChanged := false
	for _, w := range extractWords(runes) {
		if w.end-w.start < wordTransformMin {
			continue
		}
		improved = append(improved, runes[last:w.start]...)
		transformed := c.transformWord(w.text)
		if transformed != w.text {
			wordsChanged = true
		}
		improved = append(improved, []rune(transformed)...)
		last = w.end
	}
	improved = append(improved, runes[last:]...)

	improved = c.ensureUpper(improved)
	if !algorithm.Profile(string(improved)).HasDigit {
		improved = append(improved, []rune(strconv.Itoa(c.rng.IntN(maxDigitSuffix)))...)
	}
	if !algorithm.Profile(string(improved)).HasSpecial {
		improved = c.insertSpecials(improved)
	}
	for len(improved) < minLength {
		improved = append(improved, []rune(c.paddingChar())...)
	}

	result := string(improved)
	return result, renderImprovement(improvementClauses(password, result, wordsChanged))
}

func (c *Composer) transformWord(word string) string {
	var b strings.Builder
	for _, r := range word {
		lower := r | 0x20
		if candidates, ok := substitutions[lower]; ok && c.rng.Float64() > substituteAbove {
			b.WriteString(candidates[c.rng.IntN(len(candidates))])
			continue
		}
		if c.rng.Float64() > capitalizeAbove {
			b.WriteString(strings.ToUpper(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ensureUpper capitalises a random lowercase letter, or inserts a random
// uppercase letter when there is none to capitalise.
func (c *Composer) ensureUpper(s []rune) []rune {
	if algorithm.Profile(string(s)).HasUpper {
		return s
	}

	var lowers []int
	for i, r := range s {
		if r >= 'a' && r <= 'z' {
			lowers = append(lowers, i)
		}
	}
	if len(lowers) > 0 {
		i := lowers[c.rng.IntN(len(lowers))]
		s[i] -= 'a' - 'A'
		return s
	}

	pos := c.rng.IntN(len(s) + 1)
	upper := rune(random.Choice(c.rng, domain.CharsetUpper))
	out := make([]rune, 0, len(s)+1)
	out = append(out, s[:pos]...)
	out = append(out, upper)
	return append(out, s[pos:]...)
}

// insertSpecials places up to three random specials at distinct gaps of s.
func (c *Composer) insertSpecials(s []rune) []rune {
	gaps := make(map[int]bool, specialInserts)
	for _, p := range random.Sample(c.rng, len(s)+1, specialInserts) {
		gaps[p] = true
	}

	specials := random.GenerateRandomString(c.rng, domain.CharsetSpecial, len(gaps))
	out := make([]rune, 0, len(s)+len(specials))
	next := 0
	for i := 0; i <= len(s); i++ {
		if gaps[i] {
			out = append(out, rune(specials[next]))
			next++
		}
		if i < len(s) {
			out = append(out, s[i])
		}
	}
	return out
}

func (c *Composer) paddingChar() string {
	n := c.rng.IntN(len(paddingSymbols) + 3)
	switch {
	case n < len(paddingSymbols):
		return paddingSymbols[n]
	case n == len(paddingSymbols):
		return string(random.Choice(c.rng, domain.CharsetDigits))
	case n == len(paddingSymbols)+1:
		return string(random.Choice(c.rng, domain.CharsetUpper))
	default:
		return string(random.Choice(c.rng, domain.CharsetLower))
	}
}

// Compose bundles a generated password with both explanations.
func (c *Composer) Compose(password, timeToCrack, attackVector string) domain.SuggestionBundle {
	improved, explanation := c.GenerateImprovedPassword(password)
	return domain.SuggestionBundle{
		ImprovedPassword:       improved,
		ImprovementExplanation: explanation,
		WeaknessReasoning:      ExplainWeakness(password, timeToCrack, attackVector),
	}
}
