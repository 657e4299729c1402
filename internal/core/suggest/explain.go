package suggest

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type clauseKind int

const (
	clauseLength clauseKind = iota
	clauseUpper
	clauseDigits
	clauseSpecials
	clauseWords
	clauseSequence
	clauseRepetition
	clauseDates
)

// clause is one change made to a password; from/to are only used by clauseLength.
type clause struct {
	kind     clauseKind
	from, to int
}

func (c clause) String() string {
	switch c.kind {
	case clauseLength:
		return fmt.Sprintf("increasing the length from %d to %d characters", c.from, c.to)
	case clauseUpper:
		return "adding uppercase letters"
	case clauseDigits:
		return "adding numeric digits"
	case clauseSpecials:
		return "adding special characters"
	case clauseWords:
		return "transforming dictionary words with character substitutions"
	case clauseSequence:
		return "breaking up sequential characters that are easy to guess"
	case clauseRepetition:
		return "eliminating repeated characters that weaken your password"
	case clauseDates:
		return "modifying predictable date patterns"
	}
	return ""
}

// improvementClauses lists the changes between original and improved. Each
// clause is reported only when improved actually differs in that respect.
func improvementClauses(original, improved string, wordsChanged bool) []clause {
	var clauses []clause
	before, after := identifyTraits(original), identifyTraits(improved)

	from, to := utf8.RuneCountInString(original), utf8.RuneCountInString(improved)
	if to > from {
		clauses = append(clauses, clause{kind: clauseLength, from: from, to: to})
	}
	if !before.hasUpper && after.hasUpper {
		clauses = append(clauses, clause{kind: clauseUpper})
	}
	if !before.hasDigit && after.hasDigit {
		clauses = append(clauses, clause{kind: clauseDigits})
	}
	if !before.hasSpecial && after.hasSpecial {
		clauses = append(clauses, clause{kind: clauseSpecials})
	}
	if wordsChanged {
		clauses = append(clauses, clause{kind: clauseWords})
	}
	if before.hasSequence && !after.hasSequence {
		clauses = append(clauses, clause{kind: clauseSequence})
	}
	if before.hasRepetition && !after.hasRepetition {
		clauses = append(clauses, clause{kind: clauseRepetition})
	}
	if (before.hasYear || before.hasDate) && !after.hasYear && !after.hasDate {
		clauses = append(clauses, clause{kind: clauseDates})
	}
	return clauses
}

func renderImprovement(clauses []clause) string {
	if len(clauses) == 0 {
		return "I made your password stronger while maintaining its structure."
	}
	parts := make([]string, len(clauses))
	for i, c := range clauses {
		parts[i] = c.String()
	}
	return "I strengthened your password by " + joinList(parts) + "."
}

// joinList renders "a", "a and b" or "a, b, and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}

type reasonKind int

const (
	reasonShort reasonKind = iota
	reasonBelowRecommended
	reasonMissingClasses
	reasonSequence
	reasonRepetition
	reasonYear
	reasonDate
	reasonWord
)

type reason struct {
	kind    reasonKind
	length  int
	missing []string
	word    string
}

func (r reason) String() string {
	switch r.kind {
	case reasonShort:
		return fmt.Sprintf("Your password is only %d characters long. Shorter passwords are significantly easier to crack.", r.length)
	case reasonBelowRecommended:
		return fmt.Sprintf("While your password has %d characters, modern security standards recommend at least %d characters.", r.length, minLength)
	case reasonMissingClasses:
		if len(r.missing) == 1 {
			return fmt.Sprintf("Your password lacks %s, which reduces its complexity.", r.missing[0])
		}
		return fmt.Sprintf("Your password lacks %s, which significantly reduces its complexity.", joinList(r.missing))
	case reasonSequence:
		return "Your password contains sequential characters (like 'abc' or '123'), which are easily guessable patterns."
	case reasonRepetition:
		return "Your password contains repeated characters, which reduces its unpredictability."
	case reasonYear:
		return "Your password contains what appears to be a year, which is a common and predictable element."
	case reasonDate:
		return "Your password contains what appears to be a date, which is a common and predictable element."
	case reasonWord:
		return fmt.Sprintf("Your password contains recognizable words (like '%s'), which makes it vulnerable to dictionary attacks.", r.word)
	}
	return ""
}

func weaknessReasons(password string) []reason {
	var reasons []reason
	t := identifyTraits(password)

	length := utf8.RuneCountInString(password)
	switch {
	case length < 8:
		reasons = append(reasons, reason{kind: reasonShort, length: length})
	case length < minLength:
		reasons = append(reasons, reason{kind: reasonBelowRecommended, length: length})
	}

	var missing []string
	if !t.hasUpper {
		missing = append(missing, "uppercase letters")
	}
	if !t.hasLower {
		missing = append(missing, "lowercase letters")
	}
	if !t.hasDigit {
		missing = append(missing, "numbers")
	}
	if !t.hasSpecial {
		missing = append(missing, "special characters")
	}
	if len(missing) > 0 {
		reasons = append(reasons, reason{kind: reasonMissingClasses, missing: missing})
	}

	if t.hasSequence {
		reasons = append(reasons, reason{kind: reasonSequence})
	}
	if t.hasRepetition {
		reasons = append(reasons, reason{kind: reasonRepetition})
	}
	if t.hasYear {
		reasons = append(reasons, reason{kind: reasonYear})
	}
	if t.hasDate {
		reasons = append(reasons, reason{kind: reasonDate})
	}
	for _, w := range extractWords([]rune(password)) {
		if w.end-w.start >= wordTransformMin {
			reasons = append(reasons, reason{kind: reasonWord, word: w.text})
			break
		}
	}
	return reasons
}

// ExplainWeakness describes why password is weak and closes with the supplied
// crack time and attack vector, verbatim.
func ExplainWeakness(password, timeToCrack, attackVector string) string {
	closing := fmt.Sprintf("Based on these factors, your password could be cracked in approximately %s using a %s.", timeToCrack, attackVector)

	reasons := weaknessReasons(password)
	if len(reasons) == 0 {
		return "Your password has some structural weaknesses. " + closing
	}

	sentences := make([]string, 0, len(reasons)+1)
	for _, r := range reasons {
		sentences = append(sentences, r.String())
	}
	return strings.Join(append(sentences, closing), " ")
}
