package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinList(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a and b"},
		{[]string{"a", "b", "c"}, "a, b, and c"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, joinList(tt.items))
		})
	}
}

func TestImprovementClauses_Order(t *testing.T) {
	clauses := improvementClauses("abc1111/12/05", "aBd1@1!1/x2/05Q", true)

	var kinds []clauseKind
	for _, c := range clauses {
		kinds = append(kinds, c.kind)
	}
	assert.Equal(t, []clauseKind{
		clauseLength, clauseUpper, clauseWords, clauseSequence, clauseRepetition, clauseDates,
	}, kinds)
}

func TestImprovementClauses_UnchangedPassword(t *testing.T) {
	for _, pw := range []string{"Summer2024!!", "abc123XYZ!", "Pass999word!", "Pay01/15now"} {
		t.Run(pw, func(t *testing.T) {
			clauses := improvementClauses(pw, pw, false)

			assert.Empty(t, clauses)
			assert.Equal(t, "I made your password stronger while maintaining its structure.", renderImprovement(clauses))
		})
	}
}

func TestImprovementClauses_PatternStillPresent(t *testing.T) {
	// Padding alone leaves the sequence and the year in place.
	clauses := improvementClauses("abc2024", "abc2024!!!!!", false)

	var kinds []clauseKind
	for _, c := range clauses {
		kinds = append(kinds, c.kind)
	}
	assert.Equal(t, []clauseKind{clauseLength, clauseSpecials}, kinds)
}

func TestRenderImprovement_SingleClause(t *testing.T) {
	got := renderImprovement([]clause{{kind: clauseUpper}})
	assert.Equal(t, "I strengthened your password by adding uppercase letters.", got)
}

func TestExplainWeakness(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{
			name:     "Dictionary word",
			password: "password",
			want: "While your password has 8 characters, modern security standards recommend at least 12 characters. " +
				"Your password lacks uppercase letters, numbers, and special characters, which significantly reduces its complexity. " +
				"Your password contains recognizable words (like 'password'), which makes it vulnerable to dictionary attacks. " +
				"Based on these factors, your password could be cracked in approximately 1.00 hours using a dictionary attack.",
		},
		{
			name:     "Short with one missing class",
			password: "aB1",
			want: "Your password is only 3 characters long. Shorter passwords are significantly easier to crack. " +
				"Your password lacks special characters, which reduces its complexity. " +
				"Based on these factors, your password could be cracked in approximately 1.00 hours using a dictionary attack.",
		},
		{
			name:     "Patterns each get a sentence",
			password: "Xyz!aaa1999-12/05",
			want: "Your password contains sequential characters (like 'abc' or '123'), which are easily guessable patterns. " +
				"Your password contains repeated characters, which reduces its unpredictability. " +
				"Your password contains what appears to be a year, which is a common and predictable element. " +
				"Your password contains what appears to be a date, which is a common and predictable element. " +
				"Based on these factors, your password could be cracked in approximately 1.00 hours using a dictionary attack.",
		},
		{
			name:     "No structural reasons",
			password: "Tr0ub4dor&3!",
			want: "Your password has some structural weaknesses. " +
				"Based on these factors, your password could be cracked in approximately 1.00 hours using a dictionary attack.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExplainWeakness(tt.password, "1.00 hours", "dictionary attack"))
		})
	}
}
