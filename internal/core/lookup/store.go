// Package lookup holds the read-only leaked-password digests and common-word list
// consulted by the analyzer. A Store is never mutated after construction, so any
// number of goroutines may read it without locking.
package lookup

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"passwordStrengthBackend/internal/core/domain"
)

// SeedWords is the built-in common-word list.
var SeedWords = []string{
	"password", "123456", "qwerty", "admin", "welcome",
	"summer", "winter", "spring", "fall", "letmein",
}

type Store struct {
	leaked map[string]struct{}
	words  []string
}

// HashPassword returns the lowercase SHA-256 hex digest of the exact input bytes.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// NewSeedStore treats every seed word as both a common word and a leaked password.
func NewSeedStore() *Store {
	digests := make([]string, len(SeedWords))
	for i, w := range SeedWords {
		digests[i] = HashPassword(w)
	}
	s, _ := NewStore(SeedWords, digests)
	return s
}

// NewStore builds a store from a word list and a set of SHA-256 hex digests.
// Words are lowercased, digests are validated and normalised to lowercase.
func NewStore(words []string, digests []string) (*Store, error) {
	s := &Store{
		leaked: make(map[string]struct{}, len(digests)),
		words:  make([]string, 0, len(words)),
	}

	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s.words = append(s.words, w)
		}
	}

	for _, d := range digests {
		d = strings.ToLower(strings.TrimSpace(d))
		if !IsDigest(d) {
			return nil, fmt.Errorf("digest %q: %w", d, domain.ErrInvalidDigest)
		}
		s.leaked[d] = struct{}{}
	}

	return s, nil
}

// NewCorpusStore pairs the seed words with an externally loaded digest corpus.
func NewCorpusStore(digests []string) (*Store, error) {
	if len(digests) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	return NewStore(SeedWords, digests)
}

func IsDigest(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}

func (s *Store) IsLeaked(password string) bool {
	_, ok := s.leaked[HashPassword(password)]
	return ok
}

// CommonWords returns a copy of the word list in load order.
func (s *Store) CommonWords() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

func (s *Store) LeakedCount() int {
	return len(s.leaked)
}
