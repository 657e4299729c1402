package lookup

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passwordStrengthBackend/internal/core/domain"
)

func TestHashPassword(t *testing.T) {
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		HashPassword("password"))
}

func TestSeedStore_IsLeaked(t *testing.T) {
	s := NewSeedStore()

	tests := []struct {
		password string
		want     bool
	}{
		{"password", true},
		{"letmein", true},
		{"Password", false},
		{"password ", false},
		{"Tr0ub4dor&3", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, s.IsLeaked(tt.password))
			assert.Equal(t, tt.want, s.IsLeaked(tt.password), "second call must agree")
		})
	}
}

func TestCommonWords_ReturnsCopy(t *testing.T) {
	s := NewSeedStore()
	words := s.CommonWords()
	require.Equal(t, SeedWords, words)

	words[0] = "mutated"
	assert.Equal(t, "password", s.CommonWords()[0])
}

func TestNewStore(t *testing.T) {
	valid := HashPassword("hunter2")

	tests := []struct {
		name    string
		words   []string
		digests []string
		wantErr error
	}{
		{"valid", []string{"Hunter", " "}, []string{valid}, nil},
		{"uppercase digest normalised", nil, []string{strings.ToUpper(valid)}, nil},
		{"short digest", nil, []string{"abc"}, domain.ErrInvalidDigest},
		{"non hex digest", nil, []string{strings.Repeat("z", 64)}, domain.ErrInvalidDigest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStore(tt.words, tt.digests)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, s.IsLeaked("hunter2"))
		})
	}
}

func TestNewStore_LowercasesWords(t *testing.T) {
	s, err := NewStore([]string{"Hunter", " ", "DRAGON"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"hunter", "dragon"}, s.CommonWords())
}

func TestNewCorpusStore_Empty(t *testing.T) {
	_, err := NewCorpusStore(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}
