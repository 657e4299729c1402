package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"passwordStrengthBackend/internal/core/domain"
	"passwordStrengthBackend/internal/core/lookup"
)

const maxLineBytes = 1 << 20

// readDigests parses newline-delimited entries, skipping blank lines and '#'
// comments. Plaintext entries are hashed byte for byte unless hashed is set.
func readDigests(r io.Reader, hashed bool) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var digests []string
	line := 0
	for scanner.Scan() {
		line++
		entry := strings.TrimSuffix(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if !hashed {
			digests = append(digests, lookup.HashPassword(entry))
			continue
		}

		digest := strings.ToLower(trimmed)
		if !lookup.IsDigest(digest) {
			return nil, fmt.Errorf("line %d: %w", line, domain.ErrInvalidDigest)
		}
		digests = append(digests, digest)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return digests, nil
}
