package domain

type PatternTag string
type AttackVector string
type CorpusSource string

const (
	// Pattern tags, listed in detection order
	PatternSequentialNumbers  PatternTag = "sequential_numbers"
	PatternRepeatedCharacters PatternTag = "repeated_characters"
	PatternKeyboard           PatternTag = "keyboard_pattern"
	PatternCommonWord         PatternTag = "common_word"
	PatternYear               PatternTag = "year"
	PatternDate               PatternTag = "date"

	// Attack vectors
	AttackInstantGuess       AttackVector = "instant guess"
	AttackCredentialStuffing AttackVector = "credential stuffing (using leaked passwords)"
	AttackDictionary         AttackVector = "dictionary attack"
	AttackRuleBased          AttackVector = "rule-based attack"
	AttackMask               AttackVector = "mask attack"
	AttackBruteForce         AttackVector = "brute force attack"

	// Corpus sources
	CorpusSeed     CorpusSource = "seed"
	CorpusFile     CorpusSource = "file"
	CorpusPostgres CorpusSource = "postgres"
	CorpusRedis    CorpusSource = "redis"
	CorpusS3       CorpusSource = "s3"
)

// PatternOrder is the fixed order in which patterns are detected and reported.
var PatternOrder = []PatternTag{
	PatternSequentialNumbers,
	PatternRepeatedCharacters,
	PatternKeyboard,
	PatternCommonWord,
	PatternYear,
	PatternDate,
}

// Label renders the tag for human readers ("sequential_numbers" -> "sequential numbers").
func (p PatternTag) Label() string {
	b := []byte(p)
	for i := range b {
		if b[i] == '_' {
			b[i] = ' '
		}
	}
	return string(b)
}

var (
	CharsetLower   = "abcdefghijklmnopqrstuvwxyz"
	CharsetUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits  = "0123456789"
	CharsetSpecial = "!@#$%^&*()-_=+[]{}|;:,.<>?/"
)

const (
	AlphabetLower   = 26
	AlphabetUpper   = 26
	AlphabetDigits  = 10
	AlphabetSpecial = 33
)

type AnalyzerError string

const (
	ErrEmptyCorpus         AnalyzerError = "EMPTY_CORPUS"
	ErrInvalidDigest       AnalyzerError = "INVALID_DIGEST"
	ErrUnknownCorpusSource AnalyzerError = "UNKNOWN_CORPUS_SOURCE"
	ErrInvalidConfig       AnalyzerError = "INVALID_CONFIG"
	ErrInvalidTableName    AnalyzerError = "INVALID_TABLE_NAME"
	ErrEmptyBatch          AnalyzerError = "EMPTY_BATCH"
	ErrBatchTooLarge       AnalyzerError = "BATCH_TOO_LARGE"
)

func (e AnalyzerError) Error() string {
	return string(e)
}
