package domain

import "time"

// AnalysisResult is built once per Analyze call and never modified afterwards.
type AnalysisResult struct {
	Score                int          `json:"score"`
	TimeToCrack          string       `json:"timeToCrack"`
	TimeToCrackSeconds   float64      `json:"timeToCrackSeconds"`
	VulnerabilityFactors []string     `json:"vulnerabilityFactors"`
	Suggestions          []string     `json:"suggestions"`
	PatternsDetected     []PatternTag `json:"patternsDetected"`
	Entropy              float64      `json:"entropy"`
	IsCompromised        bool         `json:"isCompromised"`
	AttackVector         AttackVector `json:"attackVector"`
}

// HasPattern reports whether tag was detected.
func (r AnalysisResult) HasPattern(tag PatternTag) bool {
	for _, p := range r.PatternsDetected {
		if p == tag {
			return true
		}
	}
	return false
}

type CharacterProfile struct {
	HasUpper   bool
	HasLower   bool
	HasDigit   bool
	HasSpecial bool
}

// AlphabetSize sums the fixed class sizes of every class present.
func (c CharacterProfile) AlphabetSize() int {
	size := 0
	if c.HasLower {
		size += AlphabetLower
	}
	if c.HasUpper {
		size += AlphabetUpper
	}
	if c.HasDigit {
		size += AlphabetDigits
	}
	if c.HasSpecial {
		size += AlphabetSpecial
	}
	return size
}

type CrackEstimate struct {
	Seconds   float64
	Formatted string
}

type SuggestionBundle struct {
	ImprovedPassword       string `json:"improvedPassword"`
	ImprovementExplanation string `json:"improvementExplanation"`
	WeaknessReasoning      string `json:"weaknessReasoning"`
}

type ReferenceEstimate struct {
	Estimator        string  `json:"estimator"`
	Score            int     `json:"score"`
	Entropy          float64 `json:"entropy"`
	CrackTimeSeconds float64 `json:"crackTimeSeconds"`
	CrackTimeDisplay string  `json:"crackTimeDisplay"`
}

// Report combines the analysis with the generated suggestion and explanations.
type Report struct {
	Result AnalysisResult `json:"result"`
	SuggestionBundle
	Reference *ReferenceEstimate `json:"reference,omitempty"`
}

type GenerationCriteria struct {
	MinScore    int     `json:"minScore"`
	MinDays     float64 `json:"minDays"`
	MaxAttempts int     `json:"maxAttempts"`
}

type GeneratedPassword struct {
	Password    string `json:"password"`
	Score       int    `json:"score"`
	TimeToCrack string `json:"timeToCrack"`
	Attempts    int    `json:"attempts"`
	Note        string `json:"note,omitempty"`
}

type AuditEntry struct {
	Index  int            `json:"index"`
	Masked string         `json:"masked"`
	Result AnalysisResult `json:"result"`
}

type AuditSummary struct {
	Total          int                  `json:"total"`
	Compromised    int                  `json:"compromised"`
	AverageScore   float64              `json:"averageScore"`
	ByAttackVector map[AttackVector]int `json:"byAttackVector"`
	WeakestIndex   int                  `json:"weakestIndex"`
	WeakestScore   int                  `json:"weakestScore"`
}

type AuditReport struct {
	ID        string        `json:"id"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Entries   []AuditEntry  `json:"entries"`
	Summary   AuditSummary  `json:"summary"`
	Workers   int           `json:"workers"`
	TimeTaken time.Duration `json:"timeTaken"`
}

type ResourceMetrics struct {
	CPUUsage      float64   `json:"cpuUsage"`
	MemoryUsageMB int64     `json:"memoryUsageMb"`
	SystemMemPct  float64   `json:"systemMemoryPercent"`
	Goroutines    int       `json:"goroutines"`
	LastUpdated   time.Time `json:"lastUpdated"`
}
