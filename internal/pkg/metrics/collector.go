package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"passwordStrengthBackend/internal/core/domain"
)

// Collector records analysis metrics. A nil *Collector is valid and records nothing.
type Collector struct {
	analyses            *prometheus.CounterVec
	compromised         prometheus.Counter
	scores              prometheus.Histogram
	analysisDuration    prometheus.Histogram
	generationAttempts  prometheus.Counter
	generationFallbacks prometheus.Counter
	auditedPasswords    prometheus.Counter
}

func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		analyses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "password_analyses_total",
			Help: "Password analyses by most likely attack vector.",
		}, []string{"attack_vector"}),
		compromised: factory.NewCounter(prometheus.CounterOpts{
			Name: "password_compromised_total",
			Help: "Analysed passwords found in the leaked corpus.",
		}),
		scores: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "password_score",
			Help:    "Distribution of strength scores.",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
		analysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "password_analysis_duration_seconds",
			Help:    "Time spent analysing a single password.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		generationAttempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "password_generation_attempts_total",
			Help: "Candidate passwords generated while searching for a strong one.",
		}),
		generationFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "password_generation_fallbacks_total",
			Help: "Generations that fell back to the built-in strong password.",
		}),
		auditedPasswords: factory.NewCounter(prometheus.CounterOpts{
			Name: "password_audited_total",
			Help: "Passwords analysed through batch audits.",
		}),
	}
}

func (c *Collector) ObserveAnalysis(result domain.AnalysisResult, took time.Duration) {
	if c == nil {
		return
	}
	c.analyses.WithLabelValues(string(result.AttackVector)).Inc()
	if result.IsCompromised {
		c.compromised.Inc()
	}
	c.scores.Observe(float64(result.Score))
	c.analysisDuration.Observe(took.Seconds())
}

func (c *Collector) ObserveGeneration(attempts int, fallback bool) {
	if c == nil {
		return
	}
	c.generationAttempts.Add(float64(attempts))
	if fallback {
		c.generationFallbacks.Inc()
	}
}

func (c *Collector) ObserveAudit(count int) {
	if c == nil {
		return
	}
	c.auditedPasswords.Add(float64(count))
}

// Snapshot samples host CPU and memory plus the process's Go heap.
func Snapshot() domain.ResourceMetrics {
	snap := domain.ResourceMetrics{
		Goroutines:  runtime.NumGoroutine(),
		LastUpdated: time.Now(),
	}

	if usage, err := cpu.Percent(0, false); err == nil && len(usage) > 0 {
		snap.CPUUsage = usage[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		snap.SystemMemPct = vm.UsedPercent
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	snap.MemoryUsageMB = int64(m.Alloc / 1024 / 1024)

	return snap
}
