package metrics

import (
	"runtime"
	"time"
)

type PerformanceMetrics struct {
	StartTime    time.Time     `json:"startTime"`
	EndTime      time.Time     `json:"endTime"`
	Duration     time.Duration `json:"duration"`
	AllocBytes   uint64        `json:"allocBytes"`
	AllocObjects uint64        `json:"allocObjects"`
	GCCycles     uint32        `json:"gcCycles"`
}

// CapturePerformance runs fn and records wall time, allocations and GC cycles.
func CapturePerformance(fn func() error) (PerformanceMetrics, error) {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	startAlloc := stats.TotalAlloc
	startMallocs := stats.Mallocs
	startGC := stats.NumGC

	perf := PerformanceMetrics{StartTime: time.Now()}
	err := fn()

	runtime.ReadMemStats(&stats)
	perf.EndTime = time.Now()
	perf.Duration = perf.EndTime.Sub(perf.StartTime)
	perf.AllocBytes = stats.TotalAlloc - startAlloc
	perf.AllocObjects = stats.Mallocs - startMallocs
	perf.GCCycles = stats.NumGC - startGC

	return perf, err
}
