package metrics

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Reporter buffers records per category and appends them as JSON on Flush.
type Reporter struct {
	mu      sync.Mutex
	out     io.WriteCloser
	records map[string][]reportEntry
}

type reportEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

func NewReporter(logPath string) (*Reporter, error) {
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open report log: %w", err)
	}
	return NewWriterReporter(file), nil
}

func NewWriterReporter(w io.WriteCloser) *Reporter {
	return &Reporter{
		out:     w,
		records: make(map[string][]reportEntry),
	}
}

func (r *Reporter) Record(category string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[category] = append(r.records[category], reportEntry{
		Timestamp: time.Now(),
		Data:      data,
	})
}

func (r *Reporter) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.records) == 0 {
		return nil
	}

	data, err := json.MarshalIndent(r.records, "", "  ")
	if err != nil {
		return err
	}
	if _, err := r.out.Write(append(data, '\n')); err != nil {
		return err
	}

	r.records = make(map[string][]reportEntry)
	return nil
}

func (r *Reporter) Close() error {
	if err := r.Flush(); err != nil {
		r.out.Close()
		return fmt.Errorf("failed to flush reports: %w", err)
	}
	return r.out.Close()
}
