package concurrency

import (
	"context"
	"sync"
	"time"

	"passwordStrengthBackend/internal/core/domain"
)

type WorkerPool struct {
	workers    []*Worker
	tasks      chan Task
	results    chan Result
	numWorkers int
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

type Worker struct {
	id        int
	tasks     chan Task
	results   chan Result
	metrics   *WorkerMetrics
	isWorking bool
	mu        sync.RWMutex
}

type Task struct {
	Index    int
	Function func(ctx context.Context) (domain.AnalysisResult, error)
}

type Result struct {
	Index    int
	Value    domain.AnalysisResult
	Error    error
	Duration time.Duration
	WorkerID int
}

type PoolMetrics struct {
	ActiveWorkers  int
	CompletedTasks int64
	FailedTasks    int64
	TotalDuration  time.Duration
	AverageLatency time.Duration
}

type WorkerMetrics struct {
	TasksCompleted int64
	TasksFailed    int64
	TotalDuration  time.Duration
	LastActive     time.Time
	mu             sync.RWMutex
}

func NewWorkerPool(numWorkers int, queueSize int) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	pool := &WorkerPool{
		workers:    make([]*Worker, numWorkers),
		tasks:      make(chan Task, queueSize),
		results:    make(chan Result, queueSize),
		numWorkers: numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		pool.workers[i] = &Worker{
			id:      i,
			tasks:   pool.tasks,
			results: pool.results,
			metrics: &WorkerMetrics{
				LastActive: time.Now(),
			},
		}
	}

	return pool
}

// Start launches the workers. Results is closed once every worker has exited.
func (p *WorkerPool) Start(ctx context.Context) {
	for _, worker := range p.workers {
		p.wg.Add(1)
		go worker.start(ctx, &p.wg)
	}

	go func() {
		p.wg.Wait()
		close(p.results)
	}()
}

func (p *WorkerPool) Submit(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.tasks <- task:
		return nil
	}
}

// CloseInput signals that no more tasks will be submitted.
func (p *WorkerPool) CloseInput() {
	p.closeOnce.Do(func() { close(p.tasks) })
}

func (p *WorkerPool) Results() <-chan Result {
	return p.results
}

func (p *WorkerPool) Stats() PoolMetrics {
	var stats PoolMetrics

	for _, worker := range p.workers {
		worker.metrics.mu.RLock()
		stats.CompletedTasks += worker.metrics.TasksCompleted
		stats.FailedTasks += worker.metrics.TasksFailed
		stats.TotalDuration += worker.metrics.TotalDuration
		worker.metrics.mu.RUnlock()

		worker.mu.RLock()
		if worker.isWorking {
			stats.ActiveWorkers++
		}
		worker.mu.RUnlock()
	}

	if done := stats.CompletedTasks + stats.FailedTasks; done > 0 {
		stats.AverageLatency = stats.TotalDuration / time.Duration(done)
	}
	return stats
}

func (p *WorkerPool) Size() int {
	return p.numWorkers
}

func (w *Worker) start(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-w.tasks:
			if !ok {
				return
			}

			w.mu.Lock()
			w.isWorking = true
			w.mu.Unlock()

			startTime := time.Now()
			value, err := task.Function(ctx)
			duration := time.Since(startTime)

			w.updateMetrics(err == nil, duration)

			w.mu.Lock()
			w.isWorking = false
			w.mu.Unlock()

			select {
			case w.results <- Result{
				Index:    task.Index,
				Value:    value,
				Error:    err,
				Duration: duration,
				WorkerID: w.id,
			}:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (w *Worker) updateMetrics(success bool, duration time.Duration) {
	w.metrics.mu.Lock()
	defer w.metrics.mu.Unlock()

	if success {
		w.metrics.TasksCompleted++
	} else {
		w.metrics.TasksFailed++
	}
	w.metrics.TotalDuration += duration
	w.metrics.LastActive = time.Now()
}
