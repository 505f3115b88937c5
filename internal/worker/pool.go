// Package worker provides a parallel image-analysis worker pool.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/MeKo-Tech/iriscolor/internal/pipeline"
)

// Analyzer is the interface for analyzing one image file.
// This matches the signature of pipeline.Analyzer.AnalyzeFile.
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*pipeline.Report, error)
}

// Task represents a single image-analysis task.
type Task struct {
	Path string
}

// Result represents the outcome of an analysis task.
type Result struct {
	Task    Task
	Report  *pipeline.Report
	Err     error
	Elapsed time.Duration
}

// ProgressFunc is called after each task completes.
type ProgressFunc func(completed, total, failed int)

// Config configures the worker pool.
type Config struct {
	Workers    int
	Analyzer   Analyzer
	OnProgress ProgressFunc
}

// Pool manages parallel image analysis.
type Pool struct {
	workers    int
	analyzer   Analyzer
	onProgress ProgressFunc
}

// New creates a new worker pool.
func New(cfg Config) *Pool {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	return &Pool{
		workers:    workers,
		analyzer:   cfg.Analyzer,
		onProgress: cfg.OnProgress,
	}
}

// Run executes all tasks and returns results.
// Tasks are processed in parallel by the configured number of workers.
// The function blocks until all tasks complete or the context is cancelled.
func (p *Pool) Run(ctx context.Context, tasks []Task) []Result {
	if len(tasks) == 0 {
		return nil
	}

	taskCh := make(chan Task, len(tasks))
	resultCh := make(chan Result, len(tasks))

	var (
		completed int
		failed    int
		mu        sync.Mutex
	)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, taskCh, resultCh)
		}()
	}

	// Feed tasks
	go func() {
		defer close(taskCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				// Context cancelled, stop feeding
				return
			}
		}
	}()

	// Collect results in a separate goroutine
	results := make([]Result, 0, len(tasks))
	done := make(chan struct{})

	go func() {
		for result := range resultCh {
			results = append(results, result)

			mu.Lock()
			completed++
			if result.Err != nil {
				failed++
			}
			c, f := completed, failed
			mu.Unlock()

			if p.onProgress != nil {
				p.onProgress(c, len(tasks), f)
			}
		}
		close(done)
	}()

	// Wait for workers to finish
	wg.Wait()
	close(resultCh)

	// Wait for result collection to finish
	<-done

	return results
}

// worker processes tasks from the task channel and sends results to the result channel.
func (p *Pool) worker(ctx context.Context, tasks <-chan Task, results chan<- Result) {
	for task := range tasks {
		select {
		case <-ctx.Done():
			// Send cancellation result
			results <- Result{
				Task: task,
				Err:  ctx.Err(),
			}
			continue
		default:
		}

		start := time.Now()
		report, err := p.analyzer.AnalyzeFile(ctx, task.Path)
		elapsed := time.Since(start)

		results <- Result{
			Task:    task,
			Report:  report,
			Err:     err,
			Elapsed: elapsed,
		}
	}
}
