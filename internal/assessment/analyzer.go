package assessment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultDelay is how long the simulated analysis takes
const DefaultDelay = 3000 * time.Millisecond

var (
	ErrAnalysisInProgress = errors.New("analysis already in progress")
	ErrAnalysisCancelled  = errors.New("analysis cancelled")
	ErrStaleTask          = errors.New("analysis task is not the active one")
)

// Analyzer runs the simulated analysis. It owns at most one in-flight Task.
// Start, Complete and Cancel must be called from a single goroutine (the
// Bubble Tea update loop); only Task.Wait runs elsewhere.
type Analyzer struct {
	delay  time.Duration
	logger *zap.Logger
	active *Task
}

// AnalyzerOption allows configuring the analyzer
type AnalyzerOption func(*Analyzer)

// WithDelay overrides the simulated processing time
func WithDelay(d time.Duration) AnalyzerOption {
	return func(a *Analyzer) {
		if d >= 0 {
			a.delay = d
		}
	}
}

// WithLogger sets the logger used for task lifecycle events
func WithLogger(logger *zap.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		delay:  DefaultDelay,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Running reports whether a task has been started and not yet completed or cancelled.
func (a *Analyzer) Running() bool {
	return a.active != nil
}

// ActiveID returns the id of the in-flight task, or "" when idle.
func (a *Analyzer) ActiveID() string {
	if a.active == nil {
		return ""
	}
	return a.active.ID
}

// Start schedules a one-shot completion after the configured delay.
// A second Start while a task is in flight is rejected.
func (a *Analyzer) Start() (*Task, error) {
	if a.active != nil {
		return nil, ErrAnalysisInProgress
	}

	ctx, cancel := context.WithCancel(context.Background())
	task := &Task{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		delay:     a.delay,
		ctx:       ctx,
		cancel:    cancel,
	}
	a.active = task

	a.logger.Info("analysis started",
		zap.String("task_id", task.ID),
		zap.Duration("delay", task.delay),
	)
	return task, nil
}

// Complete finishes the task with the given id and returns the canned results.
func (a *Analyzer) Complete(id string) ([]AssessmentResult, error) {
	if a.active == nil || a.active.ID != id {
		a.logger.Debug("ignoring stale analysis completion", zap.String("task_id", id))
		return nil, ErrStaleTask
	}

	task := a.active
	task.cancel()
	a.active = nil

	a.logger.Info("analysis completed",
		zap.String("task_id", task.ID),
		zap.Duration("elapsed", time.Since(task.StartedAt)),
	)
	return FixedResults(), nil
}

// Cancel aborts the in-flight task, if any. Its Wait returns ErrAnalysisCancelled.
func (a *Analyzer) Cancel() {
	if a.active == nil {
		return
	}
	a.active.cancel()
	a.logger.Info("analysis cancelled", zap.String("task_id", a.active.ID))
	a.active = nil
}

// Task is a single scheduled analysis run
type Task struct {
	ID        string
	StartedAt time.Time

	delay  time.Duration
	ctx    context.Context
	cancel context.CancelFunc
}

// Wait blocks until the delay has elapsed or the task is cancelled.
func (t *Task) Wait() error {
	timer := time.NewTimer(t.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-t.ctx.Done():
		return ErrAnalysisCancelled
	}
}
