package scheduler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"homeverse_backend/internal/history/repository"
	"homeverse_backend/platform/config"
	"homeverse_backend/platform/logger"

	"github.com/hibiken/asynq"
)

const (
	defaultConcurrency = 4
	retryBaseDelay     = 10 * time.Second
	retryMaxDelay      = 5 * time.Minute
)

// EstimateWriter archives estimates.
type EstimateWriter interface {
	Insert(ctx context.Context, e *repository.Estimate) error
}

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	repo   EstimateWriter
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, repo EstimateWriter, log *logger.Logger) (*Worker, error) {
	opt, err := connOpt(cfg)
	if err != nil {
		return nil, err
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}

	w := &Worker{
		mux:  asynq.NewServeMux(),
		repo: repo,
		log:  log,
	}
	w.server = asynq.NewServer(opt, asynq.Config{
		Concurrency:    concurrency,
		Queues:         map[string]int{queueName(cfg): 1},
		RetryDelayFunc: retryDelay,
		ErrorHandler:   asynq.ErrorHandlerFunc(w.handleFailure),
		Logger:         asynqLogger{log: log},
	})
	w.mux.HandleFunc(TaskPersistEstimate, w.handlePersistEstimate)

	return w, nil
}

// Run processes tasks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("estimate worker stopped", "error", err)
	}
}

func (w *Worker) handlePersistEstimate(ctx context.Context, task *asynq.Task) error {
	payload, err := ParsePersistEstimatePayload(task)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	if err := w.repo.Insert(ctx, &payload.Estimate); err != nil {
		w.log.StoreError("persist_estimate", err)
		return fmt.Errorf("archive estimate %s: %w", payload.Estimate.ID, err)
	}
	w.log.Debug("estimate archived", "estimateId", payload.Estimate.ID, "zone", payload.Estimate.Zone)
	return nil
}

func (w *Worker) handleFailure(ctx context.Context, task *asynq.Task, err error) {
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	if errors.Is(err, asynq.SkipRetry) || retried >= maxRetry {
		w.log.Error("estimate task dropped", "type", task.Type(), "retries", retried, "error", err)
		return
	}
	w.log.Warn("estimate task failed; will retry", "type", task.Type(), "retries", retried, "error", err)
}

// retryDelay grows linearly with the attempt number up to retryMaxDelay.
func retryDelay(n int, _ error, _ *asynq.Task) time.Duration {
	d := time.Duration(n+1) * retryBaseDelay
	if d > retryMaxDelay {
		return retryMaxDelay
	}
	return d
}

type asynqLogger struct {
	log *logger.Logger
}

func (l asynqLogger) Debug(args ...any) { l.log.Debug(fmt.Sprint(args...), "component", "asynq") }
func (l asynqLogger) Info(args ...any)  { l.log.Info(fmt.Sprint(args...), "component", "asynq") }
func (l asynqLogger) Warn(args ...any)  { l.log.Warn(fmt.Sprint(args...), "component", "asynq") }
func (l asynqLogger) Error(args ...any) { l.log.Error(fmt.Sprint(args...), "component", "asynq") }

func (l asynqLogger) Fatal(args ...any) {
	l.log.Error(fmt.Sprint(args...), "component", "asynq")
	os.Exit(1)
}
