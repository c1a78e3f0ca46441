package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/samandr77/microservices/erp/pkg/metrics"
)

type Func func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       Func
}

// Runner runs every registered job once at start and then on its interval until ctx is done.
type Runner struct {
	jobs []job
	wg   *sync.WaitGroup
}

func NewRunner() *Runner {
	return &Runner{
		wg: &sync.WaitGroup{},
	}
}

func (r *Runner) RegisterJob(name string, interval time.Duration, fn Func) *Runner {
	return r.TryRegisterJob(true, name, interval, fn)
}

func (r *Runner) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn Func) *Runner {
	if !isEnabled || interval <= 0 {
		return r
	}

	r.jobs = append(r.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return r
}

func (r *Runner) Jobs() []string {
	names := make([]string, 0, len(r.jobs))
	for _, j := range r.jobs {
		names = append(names, j.name)
	}

	return names
}

func (r *Runner) Start(ctx context.Context) {
	for _, v := range r.jobs {
		r.wg.Add(1)

		go r.startJob(ctx, v)
	}
}

func (r *Runner) startJob(ctx context.Context, j job) {
	defer r.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		l.Debug("job started")

		err := r.withRecover(ctx, j)
		metrics.ObserveJob(j.name, err)

		if err != nil {
			l.Error("job failed", "error", err)
		} else {
			l.Debug("job done")
		}

		select {
		case <-ctx.Done():
			l.Debug("context done")
			return

		case <-ticker.C:
		}
	}
}

func (r *Runner) withRecover(ctx context.Context, j job) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("job panic", "job", j.name, "error", rec, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	return j.fn(ctx)
}

// Stop blocks until every job goroutine has returned. Cancel the Start context first.
func (r *Runner) Stop() {
	r.wg.Wait()
}
