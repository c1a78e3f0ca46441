package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/erp/pkg/job"
)

func TestRunner_TryRegisterJob(t *testing.T) {
	t.Parallel()

	noop := func(context.Context) error { return nil }

	r := job.NewRunner().
		RegisterJob("transfers", time.Minute, noop).
		TryRegisterJob(false, "incoming", time.Minute, noop).
		TryRegisterJob(true, "zero", 0, noop)

	require.Equal(t, []string{"transfers"}, r.Jobs())
}

func TestRunner_Start(t *testing.T) {
	t.Parallel()

	var (
		okRuns    atomic.Int32
		panicRuns atomic.Int32
	)

	ctx, cancel := context.WithCancel(context.Background())

	r := job.NewRunner().
		RegisterJob("ok", 5*time.Millisecond, func(context.Context) error {
			okRuns.Add(1)
			return errors.New("still failing")
		}).
		RegisterJob("panics", 5*time.Millisecond, func(context.Context) error {
			panicRuns.Add(1)
			panic("boom")
		})

	r.Start(ctx)

	require.Eventually(t, func() bool {
		return okRuns.Load() >= 2 && panicRuns.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	r.Stop()
}
