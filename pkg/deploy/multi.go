package deploy

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/boardkit/picodeploy/pkg/transfer"
)

// Options controls a multi-device run
type Options struct {
	MaxConcurrentDevices int  // defaults to 1: strictly sequential
	ResetAfter           bool // reboot each board once its files landed
}

// DeployAll deploys the same file set to every transport. Each device is
// handled sequentially file-by-file; independent devices run concurrently
// up to the configured bound. Exactly one Result per transport comes back,
// in transport order: a device whose slot was cancelled because a sibling
// failed reports the cancellation as its error.
func DeployAll(ctx context.Context, transports []transfer.Transport, entries []FileEntry, opts Options, logger zerolog.Logger) ([]Result, error) {
	maxConcurrent := opts.MaxConcurrentDevices
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	logger.Info().
		Int("devices", len(transports)).
		Int("files", len(entries)).
		Int("max_concurrent", maxConcurrent).
		Msg("starting deployment run")

	sem := semaphore.NewWeighted(int64(maxConcurrent))
	g, gCtx := errgroup.WithContext(ctx)

	// Indexed per device so every transport owns its slot; no goroutine
	// can drop a sibling's result by erroring out early.
	results := make([]Result, len(transports))

	for i, t := range transports {
		i, t := i, t // capture loop variables

		g.Go(func() error {
			if err := sem.Acquire(gCtx, 1); err != nil {
				results[i] = Result{Device: t.Name(), Err: err}
				return fmt.Errorf("deployment to device %s did not start: %w", t.Name(), err)
			}
			defer sem.Release(1)

			result := NewRunner(t, logger).Deploy(gCtx, entries, opts.ResetAfter)
			results[i] = result

			if !result.Success() {
				return fmt.Errorf("deployment to device %s failed: %w", t.Name(), result.Err)
			}

			return nil
		})
	}

	waitErr := g.Wait()

	successCount := 0
	failureCount := 0
	var totalDuration time.Duration

	for _, result := range results {
		if result.Success() {
			successCount++
		} else {
			failureCount++
		}
		totalDuration += result.Duration
	}

	logger.Info().
		Int("successful", successCount).
		Int("failed", failureCount).
		Dur("total_duration", totalDuration).
		Msg("deployment run completed")

	return results, waitErr
}
