// Package deploy implements the deployment runner: enumerate the source
// files, copy them one by one over a transport, stop at the first failure.
package deploy

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/boardkit/picodeploy/pkg/transfer"
)

// Result represents the outcome of a run against a single device
type Result struct {
	Device   string
	Files    []string // remote names processed (copied or removed), in order
	Failed   string   // remote name of the file that failed, empty on success
	Err      error
	Duration time.Duration
}

// Success reports whether the whole file set reached the device
func (r Result) Success() bool {
	return r.Err == nil
}

// Runner deploys a file set to one device, sequentially and fail-fast.
// The serial link serializes everything anyway; stopping at the first
// failed file keeps the board state easy to reason about.
type Runner struct {
	transport transfer.Transport
	logger    zerolog.Logger
}

// NewRunner creates a runner bound to one device transport
func NewRunner(transport transfer.Transport, logger zerolog.Logger) *Runner {
	return &Runner{
		transport: transport,
		logger:    logger.With().Str("device", transport.Name()).Str("transport", transport.Type()).Logger(),
	}
}

// Deploy copies the entries in order. The first Put failure aborts the
// remaining files; no file-level retries.
func (r *Runner) Deploy(ctx context.Context, entries []FileEntry, resetAfter bool) Result {
	start := time.Now()

	result := Result{
		Device: r.transport.Name(),
		Files:  []string{},
	}

	if len(entries) == 0 {
		r.logger.Warn().Msg("nothing to deploy")
		result.Duration = time.Since(start)
		return result
	}

	r.logger.Info().Int("files", len(entries)).Msg("starting deployment")

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			result.Failed = entry.RemoteName
			result.Err = err
			result.Duration = time.Since(start)
			return result
		}

		r.logger.Debug().
			Str("local", entry.LocalPath).
			Str("remote", entry.RemoteName).
			Msg("copying file")

		if err := r.transport.Put(ctx, entry.LocalPath, entry.RemoteName); err != nil {
			result.Failed = entry.RemoteName
			result.Err = &transfer.TransferError{
				Device: r.transport.Name(),
				File:   entry.RemoteName,
				Err:    err,
			}
			result.Duration = time.Since(start)

			r.logger.Error().
				Err(err).
				Str("file", entry.RemoteName).
				Int("copied", len(result.Files)).
				Msg("transfer failed, aborting remaining files")
			return result
		}

		result.Files = append(result.Files, entry.RemoteName)
		r.logger.Info().Str("file", entry.RemoteName).Msg("copied")
	}

	if resetAfter {
		if err := r.reset(ctx); err != nil {
			result.Err = err
			result.Duration = time.Since(start)
			return result
		}
	}

	result.Duration = time.Since(start)
	r.logger.Info().
		Int("files", len(result.Files)).
		Dur("duration", result.Duration).
		Msg("deployment completed")

	return result
}

// Clean removes the given remote names from the device. Files already
// absent are not an error; the point is the end state.
func (r *Runner) Clean(ctx context.Context, names []string) Result {
	start := time.Now()

	result := Result{
		Device: r.transport.Name(),
	}

	for _, name := range names {
		err := r.transport.Remove(ctx, name)
		if err != nil {
			if isNotFound(err) {
				r.logger.Debug().Str("file", name).Msg("already absent")
				continue
			}
			result.Failed = name
			result.Err = err
			result.Duration = time.Since(start)
			r.logger.Error().Err(err).Str("file", name).Msg("remove failed")
			return result
		}
		result.Files = append(result.Files, name)
		r.logger.Info().Str("file", name).Msg("removed")
	}

	result.Duration = time.Since(start)
	return result
}

func (r *Runner) reset(ctx context.Context) error {
	resetter, ok := r.transport.(transfer.Resetter)
	if !ok {
		r.logger.Warn().Msg("transport does not support reset, skipping")
		return nil
	}

	r.logger.Info().Msg("resetting board")
	return resetter.Reset(ctx)
}

func isNotFound(err error) bool {
	return errors.Is(err, transfer.ErrNotFound)
}
