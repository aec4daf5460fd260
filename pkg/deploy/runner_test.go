package deploy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/boardkit/picodeploy/pkg/deploy"
	"github.com/boardkit/picodeploy/pkg/transfer"
	"github.com/boardkit/picodeploy/pkg/transfer/mocks"
)

func entries(names ...string) []deploy.FileEntry {
	var es []deploy.FileEntry
	for _, n := range names {
		es = append(es, deploy.FileEntry{LocalPath: "src/" + n, RemoteName: n})
	}
	return es
}

func TestRunner_Deploy(t *testing.T) {
	t.Run("copies_every_file_in_order", func(t *testing.T) {
		mockTransport := mocks.NewMockTransport(t)
		mockTransport.On("Name").Return("pico")
		mockTransport.On("Type").Return("mock")

		var order []string
		for _, n := range []string{"a.py", "b.py", "c.py"} {
			n := n
			mockTransport.On("Put", mock.Anything, "src/"+n, n).
				Run(func(args mock.Arguments) {
					order = append(order, args.String(2))
				}).
				Return(nil).Once()
		}

		runner := deploy.NewRunner(mockTransport, zerolog.Nop())
		result := runner.Deploy(context.Background(), entries("a.py", "b.py", "c.py"), false)

		require.True(t, result.Success())
		assert.Equal(t, []string{"a.py", "b.py", "c.py"}, result.Files)
		assert.Equal(t, []string{"a.py", "b.py", "c.py"}, order)
		assert.Empty(t, result.Failed)
	})

	t.Run("stops_at_first_failure", func(t *testing.T) {
		mockTransport := mocks.NewMockTransport(t)
		mockTransport.On("Name").Return("pico")
		mockTransport.On("Type").Return("mock")

		mockTransport.On("Put", mock.Anything, "src/a.py", "a.py").Return(nil).Once()
		mockTransport.On("Put", mock.Anything, "src/b.py", "b.py").
			Return(errors.New("serial timeout")).Once()
		// c.py must never be attempted; an unexpected Put call fails the test

		runner := deploy.NewRunner(mockTransport, zerolog.Nop())
		result := runner.Deploy(context.Background(), entries("a.py", "b.py", "c.py"), false)

		require.False(t, result.Success())
		assert.Equal(t, []string{"a.py"}, result.Files)
		assert.Equal(t, "b.py", result.Failed)

		var terr *transfer.TransferError
		require.ErrorAs(t, result.Err, &terr)
		assert.Equal(t, "b.py", terr.File)
		assert.Equal(t, "pico", terr.Device)
	})

	t.Run("empty_file_set_succeeds", func(t *testing.T) {
		mockTransport := mocks.NewMockTransport(t)
		mockTransport.On("Name").Return("pico")
		mockTransport.On("Type").Return("mock")

		runner := deploy.NewRunner(mockTransport, zerolog.Nop())
		result := runner.Deploy(context.Background(), nil, false)

		assert.True(t, result.Success())
		assert.Empty(t, result.Files)
	})

	t.Run("resets_board_when_supported", func(t *testing.T) {
		mockTransport := mocks.NewMockResettableTransport(t)
		mockTransport.On("Name").Return("pico")
		mockTransport.On("Type").Return("mock")
		mockTransport.On("Put", mock.Anything, "src/a.py", "a.py").Return(nil).Once()
		mockTransport.On("Reset", mock.Anything).Return(nil).Once()

		runner := deploy.NewRunner(mockTransport, zerolog.Nop())
		result := runner.Deploy(context.Background(), entries("a.py"), true)

		assert.True(t, result.Success())
	})

	t.Run("reset_skipped_when_unsupported", func(t *testing.T) {
		mockTransport := mocks.NewMockTransport(t)
		mockTransport.On("Name").Return("circuitpy")
		mockTransport.On("Type").Return("mock")
		mockTransport.On("Put", mock.Anything, "src/a.py", "a.py").Return(nil).Once()

		runner := deploy.NewRunner(mockTransport, zerolog.Nop())
		result := runner.Deploy(context.Background(), entries("a.py"), true)

		assert.True(t, result.Success())
	})

	t.Run("reset_failure_fails_the_run", func(t *testing.T) {
		mockTransport := mocks.NewMockResettableTransport(t)
		mockTransport.On("Name").Return("pico")
		mockTransport.On("Type").Return("mock")
		mockTransport.On("Put", mock.Anything, "src/a.py", "a.py").Return(nil).Once()
		mockTransport.On("Reset", mock.Anything).Return(errors.New("device busy")).Once()

		runner := deploy.NewRunner(mockTransport, zerolog.Nop())
		result := runner.Deploy(context.Background(), entries("a.py"), true)

		assert.False(t, result.Success())
		assert.Equal(t, []string{"a.py"}, result.Files)
	})

	t.Run("cancelled_context_aborts", func(t *testing.T) {
		mockTransport := mocks.NewMockTransport(t)
		mockTransport.On("Name").Return("pico")
		mockTransport.On("Type").Return("mock")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		runner := deploy.NewRunner(mockTransport, zerolog.Nop())
		result := runner.Deploy(ctx, entries("a.py"), false)

		require.False(t, result.Success())
		assert.ErrorIs(t, result.Err, context.Canceled)
		assert.Empty(t, result.Files)
	})
}

func TestRunner_Clean(t *testing.T) {
	t.Run("removes_files_and_tolerates_absent_ones", func(t *testing.T) {
		mockTransport := mocks.NewMockTransport(t)
		mockTransport.On("Name").Return("pico")
		mockTransport.On("Type").Return("mock")
		mockTransport.On("Remove", mock.Anything, "a.py").Return(nil).Once()
		mockTransport.On("Remove", mock.Anything, "b.py").Return(transfer.ErrNotFound).Once()
		mockTransport.On("Remove", mock.Anything, "c.py").Return(nil).Once()

		runner := deploy.NewRunner(mockTransport, zerolog.Nop())
		result := runner.Clean(context.Background(), []string{"a.py", "b.py", "c.py"})

		require.True(t, result.Success())
		assert.Equal(t, []string{"a.py", "c.py"}, result.Files)
	})

	t.Run("stops_on_real_remove_failure", func(t *testing.T) {
		mockTransport := mocks.NewMockTransport(t)
		mockTransport.On("Name").Return("pico")
		mockTransport.On("Type").Return("mock")
		mockTransport.On("Remove", mock.Anything, "a.py").
			Return(errors.New("read-only filesystem")).Once()

		runner := deploy.NewRunner(mockTransport, zerolog.Nop())
		result := runner.Clean(context.Background(), []string{"a.py", "b.py"})

		require.False(t, result.Success())
		assert.Equal(t, "a.py", result.Failed)
	})
}
