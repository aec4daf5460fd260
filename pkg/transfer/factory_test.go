package transfer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransport struct {
	name   string
	closed bool
}

func (s *stubTransport) Name() string { return s.name }
func (s *stubTransport) Type() string { return "stub" }
func (s *stubTransport) Put(ctx context.Context, localPath, remotePath string) error {
	return nil
}
func (s *stubTransport) List(ctx context.Context) ([]FileInfo, error) { return nil, nil }
func (s *stubTransport) Remove(ctx context.Context, remotePath string) error {
	return nil
}
func (s *stubTransport) Exists(ctx context.Context, remotePath string) (bool, error) {
	return false, nil
}
func (s *stubTransport) Close() error {
	s.closed = true
	return nil
}

func TestFactory(t *testing.T) {
	var created []*stubTransport
	RegisterTransport("stub", func(ctx context.Context, cfg Config) (Transport, error) {
		s := &stubTransport{name: cfg.Name}
		created = append(created, s)
		return s, nil
	})
	RegisterTransport("broken", func(ctx context.Context, cfg Config) (Transport, error) {
		return nil, errors.New("constructor exploded")
	})

	factory := NewFactory()
	ctx := context.Background()

	t.Run("creates_registered_transport", func(t *testing.T) {
		tr, err := factory.Create(ctx, Config{Name: "pico", Type: "stub"})
		require.NoError(t, err)
		assert.Equal(t, "pico", tr.Name())
	})

	t.Run("unknown_type", func(t *testing.T) {
		_, err := factory.Create(ctx, Config{Name: "pico", Type: "carrier-pigeon"})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("create_all", func(t *testing.T) {
		transports, err := factory.CreateAll(ctx, []Config{
			{Name: "a", Type: "stub"},
			{Name: "b", Type: "stub"},
		})
		require.NoError(t, err)
		assert.Len(t, transports, 2)
	})

	t.Run("create_all_closes_on_failure", func(t *testing.T) {
		created = created[:0]
		transports, err := factory.CreateAll(ctx, []Config{
			{Name: "a", Type: "stub"},
			{Name: "b", Type: "broken"},
		})
		require.Error(t, err)
		assert.Nil(t, transports)

		require.Len(t, created, 1)
		assert.True(t, created[0].closed, "transport created before the failure must be closed")
	})
}

func TestTransferError(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &TransferError{Device: "pico", File: "n64.py", Err: cause}

	assert.Contains(t, err.Error(), "n64.py")
	assert.Contains(t, err.Error(), "pico")
	assert.ErrorIs(t, err, cause)
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsRetryable(WrapError("pico", "connect", ErrConnFailed)))
	assert.True(t, IsRetryable(ErrTimeout))
	assert.False(t, IsRetryable(ErrToolNotFound))
	assert.False(t, IsRetryable(ErrAuthFailed))
}
