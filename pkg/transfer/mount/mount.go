// Package mount implements the USB mass-storage transport for boards that
// expose their filesystem as a local mount (CircuitPython's CIRCUITPY
// drive, a Pico in BOOTSEL mode).
package mount

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/boardkit/picodeploy/pkg/transfer"
)

type Transport struct {
	name     string
	basePath string
}

func init() {
	transfer.RegisterTransport("mount", func(ctx context.Context, cfg transfer.Config) (transfer.Transport, error) {
		return New(cfg)
	})
}

// New creates a mount transport. The mount point must already exist; an
// unplugged board fails the run before any file enumeration happens.
func New(cfg transfer.Config) (*Transport, error) {
	pathVal, ok := cfg.Options["path"]
	if !ok {
		return nil, fmt.Errorf("%w: missing required option: path", transfer.ErrInvalidConfig)
	}

	mountPath, ok := pathVal.(string)
	if !ok || mountPath == "" {
		return nil, fmt.Errorf("%w: path must be a non-empty string", transfer.ErrInvalidConfig)
	}

	info, err := os.Stat(mountPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: mount point %s is not available (is the board plugged in?)", transfer.ErrConnFailed, mountPath)
		}
		return nil, fmt.Errorf("failed to stat mount point %s: %w", mountPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: mount point %s is not a directory", transfer.ErrInvalidConfig, mountPath)
	}

	remoteDir := cfg.RemoteDir
	if remoteDir == "" {
		remoteDir = "/"
	}

	return &Transport{
		name:     cfg.Name,
		basePath: filepath.Join(mountPath, filepath.FromSlash(remoteDir)),
	}, nil
}

func (t *Transport) Name() string { return t.name }
func (t *Transport) Type() string { return "mount" }

// Put copies a file onto the mounted board filesystem
func (t *Transport) Put(ctx context.Context, localPath, remotePath string) error {
	destPath := filepath.Join(t.basePath, filepath.FromSlash(remotePath))

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return transfer.WrapError(t.name, "put", err)
	}

	source, err := os.Open(localPath)
	if err != nil {
		return transfer.WrapError(t.name, "put", err)
	}
	defer source.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return transfer.WrapError(t.name, "put", err)
	}

	if _, err := io.Copy(dest, source); err != nil {
		dest.Close()
		os.Remove(destPath) // clean up partial file
		return transfer.WrapError(t.name, "put", err)
	}

	// FAT-backed mounts buffer aggressively; close errors are real write errors
	if err := dest.Close(); err != nil {
		os.Remove(destPath)
		return transfer.WrapError(t.name, "put", err)
	}

	return nil
}

// List returns the regular files under the destination prefix
func (t *Transport) List(ctx context.Context) ([]transfer.FileInfo, error) {
	entries, err := os.ReadDir(t.basePath)
	if err != nil {
		return nil, transfer.WrapError(t.name, "list", err)
	}

	var files []transfer.FileInfo
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue // entry vanished between readdir and stat
		}

		files = append(files, transfer.FileInfo{
			Path:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}

// Remove deletes a file from the mounted board filesystem
func (t *Transport) Remove(ctx context.Context, remotePath string) error {
	fullPath := filepath.Join(t.basePath, filepath.FromSlash(remotePath))
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return transfer.ErrNotFound
		}
		return transfer.WrapError(t.name, "remove", err)
	}
	return nil
}

// Exists checks if a file is present on the board
func (t *Transport) Exists(ctx context.Context, remotePath string) (bool, error) {
	fullPath := filepath.Join(t.basePath, filepath.FromSlash(remotePath))
	_, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, transfer.WrapError(t.name, "exists", err)
	}
	return true, nil
}

// Close is a no-op for mount transport
func (t *Transport) Close() error {
	return nil
}
