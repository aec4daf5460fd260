package transfer

import (
	"context"
	"time"
)

// Transport moves files onto a single target board and inspects its filesystem
type Transport interface {
	// Name returns the user-facing device name from the configuration (e.g., "pico")
	Name() string

	// Type returns the transport type (tool, mount, sftp)
	Type() string

	// Put copies a local file onto the board
	// localPath: absolute or working-directory-relative path to the local file
	// remotePath: path on the board relative to the destination prefix
	Put(ctx context.Context, localPath string, remotePath string) error

	// List returns the regular files under the destination prefix on the board
	List(ctx context.Context) ([]FileInfo, error)

	// Remove deletes a file from the board
	Remove(ctx context.Context, remotePath string) error

	// Exists checks whether a file is present on the board
	Exists(ctx context.Context, remotePath string) (bool, error)

	// Close releases resources (serial connection, SSH session)
	Close() error
}

// Resetter is implemented by transports that can reboot the board after a
// deployment. Callers discover it with a type assertion.
type Resetter interface {
	Reset(ctx context.Context) error
}

// FileInfo represents metadata about a file on the board
type FileInfo struct {
	Path    string    // Path relative to the destination prefix
	Size    int64     // Size in bytes
	ModTime time.Time // Last modification time, zero when the transport cannot report it
}

// Config represents transport configuration for one device
type Config struct {
	Name      string                 // User-friendly device name (e.g., "pico")
	Type      string                 // Transport type: tool, mount, sftp
	RemoteDir string                 // Destination prefix on the board
	Options   map[string]interface{} // Transport-specific options
}
