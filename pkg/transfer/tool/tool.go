// Package tool implements the serial transfer-tool transport. Every
// operation shells out to an mpremote-compatible command line utility and
// interprets its exit status; the tool owns the serial protocol.
package tool

import (
	"context"
	"fmt"
	"os/exec"
	"path"
	"strconv"
	"strings"

	"github.com/boardkit/picodeploy/pkg/transfer"
)

const defaultToolPath = "mpremote"

type Transport struct {
	name      string
	toolPath  string
	device    string // serial port, empty lets the tool autodetect
	remoteDir string
}

func init() {
	transfer.RegisterTransport("tool", func(ctx context.Context, cfg transfer.Config) (transfer.Transport, error) {
		return New(cfg)
	})
}

// New creates a transfer-tool transport. The tool binary is resolved
// eagerly so a missing installation fails the run before any file
// enumeration happens.
func New(cfg transfer.Config) (*Transport, error) {
	toolPath := defaultToolPath
	if v, ok := cfg.Options["tool_path"].(string); ok && v != "" {
		toolPath = v
	}

	resolved, err := exec.LookPath(toolPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not installed or not executable (hint: pip install mpremote)", transfer.ErrToolNotFound, toolPath)
	}

	device := ""
	if v, ok := cfg.Options["device"].(string); ok {
		device = v
	}

	remoteDir := cfg.RemoteDir
	if remoteDir == "" {
		remoteDir = "/"
	}

	return &Transport{
		name:      cfg.Name,
		toolPath:  resolved,
		device:    device,
		remoteDir: remoteDir,
	}, nil
}

func (t *Transport) Name() string { return t.name }
func (t *Transport) Type() string { return "tool" }

// Put copies a local file onto the board via `fs cp`
func (t *Transport) Put(ctx context.Context, localPath, remotePath string) error {
	if _, err := t.run(ctx, "fs", "cp", localPath, ":"+t.remotePath(remotePath)); err != nil {
		return transfer.WrapError(t.name, "put", err)
	}
	return nil
}

// List returns the files under the destination prefix via `fs ls`
func (t *Transport) List(ctx context.Context) ([]transfer.FileInfo, error) {
	out, err := t.run(ctx, "fs", "ls", ":"+t.remoteDir)
	if err != nil {
		return nil, transfer.WrapError(t.name, "list", err)
	}
	return parseListing(out), nil
}

// Remove deletes a file from the board via `fs rm`
func (t *Transport) Remove(ctx context.Context, remotePath string) error {
	if _, err := t.run(ctx, "fs", "rm", ":"+t.remotePath(remotePath)); err != nil {
		return transfer.WrapError(t.name, "remove", err)
	}
	return nil
}

// Exists checks for a file by listing the destination prefix. The tool has
// no stat subcommand, so a listing is the cheapest probe that does not
// risk modifying the board.
func (t *Transport) Exists(ctx context.Context, remotePath string) (bool, error) {
	files, err := t.List(ctx)
	if err != nil {
		return false, err
	}
	for _, f := range files {
		if f.Path == remotePath {
			return true, nil
		}
	}
	return false, nil
}

// Reset reboots the board
func (t *Transport) Reset(ctx context.Context) error {
	if _, err := t.run(ctx, "reset"); err != nil {
		return transfer.WrapError(t.name, "reset", err)
	}
	return nil
}

// Close is a no-op; the tool opens and closes the serial port per invocation
func (t *Transport) Close() error {
	return nil
}

func (t *Transport) remotePath(remotePath string) string {
	return path.Join(t.remoteDir, remotePath)
}

// run invokes the tool and returns its combined output. A non-zero exit
// status comes back as an error carrying the tool's output so the user
// sees what the tool complained about.
func (t *Transport) run(ctx context.Context, args ...string) (string, error) {
	argv := make([]string, 0, len(args)+2)
	if t.device != "" {
		argv = append(argv, "connect", t.device)
	}
	argv = append(argv, args...)

	cmd := exec.CommandContext(ctx, t.toolPath, argv...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return "", fmt.Errorf("%s %s: %w", t.toolPath, strings.Join(argv, " "), err)
		}
		return "", fmt.Errorf("%s %s: %w: %s", t.toolPath, strings.Join(argv, " "), err, msg)
	}
	return string(out), nil
}

// parseListing extracts file entries from `fs ls` output. Each entry line
// is "<size> <name>"; directory names carry a trailing slash and are
// skipped, as are header lines such as "ls :/".
func parseListing(out string) []transfer.FileInfo {
	var files []transfer.FileInfo
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		size, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			continue // header or chatter from the tool
		}

		name := strings.Join(fields[1:], " ")
		if strings.HasSuffix(name, "/") {
			continue
		}

		files = append(files, transfer.FileInfo{
			Path: name,
			Size: size,
		})
	}
	return files
}
