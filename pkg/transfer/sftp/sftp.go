// Package sftp implements the SSH/SFTP transport for network-reachable
// targets such as a single-board computer bridging the serial link.
package sftp

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"github.com/boardkit/picodeploy/pkg/transfer"
)

type Transport struct {
	name       string
	sshClient  *ssh.Client
	sftpClient *sftp.Client
	remoteDir  string
}

func init() {
	transfer.RegisterTransport("sftp", func(ctx context.Context, cfg transfer.Config) (transfer.Transport, error) {
		return New(ctx, cfg)
	})
}

// New creates an SSH/SFTP transport. Dialing retries with backoff since
// the target may still be booting; everything after the connection is
// established runs once.
func New(ctx context.Context, cfg transfer.Config) (*Transport, error) {
	sshCfg, err := parseConfig(cfg.Options)
	if err != nil {
		return nil, err
	}

	clientConfig := &ssh.ClientConfig{
		User:            sshCfg.User,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // TODO: Add host key verification
		Timeout:         30 * time.Second,
	}

	if sshCfg.Password != "" {
		clientConfig.Auth = append(clientConfig.Auth, ssh.Password(sshCfg.Password))
	}

	if sshCfg.KeyPath != "" {
		key, err := os.ReadFile(sshCfg.KeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read SSH key: %w", err)
		}

		var signer ssh.Signer
		if sshCfg.KeyPassphrase != "" {
			signer, err = ssh.ParsePrivateKeyWithPassphrase(key, []byte(sshCfg.KeyPassphrase))
		} else {
			signer, err = ssh.ParsePrivateKey(key)
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse SSH key: %w", err)
		}

		clientConfig.Auth = append(clientConfig.Auth, ssh.PublicKeys(signer))
	}

	addr := fmt.Sprintf("%s:%d", sshCfg.Host, sshCfg.Port)

	var sshClient *ssh.Client
	err = transfer.RetryConnect(ctx, transfer.DefaultRetryConfig(), func() error {
		var dialErr error
		sshClient, dialErr = ssh.Dial("tcp", addr, clientConfig)
		if dialErr != nil {
			return fmt.Errorf("%w: %s: %v", transfer.ErrConnFailed, addr, dialErr)
		}
		return nil
	})
	if err != nil {
		return nil, transfer.WrapError(cfg.Name, "connect", err)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, transfer.WrapError(cfg.Name, "sftp init", err)
	}

	remoteDir := cfg.RemoteDir
	if remoteDir == "" {
		remoteDir = "/"
	}

	if err := sftpClient.MkdirAll(remoteDir); err != nil {
		sftpClient.Close()
		sshClient.Close()
		return nil, transfer.WrapError(cfg.Name, "mkdir", err)
	}

	return &Transport{
		name:       cfg.Name,
		sshClient:  sshClient,
		sftpClient: sftpClient,
		remoteDir:  remoteDir,
	}, nil
}

func (t *Transport) Name() string { return t.name }
func (t *Transport) Type() string { return "sftp" }

// Put uploads a file via SFTP
func (t *Transport) Put(ctx context.Context, localPath, remotePath string) error {
	localFile, err := os.Open(localPath)
	if err != nil {
		return transfer.WrapError(t.name, "put", err)
	}
	defer localFile.Close()

	fullPath := path.Join(t.remoteDir, remotePath)

	if err := t.sftpClient.MkdirAll(path.Dir(fullPath)); err != nil {
		return transfer.WrapError(t.name, "mkdir", err)
	}

	remoteFile, err := t.sftpClient.Create(fullPath)
	if err != nil {
		return transfer.WrapError(t.name, "create", err)
	}
	defer remoteFile.Close()

	if _, err := io.Copy(remoteFile, localFile); err != nil {
		return transfer.WrapError(t.name, "upload", err)
	}

	return nil
}

// List returns the regular files under the destination prefix
func (t *Transport) List(ctx context.Context) ([]transfer.FileInfo, error) {
	entries, err := t.sftpClient.ReadDir(t.remoteDir)
	if err != nil {
		return nil, transfer.WrapError(t.name, "list", err)
	}

	var files []transfer.FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		files = append(files, transfer.FileInfo{
			Path:    entry.Name(),
			Size:    entry.Size(),
			ModTime: entry.ModTime(),
		})
	}

	return files, nil
}

// Remove deletes a file via SFTP
func (t *Transport) Remove(ctx context.Context, remotePath string) error {
	fullPath := path.Join(t.remoteDir, remotePath)

	if err := t.sftpClient.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return transfer.ErrNotFound
		}
		return transfer.WrapError(t.name, "remove", err)
	}

	return nil
}

// Exists checks if a file is present on the target
func (t *Transport) Exists(ctx context.Context, remotePath string) (bool, error) {
	fullPath := path.Join(t.remoteDir, remotePath)

	_, err := t.sftpClient.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, transfer.WrapError(t.name, "exists", err)
	}
	return true, nil
}

// Close releases the SFTP and SSH sessions
func (t *Transport) Close() error {
	if t.sftpClient != nil {
		t.sftpClient.Close()
	}
	if t.sshClient != nil {
		t.sshClient.Close()
	}
	return nil
}

func parseConfig(options map[string]interface{}) (*Config, error) {
	cfg := &Config{
		Port: 22,
	}

	if v, ok := options["host"].(string); ok {
		cfg.Host = v
	} else {
		return nil, fmt.Errorf("%w: missing required option: host", transfer.ErrInvalidConfig)
	}
	if v, ok := options["user"].(string); ok {
		cfg.User = v
	} else {
		return nil, fmt.Errorf("%w: missing required option: user", transfer.ErrInvalidConfig)
	}
	if v, ok := options["password"].(string); ok {
		cfg.Password = v
	}
	if v, ok := options["key_path"].(string); ok {
		cfg.KeyPath = v
	}
	if v, ok := options["key_passphrase"].(string); ok {
		cfg.KeyPassphrase = v
	}
	if v, ok := options["port"].(float64); ok {
		cfg.Port = int(v)
	}

	return cfg, nil
}
