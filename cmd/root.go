package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardkit/picodeploy/pkg/config"
	"github.com/boardkit/picodeploy/pkg/logger"
	"github.com/boardkit/picodeploy/pkg/transfer"

	// Import transports to register them
	_ "github.com/boardkit/picodeploy/pkg/transfer/mount"
	_ "github.com/boardkit/picodeploy/pkg/transfer/sftp"
	_ "github.com/boardkit/picodeploy/pkg/transfer/tool"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "picodeploy",
		Short: "Deploy MicroPython sources to microcontroller boards",
		Long: `picodeploy copies the files of a local source directory onto the filesystem
of one or more connected microcontroller boards, over a serial transfer
tool (mpremote), a mounted USB drive, or SFTP.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "./picodeploy.json", "path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "override the configured log format (console, json)")

	rootCmd.AddCommand(newDeployCmd())
	rootCmd.AddCommand(newLsCmd())
	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI; a non-nil return means the process should exit 1
func Execute() error {
	return newRootCmd().Execute()
}

// loadConfig validates and parses the config file and initializes the
// global logger from it, honoring flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	level := cfg.GetLogLevel()
	if logLevel != "" {
		level = logLevel
	}
	format := cfg.GetLogFormat()
	if logFormat != "" {
		format = logFormat
	}
	logger.Init(level, format)

	return cfg, nil
}

// buildTransports constructs transports for the enabled devices, optionally
// restricted to one named device. Construction failures (missing tool
// binary, unplugged mount, unreachable host) abort before any enumeration.
func buildTransports(ctx context.Context, cfg *config.Config, only string) ([]transfer.Transport, error) {
	devices, ok := cfg.EnabledDevices(only)
	if !ok {
		return nil, fmt.Errorf("no device named %q in configuration", only)
	}
	if len(devices) == 0 {
		return nil, errors.New("no enabled devices in configuration")
	}

	configs := make([]transfer.Config, 0, len(devices))
	for _, d := range devices {
		configs = append(configs, transfer.Config{
			Name:      d.Name,
			Type:      d.Type,
			RemoteDir: cfg.GetRemoteDir(),
			Options:   d.Options,
		})
	}

	return transfer.NewFactory().CreateAll(ctx, configs)
}

func closeTransports(transports []transfer.Transport) {
	for _, t := range transports {
		t.Close()
	}
}
