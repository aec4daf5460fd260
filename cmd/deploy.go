package cmd

import (
	"github.com/spf13/cobra"

	"github.com/boardkit/picodeploy/pkg/deploy"
	"github.com/boardkit/picodeploy/pkg/logger"
)

func newDeployCmd() *cobra.Command {
	var (
		device     string
		resetAfter bool
	)

	deployCmd := &cobra.Command{
		Use:   "deploy [FILE]",
		Short: "Copy source files onto the configured boards",
		Long: `Copy every regular file of the source directory onto the configured
boards, in lexicographic order, stopping at the first failure. With a FILE
argument only that single file is deployed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := logger.Get()
			ctx := cmd.Context()

			// Transports first: a missing transfer tool must fail the run
			// before any file enumeration.
			transports, err := buildTransports(ctx, cfg, device)
			if err != nil {
				log.Error().Err(err).Msg("cannot reach deployment targets")
				return err
			}
			defer closeTransports(transports)

			var entries []deploy.FileEntry
			if len(args) == 1 {
				entries, err = deploy.SingleFile(cfg.SourceDir, args[0])
			} else {
				entries, err = deploy.Enumerate(cfg.SourceDir, cfg.Exclude)
			}
			if err != nil {
				log.Error().Err(err).Msg("cannot enumerate source files")
				return err
			}

			opts := deploy.Options{
				MaxConcurrentDevices: cfg.GetMaxConcurrentDevices(),
				ResetAfter:           resetAfter,
			}

			_, err = deploy.DeployAll(ctx, transports, entries, opts, *log)
			return err
		},
	}

	deployCmd.Flags().StringVar(&device, "device", "", "deploy to a single named device only")
	deployCmd.Flags().BoolVar(&resetAfter, "reset", false, "reset each board after a successful deployment")

	return deployCmd
}
