package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardkit/picodeploy/pkg/deploy"
	"github.com/boardkit/picodeploy/pkg/logger"
)

func newCleanCmd() *cobra.Command {
	var device string

	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove deployed files from the configured boards",
		Long: `Remove from each board the files a full deployment would have copied,
derived from the current source directory listing. Files already absent
are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := logger.Get()
			ctx := cmd.Context()

			transports, err := buildTransports(ctx, cfg, device)
			if err != nil {
				log.Error().Err(err).Msg("cannot reach deployment targets")
				return err
			}
			defer closeTransports(transports)

			entries, err := deploy.Enumerate(cfg.SourceDir, cfg.Exclude)
			if err != nil {
				log.Error().Err(err).Msg("cannot enumerate source files")
				return err
			}

			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.RemoteName)
			}

			for _, t := range transports {
				result := deploy.NewRunner(t, *log).Clean(ctx, names)
				if !result.Success() {
					return fmt.Errorf("clean of device %s failed: %w", t.Name(), result.Err)
				}
			}

			return nil
		},
	}

	cleanCmd.Flags().StringVar(&device, "device", "", "clean a single named device only")

	return cleanCmd
}
