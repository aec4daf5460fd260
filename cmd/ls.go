package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardkit/picodeploy/pkg/logger"
)

func newLsCmd() *cobra.Command {
	var device string

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List the files currently on the configured boards",
		Args:  cobra.NoArgs,
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

			for _, t := range transports {
				files, err := t.List(ctx)
				if err != nil {
					log.Error().Err(err).Str("device", t.Name()).Msg("listing failed")
					return err
				}

				fmt.Printf("%s (%s):\n", t.Name(), t.Type())
				if len(files) == 0 {
					fmt.Println("  (empty)")
					continue
				}
				for _, f := range files {
					fmt.Printf("  %8d  %s\n", f.Size, f.Path)
				}
			}

			return nil
		},
	}

	lsCmd.Flags().StringVar(&device, "device", "", "list a single named device only")

	return lsCmd
}
