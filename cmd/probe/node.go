package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/tron-walletconnect/internal/config"
	"github/chapool/tron-walletconnect/internal/tron"
	"github/chapool/tron-walletconnect/internal/util/command"
)

const defaultTimeout = 10 * time.Second

func newNode() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Fetches the head block of the configured full node",
		Long: `Fetches the head block of the configured full node

Exits non-zero if the node cannot be reached or returns no block.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				return err
			}

			networkName, err := cmd.Flags().GetString(networkFlag)
			if err != nil {
				return err
			}

			timeout, err := cmd.Flags().GetDuration(timeoutFlag)
			if err != nil {
				return err
			}

			cfg := config.DefaultServiceConfigFromEnv()
			command.SetupLogger(cfg)

			block, err := runNode(cmd.Context(), cfg, networkName, timeout)
			if err != nil {
				return err
			}

			if verbose {
				log.Info().
					Int64("number", block.Number()).
					Str("block_id", block.BlockID).
					Msg("Node probe succeeded")
			}

			fmt.Fprintln(cmd.OutOrStdout(), block.Number())

			return nil
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")
	cmd.Flags().StringP(networkFlag, "n", "", "Network to probe (mainnet or nile), defaults to TRON_DEFAULT_NETWORK.")
	cmd.Flags().Duration(timeoutFlag, defaultTimeout, "Timeout of the node request.")

	return cmd
}

func runNode(ctx context.Context, cfg config.Server, networkName string, timeout time.Duration) (*tron.Block, error) {
	network := cfg.Tron.DefaultNetwork
	if networkName != "" {
		var err error
		network, err = tron.ParseNetwork(networkName)
		if err != nil {
			return nil, err
		}
	}

	client, err := tron.NewClient(cfg.Profiles()[network])
	if err != nil {
		return nil, errors.Wrap(err, "failed to create tron client")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	block, err := client.GetNowBlock(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch head block from %s", network)
	}

	if block.Number() <= 0 {
		return nil, errors.Errorf("node of %s returned no head block", network)
	}

	return block, nil
}
