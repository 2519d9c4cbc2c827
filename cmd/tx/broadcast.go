package tx

import (
	"context"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/tron-walletconnect/internal/api"
	"github/chapool/tron-walletconnect/internal/config"
	"github/chapool/tron-walletconnect/internal/tron"
	"github/chapool/tron-walletconnect/internal/util/command"
	"github/chapool/tron-walletconnect/internal/walletconnect"
)

func newBroadcast() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "broadcast",
		Short: "Broadcasts a signed transaction",
		Long: `Broadcasts a signed transaction

Reads the signed transaction JSON and prints the normalized broadcast result.
Exits non-zero when the broadcast did not succeed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := readInput(cmd)
			if err != nil {
				return err
			}

			network, ctx, cancel, err := networkContext(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			return runBroadcast(ctx, config.DefaultServiceConfigFromEnv(), raw, network, cmd.OutOrStdout())
		},
	}

	addInputFlag(cmd)
	addNetworkFlags(cmd)

	return cmd
}

func runBroadcast(ctx context.Context, cfg config.Server, raw json.RawMessage, network tron.Network, out io.Writer) error {
	return command.WithServer(ctx, cfg, func(ctx context.Context, s *api.Server) error {
		res := s.WalletConnect.Broadcast(ctx, walletconnect.ParsePayload(raw), network)

		if err := writeJSON(out, res); err != nil {
			return err
		}

		if !res.Result {
			return errors.Errorf("broadcast failed: %s", res.Message)
		}

		return nil
	})
}
