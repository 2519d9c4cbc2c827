package tx

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github/chapool/tron-walletconnect/internal/api"
	"github/chapool/tron-walletconnect/internal/config"
	"github/chapool/tron-walletconnect/internal/tron"
	"github/chapool/tron-walletconnect/internal/util/command"
	"github/chapool/tron-walletconnect/internal/walletconnect"
)

const (
	signatureFlag string = "signature"
	contractFlag  string = "contract"
	spenderFlag   string = "spender"
	amountFlag    string = "amount"
	ownerFlag     string = "owner"
	broadcastFlag string = "broadcast"
)

func newReconstruct() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconstruct",
		Short: "Rebuilds an approve transaction around a detached signature",
		Long: `Rebuilds an approve(address,uint256) transaction around a detached signature

The unsigned transaction is built by the full node, the signature is attached
and the transaction is printed. With --broadcast it is broadcast as well.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := walletconnect.ReconstructRequest{}
			for flag, dst := range map[string]*string{
				signatureFlag: &req.Signature,
				contractFlag:  &req.ContractAddress,
				spenderFlag:   &req.SpenderAddress,
				amountFlag:    &req.Amount,
				ownerFlag:     &req.OwnerAddress,
			} {
				v, err := cmd.Flags().GetString(flag)
				if err != nil {
					return err
				}
				*dst = v
			}

			broadcast, err := cmd.Flags().GetBool(broadcastFlag)
			if err != nil {
				return err
			}

			network, ctx, cancel, err := networkContext(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			return runReconstruct(ctx, config.DefaultServiceConfigFromEnv(), req, network, broadcast, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP(signatureFlag, "s", "", "Detached signature returned by the wallet.")
	cmd.Flags().String(contractFlag, "", "TRC20 contract address.")
	cmd.Flags().String(spenderFlag, "", "Spender address.")
	cmd.Flags().String(amountFlag, "", "Approved amount in base units.")
	cmd.Flags().String(ownerFlag, "", "Owner address that signed the approval.")
	cmd.Flags().Bool(broadcastFlag, false, "Broadcast the reconstructed transaction.")
	addNetworkFlags(cmd)

	for _, flag := range []string{signatureFlag, contractFlag, spenderFlag, amountFlag, ownerFlag} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

func runReconstruct(ctx context.Context, cfg config.Server, req walletconnect.ReconstructRequest, network tron.Network, broadcast bool, out io.Writer) error {
	return command.WithServer(ctx, cfg, func(ctx context.Context, s *api.Server) error {
		tx, err := s.WalletConnect.Reconstruct(ctx, req, network)
		if err != nil {
			return err
		}

		if !broadcast {
			return writeJSON(out, tx)
		}

		p := walletconnect.SignedPayload{Transaction: tx}

		return writeJSON(out, struct {
			Transaction *tron.Transaction              `json:"transaction"`
			Broadcast   *walletconnect.BroadcastResult `json:"broadcast"`
		}{
			Transaction: tx,
			Broadcast:   s.WalletConnect.Broadcast(ctx, p, network),
		})
	})
}
