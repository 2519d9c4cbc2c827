package tx

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"github/chapool/tron-walletconnect/internal/walletconnect"
)

type extractOutput struct {
	Kind               walletconnect.Kind    `json:"kind"`
	Payload            walletconnect.Payload `json:"payload"`
	Valid              bool                  `json:"valid"`
	AlreadyBroadcasted bool                  `json:"already_broadcasted"`
}

func newExtract() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extracts the transaction payload of a wallet response",
		Long: `Extracts the transaction payload of a wallet response

Prints the payload kind, the payload itself and whether it is valid.
No network access.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := readInput(cmd)
			if err != nil {
				return err
			}

			return runExtract(raw, cmd.OutOrStdout())
		},
	}

	addInputFlag(cmd)

	return cmd
}

func runExtract(raw json.RawMessage, out io.Writer) error {
	p := walletconnect.Extract(raw)

	return writeJSON(out, extractOutput{
		Kind:               walletconnect.KindOf(p),
		Payload:            p,
		Valid:              walletconnect.IsValid(p),
		AlreadyBroadcasted: walletconnect.IsAlreadyBroadcasted(p),
	})
}
