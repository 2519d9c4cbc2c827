package env

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/tron-walletconnect/internal/config"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the env",
		Long: `Prints the currently applied env

The config is printed as JSON, secrets such as the TronGrid API key are omitted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printEnv(cmd)
		},
	}
}

func printEnv(cmd *cobra.Command) error {
	c := config.DefaultServiceConfigFromEnv()

	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(b))

	return nil
}
