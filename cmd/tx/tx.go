package tx

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/tron-walletconnect/internal/tron"
	"github/chapool/tron-walletconnect/internal/util/command"
)

const (
	fileFlag    string = "file"
	networkFlag string = "network"
	timeoutFlag string = "timeout"

	defaultTimeout = 30 * time.Second
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("tx",
		newBroadcast(),
		newExtract(),
		newReconstruct(),
	)
}

func addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(fileFlag, "f", "-", "JSON input file, - reads stdin.")
}

func addNetworkFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(networkFlag, "n", "", "Network (mainnet or nile), defaults to TRON_DEFAULT_NETWORK.")
	cmd.Flags().Duration(timeoutFlag, defaultTimeout, "Timeout of the node requests.")
}

// readInput reads the JSON document named by the file flag.
func readInput(cmd *cobra.Command) (json.RawMessage, error) {
	path, err := cmd.Flags().GetString(fileFlag)
	if err != nil {
		return nil, err
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open input file")
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}

	if strings.TrimSpace(string(raw)) == "" {
		return json.RawMessage("null"), nil
	}

	if !json.Valid(raw) {
		return nil, errors.New("input is not valid JSON")
	}

	return raw, nil
}

// networkContext parses the network flag and bounds ctx by the timeout flag.
func networkContext(cmd *cobra.Command) (tron.Network, context.Context, context.CancelFunc, error) {
	var network tron.Network

	name, err := cmd.Flags().GetString(networkFlag)
	if err != nil {
		return "", nil, nil, err
	}
	if name != "" {
		network, err = tron.ParseNetwork(name)
		if err != nil {
			return "", nil, nil, err
		}
	}

	timeout, err := cmd.Flags().GetDuration(timeoutFlag)
	if err != nil {
		return "", nil, nil, err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)

	return network, ctx, cancel, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to write output")
	}

	return nil
}
