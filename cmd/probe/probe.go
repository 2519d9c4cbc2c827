package probe

import (
	"github.com/spf13/cobra"
	"github/chapool/tron-walletconnect/internal/util/command"
)

const (
	verboseFlag string = "verbose"
	networkFlag string = "network"
	timeoutFlag string = "timeout"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newNode(),
	)
}
