package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/tron-walletconnect/internal/api"
	"github/chapool/tron-walletconnect/internal/test"
	"github/chapool/tron-walletconnect/internal/tron"
	"github/chapool/tron-walletconnect/internal/util/command"
)

func TestWithServer(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		ctx := context.Background()

		var testError = errors.New("test error")

		s.Config.Logger.PrettyPrintConsole = false
		resultErr := command.WithServer(ctx, s.Config, func(_ context.Context, s *api.Server) error {
			require.NotNil(t, s.WalletConnect)
			require.NotNil(t, s.Metrics)
			assert.Equal(t, tron.NetworkNile, s.WalletConnect.DefaultNetwork())

			return testError
		})

		assert.Equal(t, testError, resultErr)
	})
}

func TestNewSubcommandGroup(t *testing.T) {
	child := &cobra.Command{Use: "child", Run: func(*cobra.Command, []string) {}}

	cmd := command.NewSubcommandGroup("group", child)

	assert.Equal(t, "group", cmd.Use)
	assert.Equal(t, "group related subcommands", cmd.Short)
	require.Len(t, cmd.Commands(), 1)
	assert.Equal(t, "child", cmd.Commands()[0].Name())
}
