package tron_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/tron-walletconnect/internal/tron"
)

func TestMethodIDApprove(t *testing.T) {
	assert.Equal(t, "095ea7b3", hex.EncodeToString(tron.MethodID(tron.ApproveSignature)))
}

func TestEncodeApproveParameters(t *testing.T) {
	spender, err := tron.ParseAddress(usdtHex)
	require.NoError(t, err)

	encoded, err := tron.EncodeApproveParameters(spender, uint256.NewInt(1_000_000))
	require.NoError(t, err)

	expected := strings.Repeat("0", 24) + usdtHex[2:] +
		strings.Repeat("0", 59) + "f4240"
	assert.Equal(t, expected, encoded)
	assert.Len(t, encoded, 128)
}

func TestEncodeApproveParametersMaxAmount(t *testing.T) {
	spender, err := tron.ParseAddress(usdtBase58)
	require.NoError(t, err)

	amount, err := tron.ParseAmount("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	require.NoError(t, err)

	encoded, err := tron.EncodeApproveParameters(spender, amount)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("f", 64), encoded[64:])
}

func TestEncodeApproveParametersNilAmount(t *testing.T) {
	_, err := tron.EncodeApproveParameters(tron.Address{}, nil)
	require.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	amount, err := tron.ParseAmount(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), amount.Uint64())

	for _, in := range []string{"", "-1", "1.5", "abc", "0x10"} {
		_, err := tron.ParseAmount(in)
		assert.Error(t, err, in)
	}
}
