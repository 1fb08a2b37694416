package ethutils_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/viswanathkgp12/matic-security-hackathon/internal/ethutils"
)

func TestTxRoundTrip(t *testing.T) {
	to := common.HexToAddress("0x5d8116c1d0026869a2025731eA9E383CB9b62bD4")
	data := []byte{0x6a, 0x79, 0x1f, 0x11, 0x01}

	tx := ethutils.NewTx(123, &to, big.NewInt(100), 100000, big.NewInt(1), data)
	txBytes, err := ethutils.EncodeTx(tx)
	require.NoError(t, err)

	tx2, err := ethutils.DecodeTx(txBytes)
	require.NoError(t, err)
	require.Equal(t, tx.Hash(), tx2.Hash())
	require.Equal(t, data, tx2.Data())
	require.Equal(t, to, *tx2.To())
}

func TestDecodeTxGarbage(t *testing.T) {
	_, err := ethutils.DecodeTx([]byte{0x01, 0x02})
	require.Error(t, err)
}
