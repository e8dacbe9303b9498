package wallet_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsterfurz/coinestateV2/internal/contracts"
	"github.com/finsterfurz/coinestateV2/internal/wallet"
)

// Hardhat's first default account key, test-only.
const testKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var testEndpoints = map[uint64]string{
	1:   "http://localhost:8545",
	137: "http://localhost:8546",
}

func stubDialer(rawurl string) (contracts.Backend, error) {
	return nil, nil
}

func TestAvailableRequiresKey(t *testing.T) {
	locked, err := wallet.NewRPCProvider("", testEndpoints, 1, stubDialer)
	require.NoError(t, err)
	assert.False(t, locked.Available())

	_, err = locked.RequestAccounts(context.Background())
	assert.ErrorIs(t, err, wallet.ErrNoAccounts)

	unlocked, err := wallet.NewRPCProvider(testKey, testEndpoints, 1, stubDialer)
	require.NoError(t, err)
	assert.True(t, unlocked.Available())
}

func TestNewRPCProviderRejectsBadKey(t *testing.T) {
	_, err := wallet.NewRPCProvider("not-a-key", testEndpoints, 1, stubDialer)
	assert.Error(t, err)
}

func TestRequestAccountsReturnsKeyAddress(t *testing.T) {
	provider, err := wallet.NewRPCProvider("0x"+testKey, testEndpoints, 1, stubDialer)
	require.NoError(t, err)

	accounts, err := provider.RequestAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), accounts[0])
}

func TestSwitchChainUnknownChain(t *testing.T) {
	provider, err := wallet.NewRPCProvider(testKey, testEndpoints, 1, stubDialer)
	require.NoError(t, err)

	err = provider.SwitchChain(context.Background(), big.NewInt(999))
	assert.ErrorIs(t, err, wallet.ErrChainNotRegistered)
}

func TestSwitchChainEmitsEvent(t *testing.T) {
	provider, err := wallet.NewRPCProvider(testKey, testEndpoints, 1, stubDialer)
	require.NoError(t, err)
	defer provider.Close()

	ch := make(chan *big.Int, 1)
	sub := provider.SubscribeChainChanged(ch)
	defer sub.Unsubscribe()

	require.NoError(t, provider.SwitchChain(context.Background(), big.NewInt(137)))

	select {
	case chainID := <-ch:
		assert.Equal(t, int64(137), chainID.Int64())
	case <-time.After(time.Second):
		t.Fatal("no chain-changed event received")
	}

	chainID, err := provider.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(137), chainID.Int64())
}

func TestTransactOptsRejectsForeignAccount(t *testing.T) {
	provider, err := wallet.NewRPCProvider(testKey, testEndpoints, 1, stubDialer)
	require.NoError(t, err)

	_, err = provider.TransactOpts(context.Background(), common.HexToAddress("0x2222222222222222222222222222222222222222"))
	assert.ErrorIs(t, err, wallet.ErrNoAccounts)

	opts, err := provider.TransactOpts(context.Background(), common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"))
	require.NoError(t, err)
	assert.NotNil(t, opts.Signer)
}
