package wallet

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"

	"github.com/finsterfurz/coinestateV2/internal/contracts"
)

var (
	// ErrChainNotRegistered is returned by SwitchChain when the wallet has no
	// configuration for the requested chain. Callers should offer to register
	// the network before retrying.
	ErrChainNotRegistered = errors.New("chain not registered with wallet")

	// ErrNoAccounts is returned when the wallet holds no authorized account.
	ErrNoAccounts = errors.New("no authorized accounts")
)

// Provider models the injected wallet interface the session manager binds to:
// account authorization, the active chain, transaction signing and the two
// wallet-originated event streams. Subscriptions must be released via their
// Unsubscribe on teardown.
type Provider interface {
	// Name identifies the wallet implementation.
	Name() string

	// Available reports whether the wallet can authorize accounts at all.
	Available() bool

	// RequestAccounts asks the wallet for its authorized accounts. This is
	// the single user-interaction suspension point of a connect.
	RequestAccounts(ctx context.Context) ([]common.Address, error)

	// ChainID returns the wallet's active chain.
	ChainID(ctx context.Context) (*big.Int, error)

	// SwitchChain asks the wallet to change its active chain. On success the
	// wallet later emits a chain-changed event; callers must not update their
	// own chain state optimistically.
	SwitchChain(ctx context.Context, chainID *big.Int) error

	// Backend exposes the node connection for contract calls on the active
	// chain.
	Backend() contracts.Backend

	// TransactOpts derives a signing handle for the given account on the
	// active chain.
	TransactOpts(ctx context.Context, account common.Address) (*bind.TransactOpts, error)

	SubscribeAccountsChanged(ch chan<- []common.Address) event.Subscription
	SubscribeChainChanged(ch chan<- *big.Int) event.Subscription
}
