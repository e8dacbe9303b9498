package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/event"

	"github.com/finsterfurz/coinestateV2/internal/contracts"
)

// Dialer opens a node connection for one RPC endpoint. Injectable so tests
// can substitute a stub backend.
type Dialer func(rawurl string) (contracts.Backend, error)

func defaultDialer(rawurl string) (contracts.Backend, error) {
	client, err := ethclient.Dial(rawurl)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// RPCProvider is a Provider backed by per-network RPC endpoints and a local
// signing key. Switching chains re-dials the target network's endpoint and
// emits a chain-changed event, mirroring how an injected wallet reports the
// switch asynchronously.
type RPCProvider struct {
	mu        sync.Mutex
	key       *ecdsa.PrivateKey
	address   common.Address
	endpoints map[uint64]string
	dial      Dialer

	backend contracts.Backend
	chainID *big.Int

	accountsFeed event.Feed
	chainFeed    event.Feed
	scope        event.SubscriptionScope
}

// NewRPCProvider builds a provider from a hex private key and a chainID→RPC
// endpoint table. The key may be empty; the provider is then present but has
// no authorized account, like a locked wallet.
func NewRPCProvider(privateKeyHex string, endpoints map[uint64]string, initialChain uint64, dial Dialer) (*RPCProvider, error) {
	if dial == nil {
		dial = defaultDialer
	}
	p := &RPCProvider{
		endpoints: endpoints,
		dial:      dial,
		chainID:   new(big.Int).SetUint64(initialChain),
	}
	if privateKeyHex != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid wallet private key: %w", err)
		}
		p.key = key
		p.address = crypto.PubkeyToAddress(key.PublicKey)
	}
	return p, nil
}

func (p *RPCProvider) Name() string { return "coinestate-rpc" }

func (p *RPCProvider) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.key != nil
}

func (p *RPCProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.key == nil {
		return nil, ErrNoAccounts
	}
	if err := p.connectLocked(); err != nil {
		return nil, err
	}
	return []common.Address{p.address}, nil
}

func (p *RPCProvider) ChainID(ctx context.Context) (*big.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return new(big.Int).Set(p.chainID), nil
}

func (p *RPCProvider) SwitchChain(ctx context.Context, chainID *big.Int) error {
	p.mu.Lock()
	url, ok := p.endpoints[chainID.Uint64()]
	if !ok || url == "" {
		p.mu.Unlock()
		return ErrChainNotRegistered
	}

	backend, err := p.dial(url)
	if err != nil {
		p.mu.Unlock()
		return fmt.Errorf("failed to connect to chain %s: %w", chainID, err)
	}

	p.backend = backend
	p.chainID = new(big.Int).Set(chainID)
	p.mu.Unlock()

	p.chainFeed.Send(new(big.Int).Set(chainID))
	return nil
}

func (p *RPCProvider) Backend() contracts.Backend {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.backend
}

func (p *RPCProvider) TransactOpts(ctx context.Context, account common.Address) (*bind.TransactOpts, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.key == nil || account != p.address {
		return nil, ErrNoAccounts
	}
	opts, err := bind.NewKeyedTransactorWithChainID(p.key, p.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive signer: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

func (p *RPCProvider) SubscribeAccountsChanged(ch chan<- []common.Address) event.Subscription {
	return p.scope.Track(p.accountsFeed.Subscribe(ch))
}

func (p *RPCProvider) SubscribeChainChanged(ch chan<- *big.Int) event.Subscription {
	return p.scope.Track(p.chainFeed.Subscribe(ch))
}

// Close tears down all event subscriptions.
func (p *RPCProvider) Close() {
	p.scope.Close()
}

// connectLocked lazily dials the active chain's endpoint. Caller holds p.mu.
func (p *RPCProvider) connectLocked() error {
	if p.backend != nil {
		return nil
	}
	url, ok := p.endpoints[p.chainID.Uint64()]
	if !ok || url == "" {
		return ErrChainNotRegistered
	}
	backend, err := p.dial(url)
	if err != nil {
		return fmt.Errorf("failed to connect to chain %s: %w", p.chainID, err)
	}
	p.backend = backend
	return nil
}
