package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/finsterfurz/coinestateV2/internal/config"
	"github.com/finsterfurz/coinestateV2/internal/contracts"
	"github.com/finsterfurz/coinestateV2/internal/models"
	"github.com/finsterfurz/coinestateV2/internal/wallet"
)

// SessionService owns the wallet session: connection state, the active
// network, the derived contract binding and the cached ownership balances.
// It is the single writer of that state; everything else reads snapshots.
type SessionService interface {
	Start()
	Close()

	Connect(ctx context.Context) error
	Disconnect()
	SwitchNetwork(ctx context.Context, chainID uint64) error
	Refresh(ctx context.Context) error

	Purchase(ctx context.Context, req PurchaseRequest) (*types.Receipt, error)
	Vote(ctx context.Context, req VoteRequest) (*types.Receipt, error)
	ClaimProfits(ctx context.Context) (*types.Receipt, error)

	Quote(ctx context.Context, quantity int) (*Quote, error)
	Info(ctx context.Context) (*OwnershipInfo, error)
	PendingProfits(ctx context.Context) (*big.Int, error)
	State() SessionState
}

type bindOutcome int

const (
	bindNone bindOutcome = iota
	bindBound
	bindUnsupported
	bindNotDeployed
)

type sessionService struct {
	provider    wallet.Provider
	networks    NetworkService
	notifier    NotificationService
	txs         TransactionService
	hookSvc     HookService
	validator   *validator.Validate
	newContract ContractFactory
	cfg         *config.Config
	log         *zap.Logger

	mu         sync.Mutex
	connected  bool
	connecting bool
	account    common.Address
	hasAccount bool
	chainID    uint64
	hasChain   bool
	signer     *bind.TransactOpts
	contract   contracts.OwnershipNFT
	nftCount   int64
	ownership  float64
	// epoch tags the network/signer generation. In-flight operations capture
	// it and discard their results once it no longer matches, so reads racing
	// a network switch can never write stale state.
	epoch uint64

	accountsCh chan []common.Address
	chainCh    chan *big.Int
	subs       []event.Subscription
	quit       chan struct{}
	wg         sync.WaitGroup
}

func NewSessionService(
	provider wallet.Provider,
	networks NetworkService,
	notifier NotificationService,
	txs TransactionService,
	hookSvc HookService,
	cfg *config.Config,
	log *zap.Logger,
	factory ContractFactory,
) SessionService {
	if factory == nil {
		factory = func(address common.Address, backend contracts.Backend) (contracts.OwnershipNFT, error) {
			return contracts.NewOwnershipNFT(address, backend)
		}
	}
	return &sessionService{
		provider:    provider,
		networks:    networks,
		notifier:    notifier,
		txs:         txs,
		hookSvc:     hookSvc,
		validator:   validator.New(),
		newContract: factory,
		cfg:         cfg,
		log:         log,
	}
}

// Start registers the provider event subscriptions and runs the handler
// loop. Must be paired with Close.
func (s *sessionService) Start() {
	s.accountsCh = make(chan []common.Address, 8)
	s.chainCh = make(chan *big.Int, 8)
	if s.provider != nil {
		s.subs = append(s.subs,
			s.provider.SubscribeAccountsChanged(s.accountsCh),
			s.provider.SubscribeChainChanged(s.chainCh),
		)
	}
	s.quit = make(chan struct{})
	s.wg.Add(1)
	go s.eventLoop()
}

func (s *sessionService) Close() {
	for _, sub := range s.subs {
		sub.Unsubscribe()
	}
	close(s.quit)
	s.wg.Wait()
}

// eventLoop serializes wallet-originated notifications with respect to each
// other.
func (s *sessionService) eventLoop() {
	defer s.wg.Done()
	for {
		select {
		case accounts := <-s.accountsCh:
			s.handleAccountsChanged(accounts)
		case chainID := <-s.chainCh:
			s.handleChainChanged(chainID)
		case <-s.quit:
			return
		}
	}
}

func (s *sessionService) Connect(ctx context.Context) error {
	if s.provider == nil || !s.provider.Available() {
		s.notifier.Error("", "Bitte installieren Sie eine Wallet")
		return ErrWalletNotFound
	}

	s.mu.Lock()
	s.connecting = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.connecting = false
		s.mu.Unlock()
	}()

	accounts, err := s.provider.RequestAccounts(ctx)
	if err != nil {
		s.notifier.Error("", "Fehler beim Verbinden der Wallet")
		return fmt.Errorf("wallet authorization failed: %w", err)
	}
	if len(accounts) == 0 {
		s.notifier.Error("", "Fehler beim Verbinden der Wallet")
		return fmt.Errorf("wallet authorization failed: %w", wallet.ErrNoAccounts)
	}

	chainID, err := s.provider.ChainID(ctx)
	if err != nil {
		s.notifier.Error("", "Fehler beim Verbinden der Wallet")
		return fmt.Errorf("failed to read active network: %w", err)
	}

	signer, err := s.provider.TransactOpts(ctx, accounts[0])
	if err != nil {
		s.notifier.Error("", "Fehler beim Verbinden der Wallet")
		return fmt.Errorf("failed to derive signer: %w", err)
	}

	s.mu.Lock()
	s.connected = true
	s.account = accounts[0]
	s.hasAccount = true
	s.chainID = chainID.Uint64()
	s.hasChain = true
	s.signer = signer
	outcome := s.bindContractLocked()
	contract, account, epoch := s.contract, s.account, s.epoch
	id := s.chainID
	s.mu.Unlock()

	switch outcome {
	case bindUnsupported:
		s.notifier.Error("", "Nicht unterstütztes Netzwerk. Bitte wechseln Sie zu: "+s.supportedNames())
	case bindNotDeployed:
		s.notifier.Error("", "GmbH Ownership NFT nicht auf diesem Netzwerk verfügbar")
	case bindBound:
		if err := s.networks.SetActive(id); err != nil {
			s.log.Warn("failed to mark active network", zap.Uint64("chain_id", id), zap.Error(err))
		}
		s.notifier.Success("", "Wallet verbunden mit "+s.networkName(id))
		// Balances are loaded best-effort; stale-but-available beats failing
		// the connect.
		_ = s.refreshWith(ctx, contract, account, epoch)
	}
	return nil
}

func (s *sessionService) Disconnect() {
	s.mu.Lock()
	s.resetLocked()
	s.mu.Unlock()
	s.notifier.Success("", "Wallet getrennt")
}

// resetLocked clears every session field back to its empty default. The
// provider is never called: injected wallets have no programmatic disconnect.
func (s *sessionService) resetLocked() {
	s.connected = false
	s.connecting = false
	s.account = common.Address{}
	s.hasAccount = false
	s.chainID = 0
	s.hasChain = false
	s.signer = nil
	s.contract = nil
	s.nftCount = 0
	s.ownership = 0
	s.epoch++
}

func (s *sessionService) SwitchNetwork(ctx context.Context, chainID uint64) error {
	if !s.networks.Supported(chainID) {
		s.notifier.Error("", "Nicht unterstütztes Netzwerk")
		return ErrUnsupportedNetwork
	}

	err := s.provider.SwitchChain(ctx, new(big.Int).SetUint64(chainID))
	if errors.Is(err, wallet.ErrChainNotRegistered) {
		s.notifier.Error("", "Bitte fügen Sie dieses Netzwerk zu Ihrer Wallet hinzu")
		return ErrNetworkNotRegistered
	}
	if err != nil {
		s.notifier.Error("", "Fehler beim Wechseln des Netzwerks")
		return fmt.Errorf("%w: %v", ErrNetworkSwitchRejected, err)
	}

	// The session's own network field is updated by the wallet's
	// chain-changed event, never optimistically here.
	return nil
}

func (s *sessionService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	contract, account, epoch := s.contract, s.account, s.epoch
	bound := contract != nil && s.hasAccount
	s.mu.Unlock()

	if !bound {
		return ErrNotConnected
	}
	return s.refreshWith(ctx, contract, account, epoch)
}

// refreshWith reads balanceOf as the canonical NFT count and derives the
// ownership percentage, falling back to the local approximation when the
// contract does not implement getOwnershipPercentage. Failures keep the
// previous cached values.
func (s *sessionService) refreshWith(ctx context.Context, contract contracts.OwnershipNFT, account common.Address, epoch uint64) error {
	balance, err := contract.BalanceOf(ctx, account)
	if err != nil {
		s.notifier.Error("", "Fehler beim Laden der NFT-Daten")
		return fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}
	count := balance.Int64()

	var pct float64
	if count > 0 {
		basisPoints, err := contract.OwnershipPercentage(ctx, account)
		if err == nil {
			pct = float64(basisPoints.Int64()) / 100
		} else {
			pct = float64(count) / float64(s.cfg.TotalSupply) * 100
		}
	}

	s.mu.Lock()
	if s.epoch == epoch {
		s.nftCount = count
		s.ownership = pct
	}
	s.mu.Unlock()
	return nil
}

func (s *sessionService) Purchase(ctx context.Context, req PurchaseRequest) (*types.Receipt, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if req.Quantity > s.cfg.MaxPurchaseQty {
		return nil, fmt.Errorf("quantity exceeds maximum of %d", s.cfg.MaxPurchaseQty)
	}

	s.mu.Lock()
	contract, signer, account, chainID, epoch := s.contract, s.signer, s.account, s.chainID, s.epoch
	connected := s.connected && s.hasAccount
	s.mu.Unlock()

	if err := requireBinding(connected, contract, signer, s.notifier); err != nil {
		return nil, err
	}

	price, err := contract.SharePrice(ctx)
	if err != nil {
		s.notifier.Error("purchase", "Fehler beim Kauf der GmbH-Anteile")
		return nil, fmt.Errorf("%w: %v", ErrPurchaseFailed, err)
	}
	total := new(big.Int).Mul(price, big.NewInt(int64(req.Quantity)))

	record, err := s.txs.RecordPending(&models.OwnershipTransaction{
		Type:      models.TransactionTypePurchase,
		Account:   account.Hex(),
		ChainID:   chainID,
		Quantity:  req.Quantity,
		TotalCost: total.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	opts := *signer
	opts.Context = ctx
	opts.Value = total
	opts.GasLimit = s.cfg.PurchaseGasLimit

	s.notifier.Loading("purchase", "Transaktion wird verarbeitet...")

	tx, err := contract.PurchaseOwnership(&opts)
	if err != nil {
		_ = s.txs.MarkFailed(record.ID, "")
		s.notifier.Error("purchase", "Fehler beim Kauf der GmbH-Anteile")
		return nil, fmt.Errorf("%w: %v", ErrPurchaseFailed, err)
	}
	txHash := tx.Hash().Hex()
	s.notifier.Loading("purchase", "Transaktion "+txHash+" eingereicht, warte auf Bestätigung...")

	receipt, err := contract.WaitMined(ctx, tx)
	if err != nil {
		_ = s.txs.MarkFailed(record.ID, txHash)
		s.notifier.Error("purchase", "Fehler beim Kauf der GmbH-Anteile")
		return nil, fmt.Errorf("%w: %v", ErrPurchaseFailed, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		_ = s.txs.MarkFailed(record.ID, txHash)
		s.notifier.Error("purchase", "Fehler beim Kauf der GmbH-Anteile")
		return nil, fmt.Errorf("%w: transaction reverted", ErrPurchaseFailed)
	}

	if err := s.txs.MarkConfirmed(record.ID, txHash, receipt.GasUsed); err != nil {
		s.log.Warn("failed to update purchase record", zap.String("id", record.ID), zap.Error(err))
	}
	record.TxHash = txHash
	record.Status = models.TransactionStatusConfirmed
	if err := s.hookSvc.OnTransactionConfirmed(models.TransactionTypePurchase, txHash, *record); err != nil {
		s.log.Warn("purchase hook failed", zap.Error(err))
	}

	plural := ""
	if req.Quantity > 1 {
		plural = "s"
	}
	s.notifier.Success("purchase", fmt.Sprintf("%d GmbH Ownership NFT%s erfolgreich erworben!", req.Quantity, plural))

	_ = s.refreshWith(ctx, contract, account, epoch)
	return receipt, nil
}

func (s *sessionService) Vote(ctx context.Context, req VoteRequest) (*types.Receipt, error) {
	s.mu.Lock()
	contract, signer, account, chainID := s.contract, s.signer, s.account, s.chainID
	connected := s.connected && s.hasAccount
	s.mu.Unlock()

	if err := requireBinding(connected, contract, signer, s.notifier); err != nil {
		return nil, err
	}

	power, err := contract.VotingPower(ctx, account)
	if err != nil {
		s.notifier.Error("vote", "Fehler beim Abstimmen")
		return nil, fmt.Errorf("%w: %v", ErrVoteFailed, err)
	}
	if power.Sign() == 0 {
		s.notifier.Error("", "Sie haben keine Stimmrechte. Bitte erwerben Sie GmbH Ownership NFTs.")
		return nil, ErrNoVotingPower
	}

	// Always re-queried on-chain so the check holds even when the vote was
	// cast through another client.
	voted, err := contract.HasVoted(ctx, req.ProposalID, account)
	if err != nil {
		s.notifier.Error("vote", "Fehler beim Abstimmen")
		return nil, fmt.Errorf("%w: %v", ErrVoteFailed, err)
	}
	if voted {
		s.notifier.Error("", "Sie haben bereits für diesen Vorschlag abgestimmt.")
		return nil, ErrAlreadyVoted
	}

	proposalID := req.ProposalID
	support := req.Support
	record, err := s.txs.RecordPending(&models.OwnershipTransaction{
		Type:       models.TransactionTypeVote,
		Account:    account.Hex(),
		ChainID:    chainID,
		ProposalID: &proposalID,
		Support:    &support,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}

	opts := *signer
	opts.Context = ctx
	opts.GasLimit = s.cfg.VoteGasLimit

	s.notifier.Loading("vote", "Stimme wird abgegeben...")

	tx, err := contract.Vote(&opts, req.ProposalID, req.Support)
	if err != nil {
		_ = s.txs.MarkFailed(record.ID, "")
		s.notifier.Error("vote", "Fehler beim Abstimmen")
		return nil, fmt.Errorf("%w: %v", ErrVoteFailed, err)
	}
	txHash := tx.Hash().Hex()

	receipt, err := contract.WaitMined(ctx, tx)
	if err != nil {
		_ = s.txs.MarkFailed(record.ID, txHash)
		s.notifier.Error("vote", "Fehler beim Abstimmen")
		return nil, fmt.Errorf("%w: %v", ErrVoteFailed, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		_ = s.txs.MarkFailed(record.ID, txHash)
		s.notifier.Error("vote", "Fehler beim Abstimmen")
		return nil, fmt.Errorf("%w: transaction reverted", ErrVoteFailed)
	}

	if err := s.txs.MarkConfirmed(record.ID, txHash, receipt.GasUsed); err != nil {
		s.log.Warn("failed to update vote record", zap.String("id", record.ID), zap.Error(err))
	}
	record.TxHash = txHash
	record.Status = models.TransactionStatusConfirmed
	if err := s.hookSvc.OnTransactionConfirmed(models.TransactionTypeVote, txHash, *record); err != nil {
		s.log.Warn("vote hook failed", zap.Error(err))
	}

	outcome := "Dagegen"
	if req.Support {
		outcome = "Dafür"
	}
	s.notifier.Success("vote", "Stimme erfolgreich abgegeben: "+outcome)
	return receipt, nil
}

func (s *sessionService) ClaimProfits(ctx context.Context) (*types.Receipt, error) {
	s.mu.Lock()
	contract, signer, account, chainID := s.contract, s.signer, s.account, s.chainID
	connected := s.connected && s.hasAccount
	s.mu.Unlock()

	if err := requireBinding(connected, contract, signer, s.notifier); err != nil {
		return nil, err
	}

	record, err := s.txs.RecordPending(&models.OwnershipTransaction{
		Type:    models.TransactionTypeProfitClaim,
		Account: account.Hex(),
		ChainID: chainID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record claim: %w", err)
	}

	opts := *signer
	opts.Context = ctx
	opts.GasLimit = s.cfg.VoteGasLimit

	s.notifier.Loading("claim", "Gewinne werden ausgezahlt...")

	tx, err := contract.ClaimProfits(&opts)
	if err != nil {
		_ = s.txs.MarkFailed(record.ID, "")
		s.notifier.Error("claim", "Fehler bei der Gewinnauszahlung")
		return nil, fmt.Errorf("%w: %v", ErrClaimFailed, err)
	}
	txHash := tx.Hash().Hex()

	receipt, err := contract.WaitMined(ctx, tx)
	if err != nil {
		_ = s.txs.MarkFailed(record.ID, txHash)
		s.notifier.Error("claim", "Fehler bei der Gewinnauszahlung")
		return nil, fmt.Errorf("%w: %v", ErrClaimFailed, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		_ = s.txs.MarkFailed(record.ID, txHash)
		s.notifier.Error("claim", "Fehler bei der Gewinnauszahlung")
		return nil, fmt.Errorf("%w: transaction reverted", ErrClaimFailed)
	}

	if err := s.txs.MarkConfirmed(record.ID, txHash, receipt.GasUsed); err != nil {
		s.log.Warn("failed to update claim record", zap.String("id", record.ID), zap.Error(err))
	}
	record.TxHash = txHash
	record.Status = models.TransactionStatusConfirmed
	if err := s.hookSvc.OnTransactionConfirmed(models.TransactionTypeProfitClaim, txHash, *record); err != nil {
		s.log.Warn("claim hook failed", zap.Error(err))
	}

	s.notifier.Success("claim", "Gewinnauszahlung erfolgreich")
	return receipt, nil
}

// Quote computes purchase economics for a prospective quantity. Uses the
// on-chain share price when a contract is bound and the configured default
// price otherwise, so the widget works before connecting.
func (s *sessionService) Quote(ctx context.Context, quantity int) (*Quote, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	if quantity > s.cfg.MaxPurchaseQty {
		return nil, fmt.Errorf("quantity exceeds maximum of %d", s.cfg.MaxPurchaseQty)
	}

	s.mu.Lock()
	contract := s.contract
	s.mu.Unlock()

	price := big.NewInt(s.cfg.DefaultSharePrice)
	if contract != nil {
		if onchain, err := contract.SharePrice(ctx); err == nil {
			price = onchain
		}
	}

	total := new(big.Int).Mul(price, big.NewInt(int64(quantity)))
	pct := float64(quantity) / float64(s.cfg.TotalSupply) * 100

	return &Quote{
		Quantity:            quantity,
		UnitPrice:           price.String(),
		TotalCost:           total.String(),
		OwnershipPercentage: pct,
	}, nil
}

func (s *sessionService) Info(ctx context.Context) (*OwnershipInfo, error) {
	s.mu.Lock()
	contract := s.contract
	s.mu.Unlock()

	if contract == nil {
		return nil, ErrNotConnected
	}

	details, err := contract.GmbHDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read GmbH details: %w", err)
	}
	property, err := contract.PropertyInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read property info: %w", err)
	}

	return &OwnershipInfo{
		GmbH: models.GmbHDetails{
			Name:          details.Name,
			Address:       details.CompanyAddress,
			TotalValue:    details.TotalValue.String(),
			MonthlyIncome: details.MonthlyIncome.String(),
			Trustee:       details.Trustee.Hex(),
		},
		Property: models.PropertyInfo{
			PropertyAddress: property.PropertyAddress,
			PropertyValue:   property.PropertyValue.String(),
			MonthlyRent:     property.MonthlyRent.String(),
			Status:          property.Status,
		},
	}, nil
}

func (s *sessionService) PendingProfits(ctx context.Context) (*big.Int, error) {
	s.mu.Lock()
	contract, account := s.contract, s.account
	bound := contract != nil && s.hasAccount
	s.mu.Unlock()

	if !bound {
		return nil, ErrNotConnected
	}
	return contract.PendingProfits(ctx, account)
}

func (s *sessionService) State() SessionState {
	s.mu.Lock()
	state := SessionState{
		Connected:           s.connected,
		Connecting:          s.connecting,
		ContractBound:       s.contract != nil,
		NFTCount:            s.nftCount,
		OwnershipPercentage: s.ownership,
	}
	if s.hasAccount {
		state.Account = s.account.Hex()
	}
	if s.hasChain {
		id := s.chainID
		state.ChainID = &id
	}
	if s.contract != nil {
		state.ContractAddress = s.contract.Address().Hex()
	}
	s.mu.Unlock()

	if state.ChainID != nil {
		state.NetworkName = s.networkName(*state.ChainID)
	}
	return state
}

// handleAccountsChanged adopts the wallet's new account list. An empty list
// is an implicit disconnect and leaves the session in the same field state as
// an explicit one.
func (s *sessionService) handleAccountsChanged(accounts []common.Address) {
	if len(accounts) == 0 {
		s.Disconnect()
		return
	}

	s.mu.Lock()
	if !s.connected {
		s.mu.Unlock()
		return
	}
	s.account = accounts[0]
	s.mu.Unlock()

	signer, err := s.provider.TransactOpts(context.Background(), accounts[0])
	if err != nil {
		s.log.Warn("failed to derive signer for new account", zap.Error(err))
		signer = nil
	}

	s.mu.Lock()
	s.signer = signer
	outcome := s.bindContractLocked()
	contract, account, epoch := s.contract, s.account, s.epoch
	s.mu.Unlock()

	if outcome == bindBound {
		_ = s.refreshWith(context.Background(), contract, account, epoch)
	}
}

// handleChainChanged adopts the wallet's new network and re-derives the
// contract binding against it. Bumping the epoch supersedes any in-flight
// operation issued against the previous network.
func (s *sessionService) handleChainChanged(chainID *big.Int) {
	s.mu.Lock()
	if !s.connected {
		s.mu.Unlock()
		return
	}
	s.chainID = chainID.Uint64()
	s.hasChain = true
	account := s.account
	s.mu.Unlock()

	signer, err := s.provider.TransactOpts(context.Background(), account)
	if err != nil {
		s.log.Warn("failed to derive signer for new network", zap.Error(err))
		signer = nil
	}

	s.mu.Lock()
	s.signer = signer
	outcome := s.bindContractLocked()
	contract, epoch := s.contract, s.epoch
	id := s.chainID
	s.mu.Unlock()

	if s.networks.Supported(id) {
		s.notifier.Success("", "Netzwerk gewechselt zu "+s.networkName(id))
	}

	if outcome == bindBound {
		if err := s.networks.SetActive(id); err != nil {
			s.log.Warn("failed to mark active network", zap.Uint64("chain_id", id), zap.Error(err))
		}
		_ = s.refreshWith(context.Background(), contract, account, epoch)
	}
}

// bindContractLocked derives the contract binding from the current session
// state. Cached balances are always invalidated: they are only meaningful
// relative to one binding and one account. Caller holds s.mu.
func (s *sessionService) bindContractLocked() bindOutcome {
	s.contract = nil
	s.nftCount = 0
	s.ownership = 0
	s.epoch++

	if !s.connected || s.signer == nil || !s.hasChain {
		return bindNone
	}

	network, err := s.networks.Get(s.chainID)
	if err != nil {
		return bindUnsupported
	}
	address, deployed := network.DeployedAddress()
	if !deployed {
		return bindNotDeployed
	}

	backend := s.provider.Backend()
	if backend == nil {
		return bindNone
	}

	contract, err := s.newContract(address, backend)
	if err != nil {
		s.log.Error("failed to bind ownership contract", zap.String("address", address.Hex()), zap.Error(err))
		return bindNone
	}
	s.contract = contract
	return bindBound
}

// requireBinding is the shared precondition of the three on-chain writes.
func requireBinding(connected bool, contract contracts.OwnershipNFT, signer *bind.TransactOpts, notifier NotificationService) error {
	if !connected {
		notifier.Error("", "Bitte verbinden Sie Ihre Wallet")
		return ErrNotConnected
	}
	if contract == nil || signer == nil {
		notifier.Error("", "GmbH Ownership NFT nicht auf diesem Netzwerk verfügbar")
		return ErrContractNotDeployed
	}
	return nil
}

func (s *sessionService) networkName(chainID uint64) string {
	network, err := s.networks.Get(chainID)
	if err != nil {
		return fmt.Sprintf("Chain %d", chainID)
	}
	return network.Name
}

func (s *sessionService) supportedNames() string {
	networks, err := s.networks.List()
	if err != nil {
		return ""
	}
	names := make([]string, 0, len(networks))
	for _, n := range networks {
		names = append(names, n.Name)
	}
	return strings.Join(names, ", ")
}
