package contracts

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// OwnershipNFTABI is the fixed external interface of the deployed GmbH
// ownership NFT contract. The contract source is out of scope; this ABI is
// consumed as-is.
const OwnershipNFTABI = `[
  {"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"purchaseOwnership","stateMutability":"payable","inputs":[],"outputs":[]},
  {"type":"function","name":"getOwnershipPercentage","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getTotalOwnership","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getSharePrice","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"vote","stateMutability":"nonpayable","inputs":[{"name":"proposalId","type":"uint256"},{"name":"support","type":"bool"}],"outputs":[]},
  {"type":"function","name":"getVotingPower","stateMutability":"view","inputs":[{"name":"voter","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"hasVoted","stateMutability":"view","inputs":[{"name":"proposalId","type":"uint256"},{"name":"voter","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"getGmbHDetails","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"tuple","components":[{"name":"name","type":"string"},{"name":"companyAddress","type":"string"},{"name":"totalValue","type":"uint256"},{"name":"monthlyIncome","type":"uint256"},{"name":"trustee","type":"address"}]}]},
  {"type":"function","name":"getPropertyInfo","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"tuple","components":[{"name":"propertyAddress","type":"string"},{"name":"propertyValue","type":"uint256"},{"name":"monthlyRent","type":"uint256"},{"name":"status","type":"string"}]}]},
  {"type":"function","name":"claimProfits","stateMutability":"nonpayable","inputs":[],"outputs":[]},
  {"type":"function","name":"getPendingProfits","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getLastPaymentDate","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"event","name":"OwnershipPurchased","inputs":[{"name":"buyer","type":"address","indexed":true},{"name":"quantity","type":"uint256","indexed":false},{"name":"totalCost","type":"uint256","indexed":false}]},
  {"type":"event","name":"VoteCast","inputs":[{"name":"voter","type":"address","indexed":true},{"name":"proposalId","type":"uint256","indexed":false},{"name":"support","type":"bool","indexed":false},{"name":"votingPower","type":"uint256","indexed":false}]},
  {"type":"event","name":"ProfitsDistributed","inputs":[{"name":"totalAmount","type":"uint256","indexed":false},{"name":"timestamp","type":"uint256","indexed":false}]}
]`

// Backend is the subset of an Ethereum client the binding needs: contract
// calls, transaction submission and receipt lookup. *ethclient.Client
// satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// GmbHDetailsResult is the decoded getGmbHDetails() tuple.
type GmbHDetailsResult struct {
	Name           string
	CompanyAddress string
	TotalValue     *big.Int
	MonthlyIncome  *big.Int
	Trustee        common.Address
}

// PropertyInfoResult is the decoded getPropertyInfo() tuple.
type PropertyInfoResult struct {
	PropertyAddress string
	PropertyValue   *big.Int
	MonthlyRent     *big.Int
	Status          string
}

// OwnershipNFT is a typed binding to the ownership contract at one address on
// one network. Bindings are cheap pure derivations: they are rebuilt, never
// reused, whenever the signer or network changes.
type OwnershipNFT interface {
	Address() common.Address

	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
	OwnershipPercentage(ctx context.Context, owner common.Address) (*big.Int, error)
	SharePrice(ctx context.Context) (*big.Int, error)
	TotalSupply(ctx context.Context) (*big.Int, error)
	VotingPower(ctx context.Context, voter common.Address) (*big.Int, error)
	HasVoted(ctx context.Context, proposalID uint64, voter common.Address) (bool, error)
	GmbHDetails(ctx context.Context) (*GmbHDetailsResult, error)
	PropertyInfo(ctx context.Context) (*PropertyInfoResult, error)
	PendingProfits(ctx context.Context, owner common.Address) (*big.Int, error)
	LastPaymentDate(ctx context.Context) (*big.Int, error)

	PurchaseOwnership(opts *bind.TransactOpts) (*types.Transaction, error)
	Vote(opts *bind.TransactOpts, proposalID uint64, support bool) (*types.Transaction, error)
	ClaimProfits(opts *bind.TransactOpts) (*types.Transaction, error)

	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

type ownershipNFT struct {
	address  common.Address
	contract *bind.BoundContract
	backend  Backend
}

// NewOwnershipNFT binds the ownership contract at the given address.
func NewOwnershipNFT(address common.Address, backend Backend) (OwnershipNFT, error) {
	parsed, err := abi.JSON(strings.NewReader(OwnershipNFTABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ownership NFT ABI: %w", err)
	}
	contract := bind.NewBoundContract(address, parsed, backend, backend, backend)
	return &ownershipNFT{address: address, contract: contract, backend: backend}, nil
}

func (o *ownershipNFT) Address() common.Address {
	return o.address
}

func (o *ownershipNFT) callUint(ctx context.Context, method string, params ...interface{}) (*big.Int, error) {
	var out []interface{}
	err := o.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (o *ownershipNFT) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	return o.callUint(ctx, "balanceOf", owner)
}

func (o *ownershipNFT) OwnershipPercentage(ctx context.Context, owner common.Address) (*big.Int, error) {
	return o.callUint(ctx, "getOwnershipPercentage", owner)
}

func (o *ownershipNFT) SharePrice(ctx context.Context) (*big.Int, error) {
	return o.callUint(ctx, "getSharePrice")
}

func (o *ownershipNFT) TotalSupply(ctx context.Context) (*big.Int, error) {
	return o.callUint(ctx, "totalSupply")
}

func (o *ownershipNFT) VotingPower(ctx context.Context, voter common.Address) (*big.Int, error) {
	return o.callUint(ctx, "getVotingPower", voter)
}

func (o *ownershipNFT) HasVoted(ctx context.Context, proposalID uint64, voter common.Address) (bool, error) {
	var out []interface{}
	err := o.contract.Call(&bind.CallOpts{Context: ctx}, &out, "hasVoted", new(big.Int).SetUint64(proposalID), voter)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (o *ownershipNFT) GmbHDetails(ctx context.Context) (*GmbHDetailsResult, error) {
	var out []interface{}
	err := o.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getGmbHDetails")
	if err != nil {
		return nil, err
	}
	details := *abi.ConvertType(out[0], new(GmbHDetailsResult)).(*GmbHDetailsResult)
	return &details, nil
}

func (o *ownershipNFT) PropertyInfo(ctx context.Context) (*PropertyInfoResult, error) {
	var out []interface{}
	err := o.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getPropertyInfo")
	if err != nil {
		return nil, err
	}
	info := *abi.ConvertType(out[0], new(PropertyInfoResult)).(*PropertyInfoResult)
	return &info, nil
}

func (o *ownershipNFT) PendingProfits(ctx context.Context, owner common.Address) (*big.Int, error) {
	return o.callUint(ctx, "getPendingProfits", owner)
}

func (o *ownershipNFT) LastPaymentDate(ctx context.Context) (*big.Int, error) {
	return o.callUint(ctx, "getLastPaymentDate")
}

func (o *ownershipNFT) PurchaseOwnership(opts *bind.TransactOpts) (*types.Transaction, error) {
	return o.contract.Transact(opts, "purchaseOwnership")
}

func (o *ownershipNFT) Vote(opts *bind.TransactOpts, proposalID uint64, support bool) (*types.Transaction, error) {
	return o.contract.Transact(opts, "vote", new(big.Int).SetUint64(proposalID), support)
}

func (o *ownershipNFT) ClaimProfits(opts *bind.TransactOpts) (*types.Transaction, error) {
	return o.contract.Transact(opts, "claimProfits")
}

func (o *ownershipNFT) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return bind.WaitMined(ctx, o.backend, tx)
}
