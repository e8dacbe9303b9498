package services

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/finsterfurz/coinestateV2/internal/contracts"
	"github.com/finsterfurz/coinestateV2/internal/models"
)

// PurchaseRequest is one purchase attempt. Quantity is additionally bounded
// by the configured maximum.
type PurchaseRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// VoteRequest casts one governance vote.
type VoteRequest struct {
	ProposalID uint64 `json:"proposal_id"`
	Support    bool   `json:"support"`
}

// SessionState is a read-only snapshot of the wallet session.
type SessionState struct {
	Connected           bool    `json:"connected"`
	Connecting          bool    `json:"connecting"`
	Account             string  `json:"account,omitempty"`
	ChainID             *uint64 `json:"chain_id,omitempty"`
	NetworkName         string  `json:"network,omitempty"`
	ContractAddress     string  `json:"contract_address,omitempty"`
	ContractBound       bool    `json:"contract_bound"`
	NFTCount            int64   `json:"nft_count"`
	OwnershipPercentage float64 `json:"ownership_percentage"`
}

// Quote is the purchase economics for a prospective quantity.
type Quote struct {
	Quantity            int     `json:"quantity"`
	UnitPrice           string  `json:"unit_price"`
	TotalCost           string  `json:"total_cost"`
	OwnershipPercentage float64 `json:"ownership_percentage"`
}

// OwnershipInfo bundles the on-chain GmbH and property reads.
type OwnershipInfo struct {
	GmbH     models.GmbHDetails  `json:"gmbh"`
	Property models.PropertyInfo `json:"property"`
}

// ContractFactory derives a contract binding for an address on a backend.
// Injectable so tests can substitute a stub contract.
type ContractFactory func(address common.Address, backend contracts.Backend) (contracts.OwnershipNFT, error)
