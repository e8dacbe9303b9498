package models

import "time"

type TransactionStatus string

type TransactionType string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

const (
	TransactionTypePurchase    TransactionType = "purchase"
	TransactionTypeVote        TransactionType = "vote"
	TransactionTypeProfitClaim TransactionType = "profit_claim"
)

// OwnershipTransaction records one submitted purchase, vote or profit claim.
// A row is created as pending when the transaction is handed to the wallet
// and updated once the confirmation stage resolves.
type OwnershipTransaction struct {
	ID      string            `gorm:"primaryKey" json:"id"`
	Type    TransactionType   `gorm:"not null;index" json:"type"`
	Status  TransactionStatus `gorm:"default:pending" json:"status"`
	Account string            `gorm:"not null;index" json:"account"`
	ChainID uint64            `gorm:"not null" json:"chain_id"`
	TxHash  string            `gorm:"index" json:"tx_hash"`

	// Purchase fields
	Quantity  int    `json:"quantity,omitempty"`
	TotalCost string `json:"total_cost,omitempty"` // wei, decimal string

	// Vote fields
	ProposalID *uint64 `json:"proposal_id,omitempty"`
	Support    *bool   `json:"support,omitempty"`

	GasUsed   uint64    `json:"gas_used,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
