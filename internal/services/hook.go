package services

import "github.com/finsterfurz/coinestateV2/internal/models"

// Hook reacts to confirmed ownership transactions.
type Hook interface {
	CanHandle(txType models.TransactionType) bool
	OnTransactionConfirmed(txType models.TransactionType, txHash string, record models.OwnershipTransaction) error
}
