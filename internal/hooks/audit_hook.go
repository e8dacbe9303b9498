package hooks

import (
	"go.uber.org/zap"

	"github.com/finsterfurz/coinestateV2/internal/models"
	"github.com/finsterfurz/coinestateV2/internal/services"
)

type AuditHook struct {
	log *zap.Logger
}

// CanHandle implements Hook.
func (a *AuditHook) CanHandle(txType models.TransactionType) bool {
	return true
}

// OnTransactionConfirmed implements Hook.
func (a *AuditHook) OnTransactionConfirmed(txType models.TransactionType, txHash string, record models.OwnershipTransaction) error {
	fields := []zap.Field{
		zap.String("type", string(txType)),
		zap.String("tx_hash", txHash),
		zap.String("account", record.Account),
		zap.Uint64("chain_id", record.ChainID),
		zap.Uint64("gas_used", record.GasUsed),
	}
	switch txType {
	case models.TransactionTypePurchase:
		fields = append(fields,
			zap.Int("quantity", record.Quantity),
			zap.String("total_cost_wei", record.TotalCost),
		)
	case models.TransactionTypeVote:
		if record.ProposalID != nil {
			fields = append(fields, zap.Uint64("proposal_id", *record.ProposalID))
		}
		if record.Support != nil {
			fields = append(fields, zap.Bool("support", *record.Support))
		}
	}
	a.log.Info("transaction confirmed", fields...)
	return nil
}

func NewAuditHook(log *zap.Logger) services.Hook {
	return &AuditHook{
		log: log,
	}
}
