package services

import (
	"github.com/finsterfurz/coinestateV2/internal/models"
)

type HookService interface {
	AddHook(hook Hook) error
	OnTransactionConfirmed(txType models.TransactionType, txHash string, record models.OwnershipTransaction) error
}

type hookService struct {
	hooks []Hook
}

func NewHookService() HookService {
	return &hookService{
		hooks: []Hook{},
	}
}

func (h *hookService) AddHook(hook Hook) error {
	h.hooks = append(h.hooks, hook)
	return nil
}

func (h *hookService) OnTransactionConfirmed(txType models.TransactionType, txHash string, record models.OwnershipTransaction) error {
	for _, hook := range h.hooks {
		if hook.CanHandle(txType) {
			if err := hook.OnTransactionConfirmed(txType, txHash, record); err != nil {
				return err
			}
		}
	}
	return nil
}
