package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/finsterfurz/coinestateV2/internal/models"
	"gorm.io/gorm"
)

// TransactionService persists the purchase/vote/claim history. Rows are
// created as pending at submission and resolved once the confirmation stage
// finishes; cached session balances are never derived from these rows.
type TransactionService interface {
	RecordPending(record *models.OwnershipTransaction) (*models.OwnershipTransaction, error)
	MarkConfirmed(id, txHash string, gasUsed uint64) error
	MarkFailed(id, txHash string) error
	Get(id string) (*models.OwnershipTransaction, error)
	ListByAccount(account string, limit int) ([]models.OwnershipTransaction, error)
	List(limit int) ([]models.OwnershipTransaction, error)
}

type transactionService struct {
	db *gorm.DB
}

func NewTransactionService(db *gorm.DB) TransactionService {
	return &transactionService{db: db}
}

func (s *transactionService) RecordPending(record *models.OwnershipTransaction) (*models.OwnershipTransaction, error) {
	record.ID = uuid.New().String()
	record.Status = models.TransactionStatusPending
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	if err := s.db.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (s *transactionService) MarkConfirmed(id, txHash string, gasUsed uint64) error {
	updates := map[string]interface{}{
		"status":   models.TransactionStatusConfirmed,
		"gas_used": gasUsed,
	}
	if txHash != "" {
		updates["tx_hash"] = txHash
	}
	return s.db.Model(&models.OwnershipTransaction{}).Where("id = ?", id).Updates(updates).Error
}

func (s *transactionService) MarkFailed(id, txHash string) error {
	updates := map[string]interface{}{
		"status": models.TransactionStatusFailed,
	}
	if txHash != "" {
		updates["tx_hash"] = txHash
	}
	return s.db.Model(&models.OwnershipTransaction{}).Where("id = ?", id).Updates(updates).Error
}

func (s *transactionService) Get(id string) (*models.OwnershipTransaction, error) {
	var record models.OwnershipTransaction
	err := s.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *transactionService) ListByAccount(account string, limit int) ([]models.OwnershipTransaction, error) {
	query := s.db.Where("account = ?", account).Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var records []models.OwnershipTransaction
	err := query.Find(&records).Error
	return records, err
}

func (s *transactionService) List(limit int) ([]models.OwnershipTransaction, error) {
	query := s.db.Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var records []models.OwnershipTransaction
	err := query.Find(&records).Error
	return records, err
}
