package services_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/finsterfurz/coinestateV2/internal/database"
	"github.com/finsterfurz/coinestateV2/internal/models"
	"github.com/finsterfurz/coinestateV2/internal/services"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	db  *database.Database
	txs services.TransactionService
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	dbPath := filepath.Join(suite.T().TempDir(), "test.db")
	db, err := database.New(dbPath, "")
	suite.Require().NoError(err)
	suite.db = db
	suite.txs = services.NewTransactionService(db.DB)
}

func (suite *TransactionServiceTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *TransactionServiceTestSuite) TestRecordPendingAssignsIDAndStatus() {
	record, err := suite.txs.RecordPending(&models.OwnershipTransaction{
		Type:      models.TransactionTypePurchase,
		Account:   testAccount.Hex(),
		ChainID:   1,
		Quantity:  3,
		TotalCost: "3000",
	})
	suite.Require().NoError(err)
	suite.NotEmpty(record.ID)
	suite.Equal(models.TransactionStatusPending, record.Status)
}

func (suite *TransactionServiceTestSuite) TestMarkConfirmed() {
	record, err := suite.txs.RecordPending(&models.OwnershipTransaction{
		Type:    models.TransactionTypePurchase,
		Account: testAccount.Hex(),
		ChainID: 1,
	})
	suite.Require().NoError(err)

	err = suite.txs.MarkConfirmed(record.ID, "0xabc", 123456)
	suite.Require().NoError(err)

	stored, err := suite.txs.Get(record.ID)
	suite.Require().NoError(err)
	suite.Equal(models.TransactionStatusConfirmed, stored.Status)
	suite.Equal("0xabc", stored.TxHash)
	suite.Equal(uint64(123456), stored.GasUsed)
}

func (suite *TransactionServiceTestSuite) TestMarkFailedWithoutHash() {
	record, err := suite.txs.RecordPending(&models.OwnershipTransaction{
		Type:    models.TransactionTypeVote,
		Account: testAccount.Hex(),
		ChainID: 1,
	})
	suite.Require().NoError(err)

	err = suite.txs.MarkFailed(record.ID, "")
	suite.Require().NoError(err)

	stored, err := suite.txs.Get(record.ID)
	suite.Require().NoError(err)
	suite.Equal(models.TransactionStatusFailed, stored.Status)
	suite.Empty(stored.TxHash)
}

func (suite *TransactionServiceTestSuite) TestListByAccount() {
	other := "0x3333333333333333333333333333333333333333"
	for i := 0; i < 3; i++ {
		_, err := suite.txs.RecordPending(&models.OwnershipTransaction{
			Type:    models.TransactionTypePurchase,
			Account: testAccount.Hex(),
			ChainID: 1,
		})
		suite.Require().NoError(err)
	}
	_, err := suite.txs.RecordPending(&models.OwnershipTransaction{
		Type:    models.TransactionTypePurchase,
		Account: other,
		ChainID: 1,
	})
	suite.Require().NoError(err)

	records, err := suite.txs.ListByAccount(testAccount.Hex(), 0)
	suite.Require().NoError(err)
	suite.Len(records, 3)

	limited, err := suite.txs.ListByAccount(testAccount.Hex(), 2)
	suite.Require().NoError(err)
	suite.Len(limited, 2)

	all, err := suite.txs.List(0)
	suite.Require().NoError(err)
	suite.Len(all, 4)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
