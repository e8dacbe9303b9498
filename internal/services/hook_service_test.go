package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/finsterfurz/coinestateV2/internal/models"
	"github.com/finsterfurz/coinestateV2/internal/services"
)

// mockHook implements the Hook interface for testing
type mockHook struct {
	supportedTypes []models.TransactionType
	callCount      int
	lastTxType     models.TransactionType
	lastTxHash     string
	lastRecord     models.OwnershipTransaction
	shouldError    bool
}

func newMockHook(supportedTypes ...models.TransactionType) *mockHook {
	return &mockHook{supportedTypes: supportedTypes}
}

func (m *mockHook) CanHandle(txType models.TransactionType) bool {
	for _, supported := range m.supportedTypes {
		if supported == txType {
			return true
		}
	}
	return false
}

func (m *mockHook) OnTransactionConfirmed(txType models.TransactionType, txHash string, record models.OwnershipTransaction) error {
	m.callCount++
	m.lastTxType = txType
	m.lastTxHash = txHash
	m.lastRecord = record
	if m.shouldError {
		return fmt.Errorf("hook failed")
	}
	return nil
}

type HookServiceTestSuite struct {
	suite.Suite
	hookService services.HookService
}

func (suite *HookServiceTestSuite) SetupTest() {
	suite.hookService = services.NewHookService()
}

func (suite *HookServiceTestSuite) TestDispatchesToMatchingHooks() {
	purchaseHook := newMockHook(models.TransactionTypePurchase)
	voteHook := newMockHook(models.TransactionTypeVote)
	suite.Require().NoError(suite.hookService.AddHook(purchaseHook))
	suite.Require().NoError(suite.hookService.AddHook(voteHook))

	record := models.OwnershipTransaction{Account: "0xabc", Quantity: 3}
	err := suite.hookService.OnTransactionConfirmed(models.TransactionTypePurchase, "0xhash", record)
	suite.Require().NoError(err)

	suite.Equal(1, purchaseHook.callCount)
	suite.Equal(0, voteHook.callCount)
	suite.Equal("0xhash", purchaseHook.lastTxHash)
	suite.Equal(3, purchaseHook.lastRecord.Quantity)
}

func (suite *HookServiceTestSuite) TestHookErrorStopsChain() {
	failing := newMockHook(models.TransactionTypePurchase)
	failing.shouldError = true
	after := newMockHook(models.TransactionTypePurchase)
	suite.Require().NoError(suite.hookService.AddHook(failing))
	suite.Require().NoError(suite.hookService.AddHook(after))

	err := suite.hookService.OnTransactionConfirmed(models.TransactionTypePurchase, "0xhash", models.OwnershipTransaction{})
	suite.Require().Error(err)
	suite.Equal(0, after.callCount)
}

func TestHookServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HookServiceTestSuite))
}
