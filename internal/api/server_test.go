package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/finsterfurz/coinestateV2/internal/api"
	"github.com/finsterfurz/coinestateV2/internal/auth"
	"github.com/finsterfurz/coinestateV2/internal/config"
	"github.com/finsterfurz/coinestateV2/internal/database"
	"github.com/finsterfurz/coinestateV2/internal/services"
)

// mockSession implements the SessionService interface for handler tests.
type mockSession struct {
	state       services.SessionState
	connectErr  error
	switchErr   error
	refreshErr  error
	purchaseErr error
	voteErr     error
	claimErr    error

	purchaseCalls int
	voteCalls     int
}

func (m *mockSession) Start() {}
func (m *mockSession) Close() {}

func (m *mockSession) Connect(ctx context.Context) error {
	if m.connectErr != nil {
		return m.connectErr
	}
	m.state.Connected = true
	return nil
}

func (m *mockSession) Disconnect() {
	m.state = services.SessionState{}
}

func (m *mockSession) SwitchNetwork(ctx context.Context, chainID uint64) error {
	return m.switchErr
}

func (m *mockSession) Refresh(ctx context.Context) error {
	return m.refreshErr
}

func (m *mockSession) Purchase(ctx context.Context, req services.PurchaseRequest) (*types.Receipt, error) {
	m.purchaseCalls++
	if m.purchaseErr != nil {
		return nil, m.purchaseErr
	}
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, GasUsed: 21000, BlockNumber: big.NewInt(1)}, nil
}

func (m *mockSession) Vote(ctx context.Context, req services.VoteRequest) (*types.Receipt, error) {
	m.voteCalls++
	if m.voteErr != nil {
		return nil, m.voteErr
	}
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, GasUsed: 21000, BlockNumber: big.NewInt(1)}, nil
}

func (m *mockSession) ClaimProfits(ctx context.Context) (*types.Receipt, error) {
	if m.claimErr != nil {
		return nil, m.claimErr
	}
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, GasUsed: 21000, BlockNumber: big.NewInt(1)}, nil
}

func (m *mockSession) Quote(ctx context.Context, quantity int) (*services.Quote, error) {
	total := big.NewInt(int64(quantity) * 1000)
	return &services.Quote{
		Quantity:            quantity,
		UnitPrice:           "1000",
		TotalCost:           total.String(),
		OwnershipPercentage: float64(quantity) / 2500 * 100,
	}, nil
}

func (m *mockSession) Info(ctx context.Context) (*services.OwnershipInfo, error) {
	return &services.OwnershipInfo{}, nil
}

func (m *mockSession) PendingProfits(ctx context.Context) (*big.Int, error) {
	return big.NewInt(42), nil
}

func (m *mockSession) State() services.SessionState {
	return m.state
}

type APIServerTestSuite struct {
	suite.Suite
	db      *database.Database
	session *mockSession
	cfg     *config.Config
	server  *api.APIServer
}

func (suite *APIServerTestSuite) SetupTest() {
	suite.setupWithSecret("")
}

func (suite *APIServerTestSuite) setupWithSecret(jwtSecret string) {
	dbPath := filepath.Join(suite.T().TempDir(), "test.db")
	db, err := database.New(dbPath, "")
	suite.Require().NoError(err)
	suite.db = db

	networks := services.NewNetworkService(db.DB)
	err = networks.Seed([]config.NetworkConfig{
		{ChainID: 1, Name: "Ethereum Mainnet", RPC: "http://localhost:8545", ContractAddress: "0x1111111111111111111111111111111111111111"},
		{ChainID: 137, Name: "Polygon Mainnet", RPC: "http://localhost:8546"},
	})
	suite.Require().NoError(err)

	suite.session = &mockSession{}
	suite.cfg = &config.Config{
		MaxPurchaseQty: 100,
		JWTSecret:      jwtSecret,
		JWTExpiration:  time.Hour,
	}

	suite.server = api.NewAPIServer(
		suite.session,
		networks,
		services.NewNotificationService(),
		services.NewTransactionService(db.DB),
		suite.cfg,
		zap.NewNop(),
	)
}

func (suite *APIServerTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *APIServerTestSuite) request(method, target string, body interface{}) *http.Response {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, target, reqBody)
	req.Header.Set("Content-Type", "application/json")
	resp, err := suite.server.App().Test(req)
	suite.Require().NoError(err)
	return resp
}

func (suite *APIServerTestSuite) TestHealth() {
	resp := suite.request(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, resp.StatusCode)
}

func (suite *APIServerTestSuite) TestQuote() {
	resp := suite.request(http.MethodGet, "/api/quote?quantity=3", nil)
	suite.Require().Equal(http.StatusOK, resp.StatusCode)

	var quote services.Quote
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&quote))
	suite.Equal("3000", quote.TotalCost)
	suite.InDelta(0.12, quote.OwnershipPercentage, 0.0001)
}

func (suite *APIServerTestSuite) TestNetworks() {
	resp := suite.request(http.MethodGet, "/api/networks", nil)
	suite.Require().Equal(http.StatusOK, resp.StatusCode)

	var networks []map[string]interface{}
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&networks))
	suite.Require().Len(networks, 2)
	suite.Equal(true, networks[0]["deployed"])
	suite.Equal(false, networks[1]["deployed"])
}

func (suite *APIServerTestSuite) TestVoteErrorMapping() {
	suite.session.voteErr = services.ErrNoVotingPower
	resp := suite.request(http.MethodPost, "/api/vote", services.VoteRequest{ProposalID: 1, Support: true})
	suite.Equal(http.StatusForbidden, resp.StatusCode)

	suite.session.voteErr = services.ErrAlreadyVoted
	resp = suite.request(http.MethodPost, "/api/vote", services.VoteRequest{ProposalID: 1, Support: true})
	suite.Equal(http.StatusConflict, resp.StatusCode)

	suite.session.voteErr = services.ErrNotConnected
	resp = suite.request(http.MethodPost, "/api/vote", services.VoteRequest{ProposalID: 1, Support: true})
	suite.Equal(http.StatusConflict, resp.StatusCode)
}

func (suite *APIServerTestSuite) TestPurchaseWithoutTokenWhenGuarded() {
	suite.db.Close()
	suite.setupWithSecret("test-secret")

	resp := suite.request(http.MethodPost, "/api/purchase", services.PurchaseRequest{Quantity: 1})
	suite.Equal(http.StatusUnauthorized, resp.StatusCode)
	suite.Equal(0, suite.session.purchaseCalls)
}

func (suite *APIServerTestSuite) TestPurchaseWithToken() {
	suite.db.Close()
	suite.setupWithSecret("test-secret")

	token, err := auth.GenerateJWT("test-secret", "0x1111111111111111111111111111111111111111", time.Hour)
	suite.Require().NoError(err)

	body, err := json.Marshal(services.PurchaseRequest{Quantity: 1})
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, "/api/purchase", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := suite.server.App().Test(req)
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal(1, suite.session.purchaseCalls)
}

func (suite *APIServerTestSuite) TestAuthTokenRequiresConnection() {
	suite.db.Close()
	suite.setupWithSecret("test-secret")

	resp := suite.request(http.MethodPost, "/api/auth/token", nil)
	suite.Equal(http.StatusConflict, resp.StatusCode)

	suite.Require().NoError(suite.session.Connect(context.Background()))
	suite.session.state.Account = "0x1111111111111111111111111111111111111111"
	resp = suite.request(http.MethodPost, "/api/auth/token", nil)
	suite.Equal(http.StatusOK, resp.StatusCode)
}

func TestAPIServerTestSuite(t *testing.T) {
	suite.Run(t, new(APIServerTestSuite))
}
