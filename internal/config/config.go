package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// NetworkConfig is one entry of the static supported-network table. An empty
// or all-zero ContractAddress marks the ownership contract as not deployed on
// that network; the entry is still valid configuration.
type NetworkConfig struct {
	ChainID         uint64
	Name            string
	RPC             string
	ContractAddress string
	Testnet         bool
}

type Config struct {
	// Database: sqlite file path by default, postgres DSN when set.
	DatabasePath string
	PostgresDSN  string

	// Wallet
	PrivateKey string // hex, no 0x prefix required

	// Ownership economics
	TotalSupply       int64 // maximum issuable ownership NFTs
	MaxPurchaseQty    int   // per-purchase quantity ceiling
	DefaultSharePrice int64 // fallback unit price when no contract is bound

	// Gas ceilings for payable / vote transactions
	PurchaseGasLimit uint64
	VoteGasLimit     uint64

	// Supported networks, production entries first.
	Networks []NetworkConfig

	// Auth
	JWTSecret     string
	JWTExpiration time.Duration

	// Server, 0 picks a random free port.
	APIPort int
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DatabasePath: getEnv("DATABASE_PATH", "coinestate.db"),
		PostgresDSN:  getEnv("POSTGRES_DSN", ""),

		PrivateKey: getEnv("WALLET_PRIVATE_KEY", ""),

		TotalSupply:       int64(getEnvInt("NFT_TOTAL_SUPPLY", 2500)),
		MaxPurchaseQty:    getEnvInt("MAX_PURCHASE_QUANTITY", 100),
		DefaultSharePrice: int64(getEnvInt("DEFAULT_SHARE_PRICE", 1000)),

		PurchaseGasLimit: uint64(getEnvInt("PURCHASE_GAS_LIMIT", 300000)),
		VoteGasLimit:     uint64(getEnvInt("VOTE_GAS_LIMIT", 150000)),

		Networks: []NetworkConfig{
			{
				ChainID:         1,
				Name:            "Ethereum Mainnet",
				RPC:             getEnv("RPC_MAINNET", "https://eth.llamarpc.com"),
				ContractAddress: getEnv("CONTRACT_MAINNET", ""),
			},
			{
				ChainID:         137,
				Name:            "Polygon Mainnet",
				RPC:             getEnv("RPC_POLYGON", "https://polygon-rpc.com"),
				ContractAddress: getEnv("CONTRACT_POLYGON", ""),
			},
			{
				ChainID:         5,
				Name:            "Goerli Testnet",
				RPC:             getEnv("RPC_GOERLI", ""),
				ContractAddress: getEnv("CONTRACT_GOERLI", ""),
				Testnet:         true,
			},
			{
				ChainID:         11155111,
				Name:            "Sepolia Testnet",
				RPC:             getEnv("RPC_SEPOLIA", "https://rpc.sepolia.org"),
				ContractAddress: getEnv("CONTRACT_SEPOLIA", ""),
				Testnet:         true,
			},
			{
				ChainID:         80001,
				Name:            "Mumbai Testnet",
				RPC:             getEnv("RPC_MUMBAI", ""),
				ContractAddress: getEnv("CONTRACT_MUMBAI", ""),
				Testnet:         true,
			},
		},

		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTExpiration: time.Duration(getEnvInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour,

		APIPort: getEnvInt("API_PORT", 8080),
	}

	return cfg
}

// Network returns the configured entry for a chain id, if any.
func (c *Config) Network(chainID uint64) (NetworkConfig, bool) {
	for _, n := range c.Networks {
		if n.ChainID == chainID {
			return n, true
		}
	}
	return NetworkConfig{}, false
}

func (c *Config) Validate(log *zap.Logger) {
	if c.PrivateKey == "" {
		log.Warn("WALLET_PRIVATE_KEY is not set, wallet connect will fail")
	}
	if c.JWTSecret == "" {
		log.Warn("JWT_SECRET is not set, mutating API routes are unauthenticated")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
