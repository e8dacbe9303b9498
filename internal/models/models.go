package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/gorm"
)

// Network represents a blockchain network the ownership NFT product knows
// about. Rows are seeded from configuration at startup; entries whose
// contract address is missing or all-zero are "not deployed" networks and
// never produce a usable contract binding.
type Network struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	ChainID         uint64         `gorm:"uniqueIndex;not null" json:"chain_id"`
	Name            string         `gorm:"not null" json:"name"`
	RPC             string         `json:"rpc"`
	ContractAddress string         `json:"contract_address"`
	Testnet         bool           `gorm:"default:false" json:"testnet"`
	IsActive        bool           `gorm:"default:false" json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// DeployedAddress returns the ownership contract address for this network.
// ok is false when no contract is deployed there, so callers never compare
// against the zero address themselves.
func (n *Network) DeployedAddress() (common.Address, bool) {
	if n.ContractAddress == "" || !common.IsHexAddress(n.ContractAddress) {
		return common.Address{}, false
	}
	addr := common.HexToAddress(n.ContractAddress)
	if addr == (common.Address{}) {
		return common.Address{}, false
	}
	return addr, true
}

// GmbHDetails mirrors the getGmbHDetails() tuple of the ownership contract.
type GmbHDetails struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	TotalValue    string `json:"total_value"`
	MonthlyIncome string `json:"monthly_income"`
	Trustee       string `json:"trustee"`
}

// PropertyInfo mirrors the getPropertyInfo() tuple of the ownership contract.
type PropertyInfo struct {
	PropertyAddress string `json:"property_address"`
	PropertyValue   string `json:"property_value"`
	MonthlyRent     string `json:"monthly_rent"`
	Status          string `json:"status"`
}
