package services

import (
	"github.com/finsterfurz/coinestateV2/internal/config"
	"github.com/finsterfurz/coinestateV2/internal/models"
	"gorm.io/gorm"
)

// NetworkService owns the supported-network table. The table is static
// reference data seeded from configuration at startup; entries without a
// deployed contract address stay listed so the UI can show them as
// "not deployed" rather than unknown.
type NetworkService interface {
	Seed(networks []config.NetworkConfig) error
	Get(chainID uint64) (*models.Network, error)
	Supported(chainID uint64) bool
	List() ([]models.Network, error)
	SetActive(chainID uint64) error
	Active() (*models.Network, error)
}

type networkService struct {
	db *gorm.DB
}

func NewNetworkService(db *gorm.DB) NetworkService {
	return &networkService{db: db}
}

// Seed creates or updates one row per configured network.
func (s *networkService) Seed(networks []config.NetworkConfig) error {
	for _, n := range networks {
		var existing models.Network
		err := s.db.Where("chain_id = ?", n.ChainID).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			row := models.Network{
				ChainID:         n.ChainID,
				Name:            n.Name,
				RPC:             n.RPC,
				ContractAddress: n.ContractAddress,
				Testnet:         n.Testnet,
			}
			if err := s.db.Create(&row).Error; err != nil {
				return err
			}
			continue
		} else if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"name":             n.Name,
			"rpc":              n.RPC,
			"contract_address": n.ContractAddress,
			"testnet":          n.Testnet,
		}
		if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *networkService) Get(chainID uint64) (*models.Network, error) {
	var network models.Network
	err := s.db.Where("chain_id = ?", chainID).First(&network).Error
	if err != nil {
		return nil, err
	}
	return &network, nil
}

func (s *networkService) Supported(chainID uint64) bool {
	_, err := s.Get(chainID)
	return err == nil
}

func (s *networkService) List() ([]models.Network, error) {
	var networks []models.Network
	err := s.db.Order("testnet asc, chain_id asc").Find(&networks).Error
	return networks, err
}

// SetActive marks a network as the wallet's current one.
func (s *networkService) SetActive(chainID uint64) error {
	if err := s.db.Model(&models.Network{}).Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
		return err
	}
	return s.db.Model(&models.Network{}).Where("chain_id = ?", chainID).Update("is_active", true).Error
}

func (s *networkService) Active() (*models.Network, error) {
	var network models.Network
	err := s.db.Where("is_active = ?", true).First(&network).Error
	if err != nil {
		return nil, err
	}
	return &network, nil
}
