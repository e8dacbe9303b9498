package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/finsterfurz/coinestateV2/internal/auth"
)

type networkResponse struct {
	ChainID         uint64 `json:"chain_id"`
	Name            string `json:"name"`
	ContractAddress string `json:"contract_address,omitempty"`
	Deployed        bool   `json:"deployed"`
	Testnet         bool   `json:"testnet"`
	Active          bool   `json:"active"`
}

func (s *APIServer) handleNetworks(c *fiber.Ctx) error {
	networks, err := s.networks.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	out := make([]networkResponse, 0, len(networks))
	for _, n := range networks {
		address, deployed := n.DeployedAddress()
		resp := networkResponse{
			ChainID:  n.ChainID,
			Name:     n.Name,
			Deployed: deployed,
			Testnet:  n.Testnet,
			Active:   n.IsActive,
		}
		if deployed {
			resp.ContractAddress = address.Hex()
		}
		out = append(out, resp)
	}
	return c.JSON(out)
}

// handleAuthToken issues a bearer token for the connected wallet account.
func (s *APIServer) handleAuthToken(c *fiber.Ctx) error {
	if s.cfg.JWTSecret == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "authentication not configured"})
	}

	state := s.session.State()
	if !state.Connected {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "wallet not connected"})
	}

	token, err := auth.GenerateJWT(s.cfg.JWTSecret, state.Account, s.cfg.JWTExpiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"token": token, "account": state.Account})
}
