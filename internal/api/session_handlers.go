package api

import (
	"github.com/gofiber/fiber/v2"
)

func (s *APIServer) handleSessionState(c *fiber.Ctx) error {
	return c.JSON(s.session.State())
}

func (s *APIServer) handleConnect(c *fiber.Ctx) error {
	if err := s.session.Connect(c.Context()); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(s.session.State())
}

func (s *APIServer) handleDisconnect(c *fiber.Ctx) error {
	s.session.Disconnect()
	return c.JSON(s.session.State())
}

type switchNetworkRequest struct {
	ChainID uint64 `json:"chain_id"`
}

func (s *APIServer) handleSwitchNetwork(c *fiber.Ctx) error {
	var req switchNetworkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := s.session.SwitchNetwork(c.Context(), req.ChainID); err != nil {
		return errorJSON(c, err)
	}
	// The chain field follows the wallet's chain-changed event, so the state
	// returned here may still show the previous network.
	return c.JSON(s.session.State())
}

func (s *APIServer) handleRefresh(c *fiber.Ctx) error {
	if err := s.session.Refresh(c.Context()); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(s.session.State())
}
