package api

import (
	"github.com/gofiber/fiber/v2"
)

func (s *APIServer) handleNotifications(c *fiber.Ctx) error {
	return c.JSON(s.notifier.Recent())
}

func (s *APIServer) handleTransactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	account := c.Query("account")

	if account != "" {
		records, err := s.txs.ListByAccount(account, limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(records)
	}

	records, err := s.txs.List(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(records)
}
