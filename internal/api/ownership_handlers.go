package api

import (
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gofiber/fiber/v2"

	"github.com/finsterfurz/coinestateV2/internal/services"
	"github.com/finsterfurz/coinestateV2/internal/utils"
)

type receiptResponse struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
	GasUsed     uint64 `json:"gas_used"`
}

func newReceiptResponse(receipt *types.Receipt) receiptResponse {
	resp := receiptResponse{
		TxHash:  receipt.TxHash.Hex(),
		GasUsed: receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		resp.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return resp
}

func (s *APIServer) handleQuote(c *fiber.Ctx) error {
	quantity := c.QueryInt("quantity", 1)
	quote, err := s.session.Quote(c.Context(), quantity)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(quote)
}

func (s *APIServer) handleInfo(c *fiber.Ctx) error {
	info, err := s.session.Info(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(info)
}

func (s *APIServer) handlePendingProfits(c *fiber.Ctx) error {
	pending, err := s.session.PendingProfits(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"pending_wei": pending.String(),
		"formatted":   utils.FormatEther(pending),
	})
}

func (s *APIServer) handlePurchase(c *fiber.Ctx) error {
	var req services.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	receipt, err := s.session.Purchase(c.Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"receipt": newReceiptResponse(receipt),
		"session": s.session.State(),
	})
}

func (s *APIServer) handleVote(c *fiber.Ctx) error {
	var req services.VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	receipt, err := s.session.Vote(c.Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"receipt": newReceiptResponse(receipt)})
}

func (s *APIServer) handleClaimProfits(c *fiber.Ctx) error {
	receipt, err := s.session.ClaimProfits(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"receipt": newReceiptResponse(receipt)})
}
