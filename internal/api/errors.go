package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/finsterfurz/coinestateV2/internal/services"
)

// statusFor maps session errors to HTTP statuses. Chain-level failures are
// upstream errors, precondition violations are client errors.
func statusFor(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrWalletNotFound):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, services.ErrNotConnected),
		errors.Is(err, services.ErrContractNotDeployed),
		errors.Is(err, services.ErrAlreadyVoted):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrNoVotingPower):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrUnsupportedNetwork),
		errors.Is(err, services.ErrNetworkNotRegistered):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrNetworkSwitchRejected),
		errors.Is(err, services.ErrPurchaseFailed),
		errors.Is(err, services.ErrVoteFailed),
		errors.Is(err, services.ErrClaimFailed),
		errors.Is(err, services.ErrRefreshFailed):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
}
