package helpers

import (
	"errors"
	"math"

	"github.com/hidogang/chipkuold-sub000/services"

	"github.com/gofiber/fiber/v2"
)

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// JSONEngineError maps engine failure kinds onto stable response codes.
func JSONEngineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return JSONError(c, "NOT_FOUND")
	case errors.Is(err, services.ErrInsufficientFunds):
		return JSONError(c, "INSUFFICIENT_FUNDS")
	case errors.Is(err, services.ErrInsufficientResources):
		return JSONError(c, "INSUFFICIENT_RESOURCES")
	case errors.Is(err, services.ErrAlreadyClaimed):
		return JSONError(c, "ALREADY_CLAIMED")
	case errors.Is(err, services.ErrNoBoxesAvailable):
		return JSONError(c, "NO_BOXES_AVAILABLE")
	case errors.Is(err, services.ErrNoSpinsAvailable):
		return JSONError(c, "NO_SPINS_AVAILABLE")
	case errors.Is(err, services.ErrInvalidConfiguration):
		return JSONError(c, "INVALID_REQUEST")
	case errors.Is(err, services.ErrConflict):
		return JSONError(c, "CONFLICT")
	}
	return JSONError(c, "INTERNAL_ERROR")
}

func FormatFloat(num float64, precision int) float64 {
	pow := math.Pow(10, float64(precision))
	return math.Round(num*pow) / pow
}
