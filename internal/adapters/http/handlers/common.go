package handlers

import (
	"errors"
	"log"
	"strconv"

	"ems-gateway/internal/adapters/upstream"
	"ems-gateway/internal/core/domain"
	"ems-gateway/internal/core/services"
	"ems-gateway/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// relayError maps service and upstream failures onto panel responses.
// Upstream statuses pass through unchanged so the panel can show the
// inline message as-is; transport failures become 502s. Nothing is
// retried.
func relayError(c *fiber.Ctx, err error) error {
	var httpErr *upstream.HTTPError
	switch {
	case errors.Is(err, services.ErrMissingField):
		return response.BadRequest(c, "Required field missing")
	case errors.Is(err, services.ErrInvalidDateRange):
		return response.BadRequest(c, "End date is before start date")
	case errors.Is(err, services.ErrInvalidLeaveStatus),
		errors.Is(err, services.ErrInvalidCandidateStatus):
		return response.BadRequest(c, err.Error())
	case errors.As(err, &httpErr):
		return response.Upstream(c, httpErr.Status, httpErr.Message)
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		log.Printf("⚠️ Upstream unavailable: %v", err)
		return response.BadGateway(c, "Employee API is unreachable")
	default:
		log.Printf("❌ Unexpected error: %v", err)
		return response.InternalServerError(c, "Something went wrong")
	}
}

// paramID parses the :id route parameter
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
