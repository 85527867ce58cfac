package fee

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/sahilchouksey/school-intake/services"
	"github.com/sahilchouksey/school-intake/utils"
	"github.com/sahilchouksey/school-intake/utils/response"
)

// FeeHandler handles fee payment submissions
type FeeHandler struct {
	service *services.FeeService
}

// NewFeeHandler creates a new fee handler
func NewFeeHandler(service *services.FeeService) *FeeHandler {
	return &FeeHandler{service: service}
}

// SubmitFee handles POST /api/fees
func (h *FeeHandler) SubmitFee(c *fiber.Ctx) error {
	var req services.FeeRequest
	if err := utils.ParseJSONBody(c, &req); err != nil {
		log.Debugf("fee body rejected: %v", err)
		return response.BadRequest(c, response.MsgInvalidBody)
	}

	fee, err := h.service.Submit(c.UserContext(), req)
	switch {
	case errors.Is(err, services.ErrMissingFields):
		log.Debugf("fee rejected: %v", err)
		return response.BadRequest(c, response.MsgMissingFields)
	case errors.Is(err, services.ErrInvalidAmount):
		return response.BadRequest(c, response.MsgInvalidAmount)
	case err != nil:
		return err
	}

	return response.Created(c, fee.ID)
}
