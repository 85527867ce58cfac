package admission

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/sahilchouksey/school-intake/services"
	"github.com/sahilchouksey/school-intake/utils"
	"github.com/sahilchouksey/school-intake/utils/response"
)

// AdmissionHandler handles admission submissions
type AdmissionHandler struct {
	service *services.AdmissionService
}

// NewAdmissionHandler creates a new admission handler
func NewAdmissionHandler(service *services.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{service: service}
}

// SubmitAdmission handles POST /api/admissions
func (h *AdmissionHandler) SubmitAdmission(c *fiber.Ctx) error {
	var req services.AdmissionRequest
	if err := utils.ParseJSONBody(c, &req); err != nil {
		log.Debugf("admission body rejected: %v", err)
		return response.BadRequest(c, response.MsgInvalidBody)
	}

	admission, err := h.service.Submit(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			log.Debugf("admission rejected: %v", err)
			return response.BadRequest(c, response.MsgMissingFields)
		}
		return err
	}

	return response.Created(c, admission.ID)
}
