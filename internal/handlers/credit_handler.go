package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-generator/internal/services"
)

type CreditHandler struct {
	credits services.CreditService
}

func NewCreditHandler(credits services.CreditService) *CreditHandler {
	return &CreditHandler{credits: credits}
}

// HandleGetCredits handles GET /credits
func (h *CreditHandler) HandleGetCredits(c *fiber.Ctx) error {
	resp, err := h.credits.GetCredits(c.UserContext(), ownerFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
