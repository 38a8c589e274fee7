package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-generator/internal/models"
	"alfredoptarigan/interview-generator/internal/services"
)

type InterviewHandler struct {
	generator  services.GeneratorService
	interviews services.InterviewService
	feedback   services.FeedbackService
}

func NewInterviewHandler(
	generator services.GeneratorService,
	interviews services.InterviewService,
	feedback services.FeedbackService,
) *InterviewHandler {
	return &InterviewHandler{
		generator:  generator,
		interviews: interviews,
		feedback:   feedback,
	}
}

// HandleGenerate handles POST /interviews
func (h *InterviewHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeBadRequest, "invalid request payload")
	}

	resp, err := h.generator.GenerateInterview(c.UserContext(), ownerFrom(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// HandleGet handles GET /interviews/:id
func (h *InterviewHandler) HandleGet(c *fiber.Ctx) error {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, CodeBadRequest, "invalid interview ID format")
	}

	resp, err := h.interviews.GetInterview(c.UserContext(), ownerFrom(c), sessionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// HandleFeedback handles GET /interviews/:id/feedback
func (h *InterviewHandler) HandleFeedback(c *fiber.Ctx) error {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, CodeBadRequest, "invalid interview ID format")
	}

	resp, err := h.feedback.GetInterviewFeedback(c.UserContext(), ownerFrom(c), sessionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
