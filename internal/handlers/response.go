package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-generator/internal/models"
	"alfredoptarigan/interview-generator/internal/services"
)

const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL"
)

func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Error: models.ErrorBody{Code: code, Message: message},
	})
}

// respondError maps a service error onto the HTTP error envelope. Wrapped
// causes are only shown for validation failures.
func respondError(c *fiber.Ctx, err error) error {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, "internal server error")
	}

	switch svcErr.Kind {
	case services.KindValidation:
		message := svcErr.Message
		if svcErr.Err != nil {
			message = fmt.Sprintf("%s: %v", svcErr.Message, svcErr.Err)
		}
		return errorJSON(c, fiber.StatusBadRequest, CodeBadRequest, message)
	case services.KindBadState:
		return errorJSON(c, fiber.StatusBadRequest, CodeBadRequest, svcErr.Message)
	case services.KindNotFound:
		return errorJSON(c, fiber.StatusNotFound, CodeNotFound, svcErr.Message)
	case services.KindForbidden:
		return errorJSON(c, fiber.StatusForbidden, CodeForbidden, svcErr.Message)
	default:
		return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, svcErr.Message)
	}
}

// ErrorHandler renders errors that escape the route handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := CodeInternal
		switch {
		case fiberErr.Code == fiber.StatusNotFound:
			code = CodeNotFound
		case fiberErr.Code < fiber.StatusInternalServerError:
			code = CodeBadRequest
		}
		return errorJSON(c, fiberErr.Code, code, fiberErr.Message)
	}
	return respondError(c, err)
}
