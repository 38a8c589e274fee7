package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	OwnerHeader = "X-User-ID"
	ownerKey    = "owner_id"
)

// RequireOwner resolves the calling owner from the X-User-ID header.
func RequireOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := uuid.Parse(c.Get(OwnerHeader))
		if err != nil || ownerID == uuid.Nil {
			return errorJSON(c, fiber.StatusUnauthorized, CodeUnauthorized, "missing or invalid "+OwnerHeader+" header")
		}
		c.Locals(ownerKey, ownerID)
		return c.Next()
	}
}

func ownerFrom(c *fiber.Ctx) uuid.UUID {
	ownerID, _ := c.Locals(ownerKey).(uuid.UUID)
	return ownerID
}

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	return id, err == nil
}
