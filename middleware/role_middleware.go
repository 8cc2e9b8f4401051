package middleware

import (
	"github.com/gofiber/fiber/v2"

	apimodels "event-staffing-bff/models/api"
)

// EventManagerRequired guards event mutation and worker approval routes.
func EventManagerRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		session := GetUserSession(ctx)
		if !session.Role.CanManageEvents() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is not available for this role"))
		}
		return ctx.Next()
	}
}

// WorkerRequired guards the feed, only workers browse and apply.
func WorkerRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		session := GetUserSession(ctx)
		if !session.Role.IsWorker() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is not available for this role"))
		}
		return ctx.Next()
	}
}
