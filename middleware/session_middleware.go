package middleware

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	authhandler "event-staffing-bff/lib/auth"
	"event-staffing-bff/models"
	apimodels "event-staffing-bff/models/api"
)

const (
	sessionLocalKey = "user_session"
	tokenLocalKey   = "access_token"
)

// WithUserSession decodes the verified access token once per request into a
// typed session and registers it for the notification poll worker.
func WithUserSession() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := ctx.Cookies("access_token")
		session, err := authhandler.Instance.DecodeSession(token)
		if err != nil {
			log.WithError(err).Warn("failed to decode session from token")
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("authentication required"))
		}
		ctx.Locals(sessionLocalKey, session)
		ctx.Locals(tokenLocalKey, token)
		authhandler.Sessions.Touch(session, token)
		return ctx.Next()
	}
}

func GetUserSession(ctx *fiber.Ctx) models.UserSession {
	session, _ := ctx.Locals(sessionLocalKey).(models.UserSession)
	return session
}

func GetAccessToken(ctx *fiber.Ctx) string {
	token, _ := ctx.Locals(tokenLocalKey).(string)
	return token
}
