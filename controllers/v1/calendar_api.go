package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"event-staffing-bff/controllers"
	calendarhandler "event-staffing-bff/lib/calendar"
	"event-staffing-bff/middleware"
	apimodels "event-staffing-bff/models/api"
)

type calendarApiController struct {
	controllers.BaseAPIController
}

func InitCalendarApiRouters(app *fiber.App) {
	controller := calendarApiController{}
	app.Route("/", func(router fiber.Router) {
		router.Get("", controller.month)
	})
}

// @Summary Calendar month
// @Tags Calendar
// @Description 42-cell month grid with the user's events placed on their days
// @Param	year				query		int	false	"year, defaults to the current one"
// @Param	month				query		int	false	"month 1-12, defaults to the current one"
// @Success 200 {object} apimodels.Response{data=calendarapimodels.MonthResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/calendar [get]
func (c *calendarApiController) month(ctx *fiber.Ctx) error {
	now := time.Now()
	year := ctx.QueryInt("year", now.Year())
	month := ctx.QueryInt("month", int(now.Month()))
	if year < 1970 || year > 2100 || month < 1 || month > 12 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("invalid year or month"))
	}
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	resp, err := calendarhandler.Instance.Month(ctx.Context(), session, token, year, time.Month(month))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to build calendar")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
