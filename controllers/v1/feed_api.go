package apiv1

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"event-staffing-bff/controllers"
	feedhandler "event-staffing-bff/lib/feed"
	"event-staffing-bff/middleware"
	apimodels "event-staffing-bff/models/api"
	eventapimodels "event-staffing-bff/models/api/event"
)

type feedApiController struct {
	controllers.BaseAPIController
}

func InitFeedApiRouters(app *fiber.App) {
	controller := feedApiController{}
	app.Route("/", func(router fiber.Router) {
		router.Use(middleware.WorkerRequired())
		router.Get("", controller.feed)
		router.Post("apply", controller.apply)
		router.Get(":id/jobs", controller.availableJobs)
	})
}

// @Summary Events feed
// @Tags Feed
// @Description Upcoming events open for applications, workers only
// @Param	cities				query		string	false	"comma separated city filter"
// @Param	job_titles			query		string	false	"comma separated job title filter"
// @Success 200 {object} apimodels.Response{data=[]eventapimodels.MyEvent}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feed [get]
func (c *feedApiController) feed(ctx *fiber.Ctx) error {
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	cities := splitQueryList(ctx.Query("cities"))
	jobTitles := splitQueryList(ctx.Query("job_titles"))
	resp, err := feedhandler.Instance.Feed(ctx.Context(), session, token, cities, jobTitles)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to load events feed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Apply for a job
// @Tags Feed
// @Description Apply to one job opening of a feed event, workers only
// @Param	body				body		eventapimodels.ApplyRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feed/apply [post]
func (c *feedApiController) apply(ctx *fiber.Ctx) error {
	var payload eventapimodels.ApplyRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	if err := feedhandler.Instance.Apply(ctx.Context(), session, token, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to apply for the job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Jobs open for application
// @Tags Feed
// @Description Jobs of one feed event that still have openings
// @Param	id					path		int	true	"event id"
// @Success 200 {object} apimodels.Response{data=[]eventapimodels.Job}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feed/{id}/jobs [get]
func (c *feedApiController) availableJobs(ctx *fiber.Ctx) error {
	eventID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || eventID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("invalid event id"))
	}
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	list, err := feedhandler.Instance.Feed(ctx.Context(), session, token, nil, nil)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to load events feed")
	}
	for _, event := range list {
		if event.ID == eventID {
			return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(feedhandler.AvailableJobs(event)))
		}
	}
	return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("event is not in the feed"))
}

func splitQueryList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
