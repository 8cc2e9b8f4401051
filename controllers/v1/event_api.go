package apiv1

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"event-staffing-bff/controllers"
	eventhandler "event-staffing-bff/lib/event"
	xlsexport "event-staffing-bff/lib/export/xls"
	gpthandler "event-staffing-bff/lib/gpt"
	"event-staffing-bff/middleware"
	apimodels "event-staffing-bff/models/api"
	eventapimodels "event-staffing-bff/models/api/event"
	gptapimodels "event-staffing-bff/models/api/gpt"
)

type eventApiController struct {
	controllers.BaseAPIController
}

func InitEventApiRouters(app *fiber.App) {
	controller := eventApiController{}
	app.Route("/", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Use(middleware.EventManagerRequired())
		router.Post("", controller.create)
		router.Post("generate_description", controller.generateDescription)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("worker_status", controller.changeWorkerStatus)
			idRoute.Post("feedback", controller.feedback)
			idRoute.Get("roster", controller.rosterExport)
		})
	})
}

// @Summary My events
// @Tags Events
// @Description Events of the current user, with the worker status for workers
// @Success 200 {object} apimodels.Response{data=[]eventapimodels.MyEvent}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/events [get]
func (c *eventApiController) list(ctx *fiber.Ctx) error {
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	resp, err := eventhandler.Instance.MyEvents(ctx.Context(), session, token)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to load events")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create event
// @Tags Events
// @Description Create an event with job openings, recruiters and HR managers only
// @Param	body				body		eventapimodels.EventForm	true	"request body"
// @Success 200 {object} apimodels.Response{data=eventapimodels.DetailedEvent}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/events [post]
func (c *eventApiController) create(ctx *fiber.Ctx) error {
	var payload eventapimodels.EventForm
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	resp, err := eventhandler.Instance.Create(ctx.Context(), session, token, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to create event")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Event page
// @Tags Events
// @Description Detailed event with sorted workers and per-job counts
// @Param	id					path		int	true	"event id"
// @Success 200 {object} apimodels.Response{data=eventapimodels.EventView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/events/{id} [get]
func (c *eventApiController) get(ctx *fiber.Ctx) error {
	eventID, err := eventIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	resp, err := eventhandler.Instance.Get(ctx.Context(), session, token, eventID, false)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to load event")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update event
// @Tags Events
// @Description Update an event, recruiters and HR managers only
// @Param	id					path		int	true	"event id"
// @Param	body				body		eventapimodels.EventForm	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/events/{id} [put]
func (c *eventApiController) update(ctx *fiber.Ctx) error {
	eventID, err := eventIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload eventapimodels.EventForm
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	if err = eventhandler.Instance.Update(ctx.Context(), session, token, eventID, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to update event")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete event
// @Tags Events
// @Description Delete an event, recruiters and HR managers only
// @Param	id					path		int	true	"event id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/events/{id} [delete]
func (c *eventApiController) delete(ctx *fiber.Ctx) error {
	eventID, err := eventIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	if err = eventhandler.Instance.Delete(ctx.Context(), session, token, eventID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to delete event")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change worker status
// @Tags Events
// @Description Approve a worker or move them to the backup list
// @Param	id					path		int	true	"event id"
// @Param	body				body		eventapimodels.ChangeStatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=eventapimodels.StatusChangeConfirmation}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/events/{id}/worker_status [put]
func (c *eventApiController) changeWorkerStatus(ctx *fiber.Ctx) error {
	eventID, err := eventIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload eventapimodels.ChangeStatusRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload.EventID = eventID
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	confirmation, view, err := eventhandler.Instance.ChangeWorkerStatus(ctx.Context(), session, token, payload.WorkerName, payload.AssignRequest)
	if err != nil {
		if errors.Is(err, eventhandler.ErrChangeInFlight) {
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to change worker status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{
		"confirmation": confirmation,
		"event":        view,
	}))
}

// @Summary Rate worker
// @Tags Events
// @Description Leave a rating or a review for a worker after the event
// @Param	id					path		int	true	"event id"
// @Param	body				body		eventapimodels.FeedbackRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=eventapimodels.EventView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/events/{id}/feedback [post]
func (c *eventApiController) feedback(ctx *fiber.Ctx) error {
	eventID, err := eventIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload eventapimodels.FeedbackRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload.EventID = eventID
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	resp, err := eventhandler.Instance.RateWorker(ctx.Context(), session, token, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to save worker feedback")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Generate event description
// @Tags Events
// @Description Generate a professional event description from a free-form prompt
// @Param	body				body		gptapimodels.GenerateDescriptionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=gptapimodels.GenerateDescriptionResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/events/generate_description [post]
func (c *eventApiController) generateDescription(ctx *fiber.Ctx) error {
	var payload gptapimodels.GenerateDescriptionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := gpthandler.Instance.GenerateEventDescription(ctx.Context(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to generate event description")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Export roster to Excel
// @Tags Events
// @Description Worker roster of one event as an xlsx file
// @Param	id					path		int	true	"event id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/events/{id}/roster [get]
func (c *eventApiController) rosterExport(ctx *fiber.Ctx) error {
	eventID, err := eventIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	view, err := eventhandler.Instance.Get(ctx.Context(), session, token, eventID, true)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to load event for export")
	}
	data, err := xlsexport.Instance.ExportEventRoster(*view)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to export roster")
	}
	fileName := fmt.Sprintf("roster-%v-%v.xlsx", eventID, time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

func eventIDParam(ctx *fiber.Ctx) (int64, error) {
	eventID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || eventID <= 0 {
		return 0, fmt.Errorf("invalid event id")
	}
	return eventID, nil
}
