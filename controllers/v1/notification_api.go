package apiv1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"event-staffing-bff/controllers"
	notificationhandler "event-staffing-bff/lib/notification"
	approvalhandler "event-staffing-bff/lib/notification/approval"
	"event-staffing-bff/middleware"
	apimodels "event-staffing-bff/models/api"
	notificationapimodels "event-staffing-bff/models/api/notification"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("/", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Put("mark_read", controller.markRead)
		router.Put("mark_all_read", controller.markAllRead)
		router.Get("approval", controller.approvalPrompt)
		router.Put("approval/:id", controller.resolveApproval)
	})
}

// @Summary Notifications
// @Tags Notifications
// @Description Notifications of the current user with the unread count
// @Param	force				query		bool	false	"bypass the cache"
// @Success 200 {object} apimodels.Response{data=notificationapimodels.ListResponse}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	force := ctx.QueryBool("force")
	list, err := notificationhandler.Instance.List(ctx.Context(), session, token, force)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to load notifications")
	}
	resp := notificationapimodels.ListResponse{
		Notifications: list,
		UnreadCount:   notificationhandler.UnreadCount(list),
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Mark notifications read
// @Tags Notifications
// @Description Mark the listed notifications as read
// @Param	body				body		notificationapimodels.MarkReadRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/mark_read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	var payload notificationapimodels.MarkReadRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	if err := notificationhandler.Instance.MarkRead(ctx.Context(), session, token, payload.NotificationIDs); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to mark notifications read")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Mark all notifications read
// @Tags Notifications
// @Description Mark every unread notification read, approval prompts stay
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/mark_all_read [put]
func (c *notificationApiController) markAllRead(ctx *fiber.Ctx) error {
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	if err := notificationhandler.Instance.MarkAllRead(ctx.Context(), session, token); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to mark notifications read")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Approval prompt
// @Tags Notifications
// @Description The single approval prompt open for the current user, if any
// @Success 200 {object} apimodels.Response{data=notificationapimodels.ApprovalPrompt}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/approval [get]
func (c *notificationApiController) approvalPrompt(ctx *fiber.Ctx) error {
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	resp, err := approvalhandler.Instance.Next(ctx.Context(), session, token)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to load approval prompt")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

type resolveApprovalRequest struct {
	Decision notificationapimodels.Decision `json:"decision"`
}

// @Summary Resolve approval prompt
// @Tags Notifications
// @Description Approve, deny or dismiss the open approval prompt
// @Param	id					path		int	true	"notification id"
// @Param	body				body		resolveApprovalRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=notificationapimodels.ResolveResult}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/approval/{id} [put]
func (c *notificationApiController) resolveApproval(ctx *fiber.Ctx) error {
	notificationID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || notificationID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("invalid notification id"))
	}
	var payload resolveApprovalRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Decision.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	resp, err := approvalhandler.Instance.Resolve(ctx.Context(), session, token, notificationID, payload.Decision)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to resolve approval prompt")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
