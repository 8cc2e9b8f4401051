package apiv1

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"event-staffing-bff/controllers"
	authhandler "event-staffing-bff/lib/auth"
	profilehandler "event-staffing-bff/lib/profile"
	"event-staffing-bff/middleware"
	apimodels "event-staffing-bff/models/api"
	authapimodels "event-staffing-bff/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Post("signin", controller.signIn)
		router.Post("signup", controller.signUp)
		router.Post("signout", controller.signOut)
		router.Use(middleware.AuthorizationRequired()).Use(middleware.WithUserSession())
		router.Get("profile", controller.ownProfile)
		router.Get("profile/:id", controller.profile)
	})
}

// @Summary Sign in
// @Tags Users
// @Description Sign in with username and password
// @Param	body				body		authapimodels.SignInRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/signin [post]
func (c *authApiController) signIn(ctx *fiber.Ctx) error {
	var payload authapimodels.SignInRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.SignIn(ctx.Context(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "sign in failed")
	}
	setAuthCookies(ctx, resp)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Sign up
// @Tags Users
// @Description Register a new worker or recruiter account
// @Param	body				body		authapimodels.SignUpRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.SignUpResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/signup [post]
func (c *authApiController) signUp(ctx *fiber.Ctx) error {
	var payload authapimodels.SignUpRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.SignUp(ctx.Context(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "sign up failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Sign out
// @Tags Users
// @Description Drop the auth cookies
// @Success 200 {object} apimodels.Response
// @router /api/v1/users/signout [post]
func (c *authApiController) signOut(ctx *fiber.Ctx) error {
	expireAuthCookies(ctx)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Own profile
// @Tags Users
// @Description Worker profile of the current user
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileData}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/profile [get]
func (c *authApiController) ownProfile(ctx *fiber.Ctx) error {
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	resp, err := profilehandler.Instance.Get(ctx.Context(), session, token, 0)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to load profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary User profile
// @Tags Users
// @Description Worker profile by user id, recruiters and HR managers only
// @Param	id					path		int	true	"user id"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileData}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/profile/{id} [get]
func (c *authApiController) profile(ctx *fiber.Ctx) error {
	userID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("invalid user id"))
	}
	session := middleware.GetUserSession(ctx)
	token := middleware.GetAccessToken(ctx)
	resp, err := profilehandler.Instance.Get(ctx.Context(), session, token, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "unable to load profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func setAuthCookies(ctx *fiber.Ctx, resp *authapimodels.JWTResponse) {
	ctx.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    resp.AccessToken,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	if resp.RefreshToken != "" {
		ctx.Cookie(&fiber.Cookie{
			Name:     "refresh_token",
			Value:    resp.RefreshToken,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
}

func expireAuthCookies(ctx *fiber.Ctx) {
	for _, name := range []string{"access_token", "refresh_token"} {
		ctx.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
}
