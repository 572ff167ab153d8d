package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cnam2653/canvas-assignment-calendar/core"
	"github.com/cnam2653/canvas-assignment-calendar/core/course"
	"github.com/cnam2653/canvas-assignment-calendar/core/credential"
)

type courseApi struct {
	service *course.Service
	creds   credential.Repository
}

func registerCourseAPI(app *echo.Echo, opts *Options) {
	api := courseApi{service: opts.CourseSvc, creds: opts.CredentialRepo}

	// The user is identified by the `uid` query parameter only; a bearer
	// Authorization header at this boundary is not supported.
	app.GET("/courses", api.coursesList)
	app.POST("/api/save-token", api.saveToken)
}

type (
	// CoursesRequest identifies whose courses to aggregate.
	CoursesRequest struct {
		UID string `query:"uid" json:"uid" validate:"required,alphanum_"`
	}

	// SaveTokenRequest stores a user's Canvas access token.
	SaveTokenRequest struct {
		UID   string `json:"uid" validate:"required,alphanum_"`
		Token string `json:"token" validate:"required"`
	}
)

func (r *CoursesRequest) Validate() error {
	r.UID = core.CleanString(r.UID)
	return core.Validate.Struct(r)
}

func (r *SaveTokenRequest) Validate() error {
	r.UID = core.CleanString(r.UID)
	r.Token = core.CleanString(r.Token)
	return core.Validate.Struct(r)
}

// Handlers

func (api *courseApi) coursesList(ctx echo.Context) error {
	data := new(CoursesRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	res, err := api.service.GetCourses(ctx.Request().Context(), data.UID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *courseApi) saveToken(ctx echo.Context) error {
	data := new(SaveTokenRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.creds.SaveToken(data.UID, data.Token); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusOK)
}
