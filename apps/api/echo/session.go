package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/getgradient/gradient/core/session"
)

type sessionApi struct {
	deps *ServerDeps
}

func registerSessionAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps *ServerDeps) {
	api := sessionApi{deps: deps}

	sg := g.Group("/session", jwt)
	sg.GET("", api.retrieve)
	sg.POST("", api.save)
	sg.DELETE("", api.destroy)
}

// Handlers

func (api *sessionApi) retrieve(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	sess, err := api.deps.SessionSvc.Get(ctx.Request().Context(), usr.ID)
	if err != nil {
		if errors.Cause(err) == session.ErrNotFound {
			return ctx.JSON(http.StatusOK, nil)
		}
		return errors.Wrap(err, "getting session")
	}
	return ctx.JSON(http.StatusOK, sess)
}

// save replaces the user's gradebook; GPAs and the CGPA come back recomputed.
func (api *sessionApi) save(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var data session.SaveSession
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SaveSession")
	}
	if err = data.Validate(api.deps.Validate); err != nil {
		return err
	}

	sess, res, err := api.deps.SessionSvc.Save(ctx.Request().Context(), usr.ID, data)
	if err != nil {
		return errors.Wrap(err, "saving session")
	}
	return ctx.JSON(http.StatusOK, SaveSessionResponse{Session: sess, Warnings: res.Warnings})
}

func (api *sessionApi) destroy(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	if err = api.deps.SessionSvc.Delete(ctx.Request().Context(), usr.ID); err != nil {
		return errors.Wrap(err, "deleting session")
	}
	return ctx.NoContent(http.StatusNoContent)
}

type SaveSessionResponse struct {
	session.Session
	Warnings []string `json:"warnings,omitempty"`
}
