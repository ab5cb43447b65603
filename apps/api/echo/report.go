package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/getgradient/gradient/core/session"
)

type reportApi struct {
	deps *ServerDeps
}

func registerReportAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps *ServerDeps) {
	api := reportApi{deps: deps}

	rg := g.Group("/transcript", jwt)
	rg.GET("/html", api.html)
	rg.GET("/xlsx", api.xlsx)
	rg.POST("/email", api.email)
}

func (api *reportApi) session(ctx echo.Context) (session.Session, error) {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return session.Session{}, errors.Wrap(err, "getting context user")
	}
	sess, err := api.deps.SessionSvc.Get(ctx.Request().Context(), usr.ID)
	if err != nil {
		if errors.Cause(err) == session.ErrNotFound {
			return session.Session{}, errHttpNotFound
		}
		return session.Session{}, errors.Wrap(err, "getting session")
	}
	return sess, nil
}

// Handlers

func (api *reportApi) html(ctx echo.Context) error {
	sess, err := api.session(ctx)
	if err != nil {
		return err
	}

	out, err := api.deps.ReportSvc.HTML(sess)
	if err != nil {
		return errors.Wrap(err, "rendering transcript")
	}
	return ctx.HTMLBlob(http.StatusOK, out)
}

func (api *reportApi) xlsx(ctx echo.Context) error {
	sess, err := api.session(ctx)
	if err != nil {
		return err
	}

	buff, err := api.deps.ReportSvc.XLSX(sess)
	if err != nil {
		return errors.Wrap(err, "rendering workbook")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="transcript.xlsx"`)
	return ctx.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buff.Bytes())
}

func (api *reportApi) email(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	sess, err := api.session(ctx)
	if err != nil {
		return err
	}

	if err = api.deps.ReportSvc.Email(usr, sess); err != nil {
		return errors.Wrap(err, "emailing transcript")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Your transcript is on its way to your inbox."})
}
