package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/getgradient/gradient/core/peer"
)

type peerApi struct {
	deps *ServerDeps
}

func registerPeerAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps *ServerDeps) {
	api := peerApi{deps: deps}

	pg := g.Group("/peers", jwt)
	pg.GET("", api.query)
	pg.POST("", api.create)
	pg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *peerApi) query(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	peers, err := api.deps.PeerSvc.Query(ctx.Request().Context(), usr.ID)
	if err != nil {
		return errors.Wrap(err, "querying peers")
	}
	if peers == nil {
		peers = []peer.Peer{}
	}
	return ctx.JSON(http.StatusOK, peers)
}

func (api *peerApi) create(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var data peer.NewPeer
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPeer")
	}
	if err = data.Validate(api.deps.Validate); err != nil {
		return err
	}

	p, err := api.deps.PeerSvc.Create(ctx.Request().Context(), usr.ID, data)
	if err != nil {
		return errors.Wrap(err, "creating peer")
	}
	return ctx.JSON(http.StatusCreated, p)
}

func (api *peerApi) destroy(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	if err = api.deps.PeerSvc.Delete(ctx.Request().Context(), usr.ID, ctx.Param("id")); err != nil {
		if errors.Cause(err) == peer.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting peer")
	}
	return ctx.NoContent(http.StatusNoContent)
}
