package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetEventTypes(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.service.EventTypeLinks(c.base(ctx)))
}

func (c *Controller) GetYears(ctx echo.Context) error {
	links, err := c.service.YearLinks(ctx.Param("event_type"), c.base(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, links)
}

func (c *Controller) GetOverview(ctx echo.Context) error {
	overview, err := c.service.Overview(ctx.Request().Context(), ctx.Param("event_type"), ctx.Param("year"), c.base(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, overview)
}
