package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/elections/internal/service/results"
)

// GetResultsByArea serves both the area listing and the single area routes.
func (c *Controller) GetResultsByArea(ctx echo.Context) error {
	res, err := c.service.ResultsByArea(ctx.Request().Context(), results.AreaQuery{
		EventType: ctx.Param("event_type"),
		Year:      ctx.Param("year"),
		Area:      ctx.Param("area"),
		AreaID:    ctx.Param("area_id"),
		Query:     ctx.QueryParams(),
		BaseURL:   c.base(ctx),
		Path:      ctx.Request().URL.Path,
	})
	if err != nil {
		return err
	}

	if res.Page != nil {
		return ctx.JSON(http.StatusOK, res.Page)
	}
	return ctx.JSON(http.StatusOK, res.Record)
}
