package controller

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/elections/internal/service/results"
)

type Controller struct {
	service *results.Service
	baseURL string
}

// NewController creates a Controller. An empty baseURL makes links relative to
// the host each request was addressed to.
func NewController(service *results.Service, baseURL string) *Controller {
	return &Controller{service: service, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *Controller) base(ctx echo.Context) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return ctx.Scheme() + "://" + ctx.Request().Host
}
