package controller

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/charts"
	"coachingku_backend/internals/configs"
	helper "coachingku_backend/internals/helpers"
	"coachingku_backend/internals/logger"
	"coachingku_backend/internals/page"
)

type PageController struct {
	Registry *page.Registry
}

func NewPageController(reg *page.Registry) *PageController {
	return &PageController{Registry: reg}
}

// GET /api/pages
func (ctl *PageController) Nav(c *fiber.Ctx) error {
	nav := ctl.Registry.Nav()
	return helper.JsonList(c, "ok", nav, fiber.Map{"total": len(nav)})
}

// GET /api/pages/:page
func (ctl *PageController) GetPage(c *fiber.Ctx) error {
	p, err := ctl.build(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", p)
}

// GET /pages/:page
func (ctl *PageController) RenderPage(c *fiber.Ctx) error {
	p, err := ctl.build(c)
	if err != nil {
		return err
	}
	return c.Render("page", fiber.Map{
		"Page":    p,
		"Nav":     ctl.Registry.Nav(),
		"Active":  p.Key,
		"Query":   c.Queries(),
		"AppName": configs.AppName,
	})
}

// GET /api/pages/:page/charts/:chart.png
func (ctl *PageController) ChartPNG(c *fiber.Ctx) error {
	p, err := ctl.build(c)
	if err != nil {
		return err
	}
	ch, ok := p.Chart(c.Params("chart"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Chart not found or has no data")
	}

	width := clamp(c.QueryInt("width", charts.DefaultWidth), 200, 2000)
	height := clamp(c.QueryInt("height", charts.DefaultHeight), 150, 1500)

	var buf bytes.Buffer
	if err := charts.Render(&buf, ch, width, height); err != nil {
		if errors.Is(err, charts.ErrEmpty) {
			return fiber.NewError(fiber.StatusNotFound, "Chart not found or has no data")
		}
		logger.L.Errorw("chart render failed", "page", p.Key, "chart", ch.Key, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Error rendering chart")
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.Send(buf.Bytes())
}

// build resolves :page and composes it with the query string as filter params.
func (ctl *PageController) build(c *fiber.Ctx) (*page.Page, error) {
	b, ok := ctl.Registry.Get(c.Params("page"))
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Page not found")
	}
	return b.Build(c.UserContext(), page.Params(c.Queries())), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
