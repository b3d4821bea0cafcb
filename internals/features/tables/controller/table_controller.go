package controller

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/features/tables/service"
	helper "coachingku_backend/internals/helpers"
	"coachingku_backend/internals/logger"
	"coachingku_backend/internals/tabular"
)

type TableController struct {
	Svc *service.TableService
}

func NewTableController(svc *service.TableService) *TableController {
	return &TableController{Svc: svc}
}

// GET /api/tables
func (ctl *TableController) ListTables(c *fiber.Ctx) error {
	names, err := ctl.Svc.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, helper.StatusForError(err), "Error fetching table list: "+err.Error())
	}
	return helper.JsonList(c, "ok", names, fiber.Map{"total": len(names)})
}

// GET /api/tables/:table/rows?q=&page=&per_page=
func (ctl *TableController) Rows(c *fiber.Ctx) error {
	name := c.Params("table")
	t, err := ctl.Svc.Filtered(c.UserContext(), name, c.Query("q"))
	if err != nil {
		return ctl.exportError(c, name, err)
	}

	pg := helper.ParseFiber(c, helper.BrowseOpts)
	from, to := pg.Window(t.Len())
	page := tabular.New(t.Columns, t.Rows[from:to])
	return helper.JsonList(c, "ok", page, helper.BuildMeta(int64(t.Len()), pg))
}

// GET /api/tables/:table/export.csv?q=
func (ctl *TableController) ExportCSV(c *fiber.Ctx) error {
	name := c.Params("table")
	t, err := ctl.Svc.Filtered(c.UserContext(), name, c.Query("q"))
	if err != nil {
		return ctl.exportError(c, name, err)
	}

	var buf bytes.Buffer
	if err := tabular.WriteCSV(&buf, t); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.csv"`, name))
	return c.Send(buf.Bytes())
}

// GET /api/tables/:table/export.xlsx?q=
func (ctl *TableController) ExportXLSX(c *fiber.Ctx) error {
	name := c.Params("table")
	t, err := ctl.Svc.Filtered(c.UserContext(), name, c.Query("q"))
	if err != nil {
		return ctl.exportError(c, name, err)
	}

	var buf bytes.Buffer
	if err := tabular.WriteXLSX(&buf, t, name); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.xlsx"`, name))
	return c.Send(buf.Bytes())
}

func (ctl *TableController) exportError(c *fiber.Ctx, name string, err error) error {
	logger.L.Warnw("table export failed", "table", name, "error", err)
	return helper.JsonError(c, helper.StatusForError(err), fmt.Sprintf("Error loading table `%s`: %v", name, err))
}
