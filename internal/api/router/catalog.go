package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/DjordjeVuckovic/course-graph/internal/apperr"
	"github.com/DjordjeVuckovic/course-graph/internal/catalog"
	"github.com/DjordjeVuckovic/course-graph/internal/prereq"
	"github.com/DjordjeVuckovic/course-graph/internal/storage"
	"github.com/DjordjeVuckovic/course-graph/internal/token"
	"github.com/labstack/echo/v4"
)

type CatalogRouter struct {
	e      *echo.Echo
	reader storage.CatalogReader
	parser *prereq.Parser
}

func NewCatalogRouter(e *echo.Echo, reader storage.CatalogReader) *CatalogRouter {
	return &CatalogRouter{
		e:      e,
		reader: reader,
		parser: prereq.NewParser(),
	}
}

func (r *CatalogRouter) Bind() {
	r.e.GET("/courses", r.coursesHandler)
	r.e.GET("/courses/:id", r.courseHandler)
	r.e.GET("/graph", r.graphHandler)
	r.e.POST("/parse", r.parseHandler)
}

type ParseRequest struct {
	Prerequisites string `json:"prerequisites"`
}

type ParseResponse struct {
	PrereqTree prereq.Node `json:"prereqTree"`
	Prereqs    []string    `json:"prereqs"`
	Leaves     int         `json:"leaves"`
	Depth      int         `json:"depth"`
	Warning    string      `json:"warning,omitempty"`
}

func (r *CatalogRouter) load(c echo.Context) (catalog.Catalog, error) {
	cat, err := r.reader.Load(c.Request().Context())
	if err != nil {
		if errors.Is(err, storage.ErrNoSnapshot) {
			return nil, apperr.NewNotFound("catalog", "")
		}
		return nil, err
	}
	return cat, nil
}

func (r *CatalogRouter) coursesHandler(c echo.Context) error {
	cat, err := r.load(c)
	if err != nil {
		return err
	}

	if semester := c.QueryParam("semester"); semester != "" {
		cat = cat.InSemester(semester)
	}

	return c.JSON(http.StatusOK, cat)
}

func (r *CatalogRouter) courseHandler(c echo.Context) error {
	id := c.Param("id")
	if !token.IsCourseID(id) {
		return apperr.NewValidation("course id must be 8 digits")
	}

	cat, err := r.load(c)
	if err != nil {
		return err
	}

	entry, ok := cat[id]
	if !ok {
		return apperr.NewNotFound("course", id)
	}
	return c.JSON(http.StatusOK, entry)
}

func (r *CatalogRouter) graphHandler(c echo.Context) error {
	cat, err := r.load(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catalog.BuildGraph(cat))
}

func (r *CatalogRouter) parseHandler(c echo.Context) error {
	var req ParseRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if strings.TrimSpace(req.Prerequisites) == "" {
		return apperr.NewValidation("prerequisites is required")
	}

	a, err := r.parser.Analyze(req.Prerequisites)
	resp := ParseResponse{
		PrereqTree: a.Tree,
		Prereqs:    prereq.References(a.Tree),
		Leaves:     a.Leaves,
		Depth:      a.Depth,
	}
	switch {
	case err != nil:
		resp.Warning = err.Error()
	case a.Irregular != nil:
		resp.Warning = a.Irregular.Error()
	}

	return c.JSON(http.StatusOK, resp)
}
