package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/climate-solutions/solutions-backend/internal/catalog"
)

type projectForm struct {
	ID                int    `form:"id"`
	Title             string `form:"title"`
	FeatureImgURL     string `form:"featureImgUrl"`
	SummaryShort      string `form:"summaryShort"`
	IntroShort        string `form:"introShort"`
	Impact            string `form:"impact"`
	OriginalSourceURL string `form:"originalSourceUrl"`
	SectorID          int    `form:"sectorId"`
}

func (f projectForm) fields() catalog.ProjectFields {
	return catalog.ProjectFields{
		Title:             f.Title,
		FeatureImgURL:     f.FeatureImgURL,
		SummaryShort:      f.SummaryShort,
		IntroShort:        f.IntroShort,
		Impact:            f.Impact,
		OriginalSourceURL: f.OriginalSourceURL,
		SectorID:          f.SectorID,
	}
}

func (h *Handler) addProjectForm(c *gin.Context) {
	sectors, err := h.catalog.AllSectors(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "addProject", gin.H{"Sectors": sectors})
}

func (h *Handler) addProject(c *gin.Context) {
	var form projectForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, err)
		return
	}

	if err := h.catalog.AddProject(c.Request.Context(), form.fields()); err != nil {
		h.log.Warn("add project failed", zap.Error(err))
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/solutions/projects")
}

func (h *Handler) editProjectForm(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		project *catalog.EnrichedProject
		sectors []catalog.Sector
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		project, err = h.catalog.ProjectByID(gctx, c.Param("id"))
		return err
	})
	g.Go(func() error {
		var err error
		sectors, err = h.catalog.AllSectors(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		h.render(c, http.StatusNotFound, "404", gin.H{
			"Message": "We couldn't find that project.",
		})
		return
	}

	h.render(c, http.StatusOK, "editProject", gin.H{
		"Project": project,
		"Sectors": sectors,
	})
}

func (h *Handler) editProject(c *gin.Context) {
	var form projectForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, err)
		return
	}

	if err := h.catalog.EditProject(c.Request.Context(), form.ID, form.fields()); err != nil {
		h.log.Warn("edit project failed", zap.Int("id", form.ID), zap.Error(err))
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/solutions/projects")
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	if err := h.catalog.DeleteProject(c.Request.Context(), id); err != nil {
		h.log.Warn("delete project failed", zap.Int("id", id), zap.Error(err))
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/solutions/projects")
}

// renderError is the admin routes' failure path: a 500 view carrying the
// error text, per the form-flow contract.
func (h *Handler) renderError(c *gin.Context, err error) {
	h.render(c, http.StatusInternalServerError, "500", gin.H{
		"Message": err.Error(),
	})
}
