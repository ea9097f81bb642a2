package web

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/climate-solutions/solutions-backend/internal/auth"
	"github.com/climate-solutions/solutions-backend/internal/catalog"
	"github.com/climate-solutions/solutions-backend/internal/quotes"
	"github.com/climate-solutions/solutions-backend/internal/session"
)

// Handler serves every page of the site. It talks to the catalog through
// the Provider contract only, so the static and relational backends are
// interchangeable underneath it.
type Handler struct {
	catalog      catalog.Provider
	quotes       *quotes.Client
	sessions     *session.Manager
	verifier     auth.Verifier
	cookieMaxAge int
	log          *zap.Logger
}

func NewHandler(provider catalog.Provider, qc *quotes.Client, sm *session.Manager, verifier auth.Verifier, cookieMaxAge int, log *zap.Logger) *Handler {
	return &Handler{
		catalog:      provider,
		quotes:       qc,
		sessions:     sm,
		verifier:     verifier,
		cookieMaxAge: cookieMaxAge,
		log:          log,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.home)
	r.GET("/about", h.about)
	r.GET("/solutions/projects", h.listProjects)
	r.GET("/solutions/projects/:id", h.projectDetail)

	r.GET("/login", h.loginForm)
	r.POST("/login", h.login)
	r.GET("/logout", h.logout)

	admin := r.Group("/solutions", session.RequireLogin())
	admin.GET("/addProject", h.addProjectForm)
	admin.POST("/addProject", h.addProject)
	admin.GET("/editProject/:id", h.editProjectForm)
	admin.POST("/editProject", h.editProject)
	admin.GET("/deleteProject/:id", h.deleteProject)

	r.NoRoute(h.notFound)
}

// render injects the current session (for the nav bar) and writes a view.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["User"]; !ok {
		data["User"] = session.Current(c)
	}
	c.HTML(status, name, data)
}

func (h *Handler) home(c *gin.Context) {
	featured := []catalog.EnrichedProject{}

	all, err := h.catalog.AllProjects(c.Request.Context())
	if err != nil {
		// The home page always renders; an empty list beats a 500 here.
		h.log.Warn("unable to load featured projects", zap.Error(err))
	} else if len(all) > 3 {
		featured = all[:3]
	} else {
		featured = all
	}

	h.render(c, http.StatusOK, "home", gin.H{"FeaturedProjects": featured})
}

func (h *Handler) about(c *gin.Context) {
	h.render(c, http.StatusOK, "about", nil)
}

func (h *Handler) listProjects(c *gin.Context) {
	ctx := c.Request.Context()
	sectorQuery := strings.TrimSpace(c.Query("sector"))

	var filtered, all []catalog.EnrichedProject
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if sectorQuery != "" {
			filtered, err = h.catalog.ProjectsBySector(gctx, sectorQuery)
		} else {
			filtered, err = h.catalog.AllProjects(gctx)
		}
		return err
	})
	g.Go(func() error {
		var err error
		all, err = h.catalog.AllProjects(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		h.log.Warn("project listing failed",
			zap.String("sector", sectorQuery), zap.Error(err))

		status := http.StatusInternalServerError
		msg := "Unable to load projects right now. Please try again later."
		if sectorQuery != "" {
			status = http.StatusNotFound
			msg = fmt.Sprintf("No projects found for sector %q.", sectorQuery)
		}

		h.render(c, status, "projects", gin.H{
			"Projects":     []catalog.EnrichedProject{},
			"Sector":       sectorQuery,
			"Error":        msg,
			"ValidSectors": h.validSectors(ctx, all),
		})
		return
	}

	h.render(c, http.StatusOK, "projects", gin.H{
		"Projects":     filtered,
		"Sector":       sectorQuery,
		"Error":        nil,
		"ValidSectors": distinctSectors(all),
	})
}

func (h *Handler) projectDetail(c *gin.Context) {
	ctx := c.Request.Context()

	project, err := h.catalog.ProjectByID(ctx, c.Param("id"))
	if err != nil {
		h.render(c, http.StatusNotFound, "404", gin.H{
			"Message": "We couldn't find that project.",
		})
		return
	}

	// Best-effort decoration; a nil quote renders fine.
	quote := h.quotes.RandomOrNil(ctx)

	h.render(c, http.StatusOK, "project", gin.H{
		"Project": project,
		"Quote":   quote,
	})
}

func (h *Handler) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "404", gin.H{
		"Message": "The page you're looking for doesn't exist.",
	})
}

// validSectors recomputes the filter control's sector list on the error
// path, re-querying if the concurrent fetch didn't get that far.
func (h *Handler) validSectors(ctx context.Context, all []catalog.EnrichedProject) []string {
	if all == nil {
		var err error
		all, err = h.catalog.AllProjects(ctx)
		if err != nil {
			h.log.Warn("unable to load sector list", zap.Error(err))
			return nil
		}
	}
	return distinctSectors(all)
}

func distinctSectors(projects []catalog.EnrichedProject) []string {
	seen := make(map[string]struct{}, len(projects))
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		if _, ok := seen[p.Sector]; ok {
			continue
		}
		seen[p.Sector] = struct{}{}
		out = append(out, p.Sector)
	}
	return out
}
