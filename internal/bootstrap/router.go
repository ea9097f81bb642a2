package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	httpapi "github.com/climate-solutions/solutions-backend/internal/api/http"
	"github.com/climate-solutions/solutions-backend/internal/api/http/middleware"
	"github.com/climate-solutions/solutions-backend/internal/auth"
	"github.com/climate-solutions/solutions-backend/internal/catalog"
	"github.com/climate-solutions/solutions-backend/internal/quotes"
	"github.com/climate-solutions/solutions-backend/internal/session"
	"github.com/climate-solutions/solutions-backend/internal/web"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	Catalog      catalog.Provider
	Quotes       *quotes.Client
	Sessions     *session.Manager
	Verifier     auth.Verifier
	CookieMaxAge int
	DB           *sql.DB       // nil when the static catalog is active
	Redis        *redis.Client // nil in tests without a session store
	Log          *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Log))
	r.Use(cors.Default())
	r.Use(session.Load(dep.Sessions))

	r.SetHTMLTemplate(web.Templates())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	siteHandler := web.NewHandler(dep.Catalog, dep.Quotes, dep.Sessions, dep.Verifier, dep.CookieMaxAge, dep.Log)
	siteHandler.Register(r)

	return r
}
