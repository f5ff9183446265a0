package bootstrap

import (
	"net/http"
	"os"
	"path/filepath"

	httpapi "github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/dashboard"
	forensicshttp "github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/http"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/report"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/observability"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/scoring"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	StaticDir   string
	CORSOrigins []string
	RateLimit   float64
	RateBurst   int

	Logger    *zap.Logger
	Metrics   *observability.Collector
	Scorer    scoring.Scorer
	Dashboard *dashboard.Dashboard
	Reports   *report.Generator
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	if dep.Logger == nil {
		dep.Logger = zap.NewNop()
	}
	if dep.Metrics == nil {
		dep.Metrics = observability.NewCollector("smurf_hunter")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(middleware.Metrics(dep.Metrics))
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Scorer.Mode())
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(dep.Metrics.Handler()))

	api := r.Group("/api")
	api.Use(middleware.RateLimit(dep.RateLimit, dep.RateBurst))

	forensicsHandler := forensicshttp.New(forensicshttp.Deps{
		Dashboard: dep.Dashboard,
		Reports:   dep.Reports,
		Scorer:    dep.Scorer,
		Metrics:   dep.Metrics,
		Logger:    dep.Logger,
	})
	forensicsHandler.Register(api)

	r.NoRoute(staticOrNotFound(dep.StaticDir))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// staticOrNotFound serves the dashboard frontend from dir, with index.html
// at the root. Anything else that matches no route is a JSON 404.
func staticOrNotFound(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if dir != "" && c.Request.Method == http.MethodGet {
			name := filepath.Clean("/" + c.Request.URL.Path)
			if name == "/" {
				name = "/index.html"
			}
			path := filepath.Join(dir, filepath.FromSlash(name))
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				c.File(path)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	}
}
