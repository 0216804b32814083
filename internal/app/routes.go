package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/soez-labs/blogforge/internal/middleware"
	"github.com/soez-labs/blogforge/internal/modules/auth"
	"github.com/soez-labs/blogforge/internal/modules/content"
	"github.com/soez-labs/blogforge/internal/modules/generate"
	"github.com/soez-labs/blogforge/internal/modules/mailer"
	"github.com/soez-labs/blogforge/internal/modules/pages"
	"github.com/soez-labs/blogforge/internal/modules/sitemap"
	"github.com/soez-labs/blogforge/internal/pkg/mail"
	"github.com/soez-labs/blogforge/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	validator := &middleware.DBValidator{DB: a.db}
	authMW := middleware.Auth(validator)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not found")
	})
	r.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	// Shared services
	store := content.NewStore(a.db)
	contentSvc := content.NewService(store)
	generateSvc := generate.NewService(a.cfg, generate.NewProviderGenerator())
	authSvc := auth.NewService(a.db)
	sender := mail.New(mail.BuildMailConfig(a.cfg))

	// Root-level pages and syndication
	pages.NewHandler(validator).RegisterRoutes(r)
	sitemap.RegisterRoutes(r, a.cfg.SiteURL, store)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API surface
	api := r.Group("/api")
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"timestamp": time.Since(processStart).Milliseconds()})
	})

	auth.NewHandler(authSvc).RegisterRoutes(api, authMW)
	generate.NewHandler(generateSvc).RegisterRoutes(api, authMW)
	content.NewHandler(contentSvc).RegisterRoutes(api, authMW)
	// Email has no session gate: system jobs post here directly.
	mailer.NewHandler(sender).RegisterRoutes(api)
}

var processStart = time.Now()
