package main

import (
	"fmt"
	"net/http"

	_ "epo-browser/docs"
	"epo-browser/internal/handler"
	"epo-browser/internal/metrics"
	"epo-browser/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type pageCatalog interface {
	handler.PageCatalog
	handler.CatalogSource
}

type routerDeps struct {
	Catalog  pageCatalog
	Search   handler.SearchService
	Zip      handler.ZipService
	Counter  handler.ZipCounter
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
	Defaults handler.PageDefaults
}

func newRouter(deps routerDeps) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	pageHandler := handler.NewPageHandler(deps.Catalog, deps.Defaults)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	providerHandler := handler.NewProviderHandler(deps.Search)
	zipHandler := handler.NewZipHandler(deps.Zip)
	healthHandler := handler.NewHealthHandler(deps.Counter)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(), deps.Metrics.Middleware())
	r.SetHTMLTemplate(tmpl)

	r.GET("/", pageHandler.Index)
	r.StaticFS("/static", web.Static())
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/categories", catalogHandler.Categories)
	api.GET("/providers", providerHandler.Search)
	api.GET("/zip/nearest", zipHandler.Nearest)
	api.GET("/zip/:zip", zipHandler.Lookup)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.ErrorResponse{Error: "not found"})
	})

	return r, nil
}
