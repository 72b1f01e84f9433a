// Package adminapi exposes the expiry-control operations over HTTP. It is
// the service-side rendition of the presentation contracts: save, edit,
// delete, confirm verification and export.
package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/amdora/dlccontrol/internal/app"
)

type Server struct {
	app  *app.Application
	echo *echo.Echo
}

func NewServer(application *app.Application) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{app: application, echo: e}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	g := s.echo.Group("/api/dlc")

	g.GET("/products", s.listProducts)
	g.POST("/products", s.createProduct)
	g.PUT("/products/:id", s.updateProduct)
	g.DELETE("/products/:id", s.deleteProduct)
	g.POST("/products/reset", s.resetProducts)
	g.POST("/products/renew-secundaria", s.renewSecundaria)
	g.GET("/products/export", s.exportProducts)

	g.GET("/summary", s.getSummary)
	g.GET("/categories", s.listCategories)
	g.GET("/statuses", s.listStatuses)

	g.GET("/verifications", s.listVerifications)
	g.GET("/verifications/last", s.lastVerification)
	g.POST("/verifications", s.confirmVerification)
	g.GET("/verifications/export", s.exportVerifications)
}

// Handler exposes the underlying HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.app.Config().Web.Host, s.app.Config().Web.Port)
	zap.S().Infof("admin api listening on %s", addr)
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
