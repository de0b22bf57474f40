// Package serve is a static file server over a generated site. It maps
// request paths to files under a document root, resolves / to the index
// page, answers misses with 404, and infers content types from file
// extensions. It sits outside the core pipeline: generation never depends
// on it.
package serve

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server serves a document root over HTTP.
type Server struct {
	root string
	echo *echo.Echo
}

// New creates a Server over the given document root.
func New(root string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  root,
		Index: "index.html",
	}))
	return &Server{root: root, echo: e}
}

// Start blocks serving the document root on addr.
func (s *Server) Start(addr string) error {
	if err := s.echo.Start(addr); err != nil {
		return fmt.Errorf("serving %s: %w", s.root, err)
	}
	return nil
}
