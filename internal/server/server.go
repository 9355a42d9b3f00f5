package server

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ced-it/promptforge/internal/config"
	"github.com/ced-it/promptforge/internal/prompt"
)

// Service is the HTTP API. Requests are handled independently and
// statelessly; the only process-wide state is the configuration decided at
// startup.
type Service struct {
	cfg       *config.ServerConfig
	e         *echo.Echo
	generator *prompt.Generator
}

func New(cfg *config.ServerConfig, generator *prompt.Generator) *Service {
	s := &Service{
		cfg:       cfg,
		e:         echo.New(),
		generator: generator,
	}

	s.e.HideBanner = true
	s.e.Use(middleware.Logger())
	s.e.Use(middleware.Recover())
	s.e.Use(middleware.CORS())

	api := s.e.Group("/api")
	api.POST("/generate", s.handleGenerate)
	api.GET("/health", s.handleHealth)

	// Serve the built single-page app when a dist directory is present;
	// unmatched routes fall back to index.html.
	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		s.e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
			Root:  cfg.StaticDir,
			HTML5: true,
			Skipper: func(c echo.Context) bool {
				return strings.HasPrefix(c.Request().URL.Path, "/api")
			},
		}))
	}

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Service) Handler() http.Handler {
	return s.e
}

func (s *Service) Start() error {
	return s.e.Start(":" + s.cfg.Port)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) handleGenerate(c echo.Context) error {
	req := new(prompt.Request)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "corps de requête invalide"})
	}

	res, err := s.generator.Generate(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, prompt.ErrEmptyIdea) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Les mots-clés sont requis"})
		}
		// Generate only fails on input validation; anything else would be
		// a programming error, but degrade to the template path anyway.
		res = prompt.FallbackResult(req)
	}

	return c.JSON(http.StatusOK, res)
}

type healthResponse struct {
	Status    string `json:"status"`
	Mode      string `json:"mode"`
	Timestamp string `json:"timestamp"`
}

func (s *Service) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:    "ok",
		Mode:      s.generator.Mode(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
