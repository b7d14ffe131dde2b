package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/whereizit-service/internal/config"
	"github.com/whereizit-service/internal/delivery/http/handler"
	"github.com/whereizit-service/internal/delivery/http/middleware"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	areaHandler   *handler.AreaHandler
	markerHandler *handler.MarkerHandler
	reportHandler *handler.ReportHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	areaHandler *handler.AreaHandler,
	markerHandler *handler.MarkerHandler,
	reportHandler *handler.ReportHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Whereizit Area Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    10 * 1024 * 1024, // фотографии областей
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		areaHandler:   areaHandler,
		markerHandler: markerHandler,
		reportHandler: reportHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(middleware.Principal())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Area routes
	api.Post("/areas", s.areaHandler.Submit)
	api.Delete("/areas/:id", s.areaHandler.Delete)
	api.Get("/areas/nearby", s.areaHandler.Nearby)
	api.Get("/areas/mine", s.areaHandler.Mine)
	api.Post("/areas/photo", s.areaHandler.UploadPhoto)

	// Справочник формы ввода
	api.Get("/categories", s.areaHandler.Categories)

	// Marker routes - зеркало карты и жесты
	api.Get("/markers", s.markerHandler.List)
	api.Post("/markers/:id/tap", s.markerHandler.Tap)
	api.Post("/map/tap", s.markerHandler.BackgroundTap)

	// Report routes
	api.Post("/reports", s.reportHandler.Submit)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
