package api

import (
	"context"
	"fmt"
	"log"

	"github.com/example/tarefa-api/modules/task"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Config holds the HTTP server configuration.
type Config struct {
	Port         int
	AllowOrigins string
	// AccessLog enables the fiber request logger.
	AccessLog bool
}

// APIModule is the driving adapter that exposes the tarefa REST endpoints.
// It reaches the task module through the TaskPort interface.
type APIModule struct {
	config      Config
	app         *fiber.App
	taskAdapter task.TaskPort
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule.
func NewModule(cfg Config) *APIModule {
	if cfg.Port == 0 {
		cfg.Port = 3000
	}
	if cfg.AllowOrigins == "" {
		cfg.AllowOrigins = "*"
	}
	return &APIModule{config: cfg}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"task"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "task":
		m.taskAdapter = task.NewTaskAdapter(container)
	}
}

// Start builds the Fiber app and starts listening in the background.
func (m *APIModule) Start(_ context.Context) error {
	if m.taskAdapter == nil {
		return fmt.Errorf("taskAdapter dependency not set")
	}

	m.app = NewApp(m.taskAdapter, m.config)

	addr := fmt.Sprintf(":%d", m.config.Port)
	go func() {
		if err := m.app.Listen(addr); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on %s", addr)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	healthy := m.app != nil
	message := "operational"
	if !healthy {
		message = "not started"
	}
	return mono.HealthStatus{
		Healthy: healthy,
		Message: message,
		Details: map[string]any{
			"port": m.config.Port,
		},
	}
}

// NewApp creates the Fiber app serving the tarefa routes over tasks.
func NewApp(tasks task.TaskPort, cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if cfg.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{Status: "healthy"})
	})

	NewHandlers(tasks).Register(app)
	return app
}

// customErrorHandler handles Fiber errors. 404s carry no body.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := msgInternalError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("[api] Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	if code == fiber.StatusNotFound {
		return c.SendStatus(code)
	}
	return c.Status(code).JSON(ErrorResponse{Error: message})
}
