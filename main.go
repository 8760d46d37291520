package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/tarefa-api/modules/activity"
	"github.com/example/tarefa-api/modules/api"
	"github.com/example/tarefa-api/modules/task"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

func main() {
	log.Println("=== Tarefa API ===")

	shutdownTimeout := getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second)
	port := getEnvInt("HTTP_PORT", 3000)

	taskConfig := task.Config{
		Driver: getEnv("STORE_DRIVER", task.DriverSQLite),
		DBPath: getEnv("DB_PATH", "tarefas.db"),
		Debug:  getEnvBool("DB_DEBUG", false),
	}
	apiConfig := api.Config{
		Port:         port,
		AllowOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		AccessLog:    true,
	}

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Independent modules first, then modules with dependencies.
	app.Register(activity.NewModule())       // Event consumer (task lifecycle log)
	app.Register(task.NewModule(taskConfig)) // Task service (store, services, events)
	app.Register(api.NewModule(apiConfig))   // HTTP surface (depends on task)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(port, taskConfig)

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(port int, cfg task.Config) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	if cfg.Driver == task.DriverMemory {
		log.Println("Store: in-memory")
	} else {
		log.Printf("Store: sqlite (%s)", cfg.DBPath)
	}
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%d):", port)
	log.Println("  POST   /tarefa                          - Create a task")
	log.Println("  GET    /tarefa/:id                      - Get a task by ID")
	log.Println("  GET    /tarefa/ObterTodos               - List all tasks")
	log.Println("  GET    /tarefa/ObterPorTitulo?titulo=   - Tasks with an exact title")
	log.Println("  GET    /tarefa/ObterPorData?data=       - Tasks on a calendar day")
	log.Println("  GET    /tarefa/ObterPorStatus?status=   - Tasks with a status")
	log.Println("  PUT    /tarefa/:id                      - Overwrite a task")
	log.Println("  DELETE /tarefa/:id                      - Delete a task")
	log.Println("  GET    /health                          - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

// getEnv returns environment variable or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvBool returns environment variable as bool or default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
		log.Printf("Warning: invalid bool value for %s: %s, using default: %t", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvDuration returns environment variable as duration or default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("Warning: invalid duration value for %s: %s, using default: %s", key, value, defaultValue)
	}
	return defaultValue
}
