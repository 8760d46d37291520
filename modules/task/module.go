package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	domain "github.com/example/tarefa-api/domain/task"
	"github.com/example/tarefa-api/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store drivers accepted in Config.Driver.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config holds the persistence settings of the task module.
type Config struct {
	Driver string
	DBPath string
	Debug  bool
}

// TaskModule provides task management services backed by a domain.Store.
type TaskModule struct {
	config   Config
	db       *gorm.DB
	store    domain.Store
	service  *Service
	eventBus mono.EventBus
}

// Compile-time interface checks.
var _ mono.Module = (*TaskModule)(nil)
var _ mono.ServiceProviderModule = (*TaskModule)(nil)
var _ mono.HealthCheckableModule = (*TaskModule)(nil)
var _ mono.EventEmitterModule = (*TaskModule)(nil)

// NewModule creates a new TaskModule.
func NewModule(config Config) *TaskModule {
	if config.Driver == "" {
		config.Driver = DriverSQLite
	}
	return &TaskModule{
		config: config,
	}
}

// Name returns the module name.
func (m *TaskModule) Name() string {
	return "task"
}

// SetEventBus receives the EventBus for publishing task events.
func (m *TaskModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module publishes.
func (m *TaskModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TaskCreatedV1.ToBase(),
		events.TaskUpdatedV1.ToBase(),
		events.TaskDeletedV1.ToBase(),
	}
}

// RegisterServices registers request-reply services in the service container.
// The framework prefixes each name with "services.task.".
func (m *TaskModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "get-task", json.Unmarshal, json.Marshal, m.getTask,
	); err != nil {
		return fmt.Errorf("failed to register get-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-tasks", json.Unmarshal, json.Marshal, m.listTasks,
	); err != nil {
		return fmt.Errorf("failed to register list-tasks service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "find-tasks-by-title", json.Unmarshal, json.Marshal, m.findByTitle,
	); err != nil {
		return fmt.Errorf("failed to register find-tasks-by-title service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "find-tasks-by-date", json.Unmarshal, json.Marshal, m.findByDate,
	); err != nil {
		return fmt.Errorf("failed to register find-tasks-by-date service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "find-tasks-by-status", json.Unmarshal, json.Marshal, m.findByStatus,
	); err != nil {
		return fmt.Errorf("failed to register find-tasks-by-status service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "create-task", json.Unmarshal, json.Marshal, m.createTask,
	); err != nil {
		return fmt.Errorf("failed to register create-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-task", json.Unmarshal, json.Marshal, m.updateTask,
	); err != nil {
		return fmt.Errorf("failed to register update-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete-task", json.Unmarshal, json.Marshal, m.deleteTask,
	); err != nil {
		return fmt.Errorf("failed to register delete-task service: %w", err)
	}

	log.Printf("[task] Registered services: get-task, list-tasks, find-tasks-by-{title,date,status}, create-task, update-task, delete-task")
	return nil
}

// Start opens the store and creates the service.
func (m *TaskModule) Start(_ context.Context) error {
	switch m.config.Driver {
	case DriverMemory:
		m.store = domain.NewMemoryStore()
		log.Println("[task] Using in-memory store")
	case DriverSQLite:
		if err := m.openSQLite(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown store driver %q", m.config.Driver)
	}

	if m.eventBus == nil {
		log.Println("[task] Warning: eventBus not set, events will not be published")
	}
	m.service = NewService(m.store, m.eventBus)

	log.Println("[task] Module started successfully")
	return nil
}

// openSQLite connects to the SQLite database and runs auto-migration.
func (m *TaskModule) openSQLite() error {
	log.Printf("[task] Connecting to SQLite database: %s", m.config.DBPath)

	logLevel := logger.Silent
	if m.config.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(m.config.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	store := domain.NewGormStore(db)
	if err := store.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	m.store = store
	return nil
}

// Stop closes the database connection.
func (m *TaskModule) Stop(_ context.Context) error {
	if m.db == nil {
		log.Println("[task] Module stopped")
		return nil
	}

	log.Println("[task] Closing database connection...")

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("[task] Database connection closed")
	return nil
}

// Health performs a health check on the task store.
func (m *TaskModule) Health(ctx context.Context) mono.HealthStatus {
	if m.store == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "store not initialized",
		}
	}

	if m.db == nil {
		return mono.HealthStatus{
			Healthy: true,
			Message: "operational",
			Details: map[string]any{
				"driver": m.config.Driver,
			},
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get sql.DB: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"driver": m.config.Driver,
			"path":   m.config.DBPath,
		},
	}
}
