package api

import (
	"errors"
	"fmt"
	"log"

	domain "github.com/example/tarefa-api/domain/task"
	"github.com/example/tarefa-api/modules/task"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Messages returned in ErrorResponse bodies.
const (
	msgDateRequired  = "A data da tarefa não pode ser vazia"
	msgInvalidID     = "O id da tarefa deve ser um número inteiro"
	msgInvalidBody   = "Corpo da requisição inválido"
	msgInvalidDate   = "O parâmetro data é obrigatório e deve ser uma data válida"
	msgInvalidStatus = "O parâmetro status é obrigatório e deve ser Pendente ou Finalizado"
	msgInternalError = "Ocorreu um erro interno"
)

// Handlers contains the HTTP handlers of the tarefa routes.
type Handlers struct {
	tasks    task.TaskPort
	validate *validator.Validate
}

// NewHandlers creates a new Handlers instance over a TaskPort.
func NewHandlers(tasks task.TaskPort) *Handlers {
	return &Handlers{
		tasks:    tasks,
		validate: validator.New(),
	}
}

// Register mounts the tarefa routes on router.
// Static routes come before /:id so they are not read as ids.
func (h *Handlers) Register(router fiber.Router) {
	tarefas := router.Group("/tarefa")
	tarefas.Get("/ObterTodos", h.GetAll)
	tarefas.Get("/ObterPorTitulo", h.GetByTitle)
	tarefas.Get("/ObterPorData", h.GetByDate)
	tarefas.Get("/ObterPorStatus", h.GetByStatus)
	tarefas.Get("/:id", h.GetByID)
	tarefas.Post("/", h.Create)
	tarefas.Put("/:id", h.Update)
	tarefas.Delete("/:id", h.Delete)
}

// GetByID handles GET /tarefa/:id.
func (h *Handlers) GetByID(c *fiber.Ctx) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	t, err := h.tasks.GetByID(c.UserContext(), id)
	if err != nil {
		return h.handleTaskError(c, err)
	}
	return c.JSON(t)
}

// GetAll handles GET /tarefa/ObterTodos.
func (h *Handlers) GetAll(c *fiber.Ctx) error {
	tasks, err := h.tasks.GetAll(c.UserContext())
	if err != nil {
		return h.handleTaskError(c, err)
	}
	return c.JSON(tasks)
}

// GetByTitle handles GET /tarefa/ObterPorTitulo?titulo=.
func (h *Handlers) GetByTitle(c *fiber.Ctx) error {
	tasks, err := h.tasks.GetByTitle(c.UserContext(), c.Query("titulo"))
	if err != nil {
		return h.handleTaskError(c, err)
	}
	return c.JSON(tasks)
}

// GetByDate handles GET /tarefa/ObterPorData?data=.
func (h *Handlers) GetByDate(c *fiber.Ctx) error {
	var q dateQuery
	if err := h.bindQuery(c, &q); err != nil {
		return badRequest(c, msgInvalidDate)
	}
	date, err := parseDate(q.Data)
	if err != nil {
		return badRequest(c, msgInvalidDate)
	}

	tasks, err := h.tasks.GetByDate(c.UserContext(), date)
	if err != nil {
		return h.handleTaskError(c, err)
	}
	return c.JSON(tasks)
}

// GetByStatus handles GET /tarefa/ObterPorStatus?status=.
func (h *Handlers) GetByStatus(c *fiber.Ctx) error {
	var q statusQuery
	if err := h.bindQuery(c, &q); err != nil {
		return badRequest(c, msgInvalidStatus)
	}
	status, err := domain.ParseStatus(q.Status)
	if err != nil {
		return badRequest(c, msgInvalidStatus)
	}

	tasks, err := h.tasks.GetByStatus(c.UserContext(), status)
	if err != nil {
		return h.handleTaskError(c, err)
	}
	return c.JSON(tasks)
}

// Create handles POST /tarefa.
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	t, err := h.tasks.Create(c.UserContext(), req.toDomain())
	if err != nil {
		return h.handleTaskError(c, err)
	}

	c.Location(fmt.Sprintf("/tarefa/%d", t.ID))
	return c.Status(fiber.StatusCreated).JSON(t)
}

// Update handles PUT /tarefa/:id.
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	t, err := h.tasks.Update(c.UserContext(), id, req.toDomain())
	if err != nil {
		return h.handleTaskError(c, err)
	}
	return c.JSON(t)
}

// Delete handles DELETE /tarefa/:id.
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.tasks.Delete(c.UserContext(), id); err != nil {
		return h.handleTaskError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// bindQuery parses the query string into out and validates it.
func (h *Handlers) bindQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		return err
	}
	return h.validate.Struct(out)
}

// taskID reads the :id path parameter. Ids that cannot exist are answered with 404.
func taskID(c *fiber.Ctx) (uint, error) {
	n, err := c.ParamsInt("id")
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, msgInvalidID)
	}
	if n <= 0 {
		return 0, fiber.ErrNotFound
	}
	return uint(n), nil
}

// handleTaskError maps TaskPort errors onto HTTP responses.
func (h *Handlers) handleTaskError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.SendStatus(fiber.StatusNotFound)
	case errors.Is(err, domain.ErrDateRequired):
		return badRequest(c, msgDateRequired)
	default:
		// Log the actual error but don't expose it to the client
		log.Printf("[api] Internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: msgInternalError,
		})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: message})
}
