// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"sprint-accomplishments/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler implements the HTTP surface using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// Register mounts all entity routes on the app.
func (h *Handler) Register(app *fiber.App) {
	users := app.Group("/users")
	users.Get("/", h.listUsers)
	users.Post("/", h.createUser)
	users.Get("/:id", h.getUser)
	users.Patch("/:id", h.patchUser)
	users.Put("/:id", h.putUser)
	users.Delete("/:id", h.deleteUser)

	templates := app.Group("/templates")
	templates.Get("/", h.listTemplates)
	templates.Post("/", h.createTemplate)
	templates.Get("/:id", h.getTemplate)
	templates.Patch("/:id", h.patchTemplate)
	templates.Put("/:id", h.putTemplate)
	templates.Delete("/:id", h.deleteTemplate)

	messages := app.Group("/messages")
	messages.Get("/", h.listMessages)
	messages.Post("/", h.createMessage)
	messages.Get("/sprint/:sprintId", h.messagesBySprint)
	messages.Get("/:userId", h.messagesByUser)

	sprints := app.Group("/sprints")
	sprints.Get("/", h.listSprints)
	sprints.Post("/", h.createSprint)
	sprints.Get("/:id", h.getSprint)
	sprints.Patch("/:id", h.patchSprint)
	sprints.Put("/:id", h.putSprint)
	sprints.Delete("/:id", h.deleteSprint)
}
