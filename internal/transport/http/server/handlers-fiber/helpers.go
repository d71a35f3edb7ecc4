package handlers_fiber

import (
	"errors"
	"net/http"

	"sprint-accomplishments/internal/api"
	"sprint-accomplishments/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrTemplateNotFound),
		errors.Is(err, entities.ErrSprintNotFound),
		errors.Is(err, entities.ErrMessageNotFound),
		errors.Is(err, entities.ErrMemberNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entities.ErrUserExists):
		status = http.StatusConflict
		msg = "userName already exists"
	case errors.Is(err, entities.ErrSprintExists):
		status = http.StatusConflict
		msg = "sprintCode already exists"
	case errors.Is(err, entities.ErrReferenced):
		status = http.StatusConflict
		msg = "entity is referenced by existing messages"
	case errors.Is(err, entities.ErrDependencyUnavailable):
		status = http.StatusBadGateway
	default:
		msg = "internal error"
	}

	return c.Status(status).JSON(errorResponse(msg))
}

func errorResponse(msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorDetail{Message: msg}}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse("invalid body"))
}
