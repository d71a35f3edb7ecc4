package handlers_fiber

import (
	"net/http"

	"sprint-accomplishments/internal/api"
	"sprint-accomplishments/internal/mapper"
	"sprint-accomplishments/internal/schema"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) listSprints(c *fiber.Ctx) error {
	sprints, err := h.uc.Sprints(c.Context())
	if err != nil {
		h.log.Errorw("failed to list sprints", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISprintList(sprints))
}

func (h *Handler) createSprint(c *fiber.Ctx) error {
	var body api.SprintInsert
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	in, err := schema.SprintInsert(body)
	if err != nil {
		return writeError(c, err)
	}

	sprint, err := h.uc.CreateSprint(c.Context(), in)
	if err != nil {
		h.log.Errorw("failed to create sprint", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPISprint(*sprint))
}

func (h *Handler) getSprint(c *fiber.Ctx) error {
	id, err := schema.ParseID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	sprint, err := h.uc.SprintByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISprint(*sprint))
}

func (h *Handler) patchSprint(c *fiber.Ctx) error {
	id, err := schema.ParseID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	var body api.SprintPatch
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	patch, err := schema.SprintPatch(body)
	if err != nil {
		return writeError(c, err)
	}

	sprint, err := h.uc.UpdateSprint(c.Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISprint(*sprint))
}

func (h *Handler) putSprint(c *fiber.Ctx) error {
	id, err := schema.ParseID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	var body api.SprintPut
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	in, err := schema.SprintPut(id, body)
	if err != nil {
		return writeError(c, err)
	}

	sprint, err := h.uc.ReplaceSprint(c.Context(), id, in)
	if err != nil {
		h.log.Errorw("failed to replace sprint", "error", err.Error(), "sprint_id", id)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISprint(*sprint))
}

func (h *Handler) deleteSprint(c *fiber.Ctx) error {
	id, err := schema.ParseID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	if _, err := h.uc.RemoveSprint(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
