package handlers_fiber

import (
	"net/http"

	"sprint-accomplishments/internal/api"
	"sprint-accomplishments/internal/mapper"
	"sprint-accomplishments/internal/schema"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) listUsers(c *fiber.Ctx) error {
	users, err := h.uc.Users(c.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUserList(users))
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	var body api.UserInsert
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	in, err := schema.UserInsert(body)
	if err != nil {
		return writeError(c, err)
	}

	user, err := h.uc.CreateUser(c.Context(), in)
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIUser(*user))
}

func (h *Handler) getUser(c *fiber.Ctx) error {
	id, err := schema.ParseID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	user, err := h.uc.UserByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*user))
}

func (h *Handler) patchUser(c *fiber.Ctx) error {
	id, err := schema.ParseID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	var body api.UserPatch
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	patch, err := schema.UserPatch(body)
	if err != nil {
		return writeError(c, err)
	}

	user, err := h.uc.UpdateUser(c.Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*user))
}

func (h *Handler) putUser(c *fiber.Ctx) error {
	id, err := schema.ParseID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	var body api.UserPut
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	in, err := schema.UserPut(id, body)
	if err != nil {
		return writeError(c, err)
	}

	user, err := h.uc.ReplaceUser(c.Context(), id, in)
	if err != nil {
		h.log.Errorw("failed to replace user", "error", err.Error(), "user_id", id)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*user))
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	id, err := schema.ParseID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	if _, err := h.uc.RemoveUser(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
