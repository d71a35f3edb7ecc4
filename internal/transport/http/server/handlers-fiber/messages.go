package handlers_fiber

import (
	"net/http"

	"sprint-accomplishments/internal/api"
	"sprint-accomplishments/internal/mapper"
	"sprint-accomplishments/internal/schema"

	"github.com/gofiber/fiber/v2"
)

// listMessages returns every message, optionally filtered by the userName or
// sprint query parameter (resolved to a foreign-key lookup first).
func (h *Handler) listMessages(c *fiber.Ctx) error {
	userName := c.Query("userName")
	sprintCode := c.Query("sprint")

	var err error
	var messages []api.Message

	switch {
	case userName != "":
		list, lerr := h.uc.MessagesByUserName(c.Context(), userName)
		messages, err = mapper.ToAPIMessageList(list), lerr
	case sprintCode != "":
		list, lerr := h.uc.MessagesBySprintCode(c.Context(), sprintCode)
		messages, err = mapper.ToAPIMessageList(list), lerr
	default:
		list, lerr := h.uc.Messages(c.Context())
		messages, err = mapper.ToAPIMessageList(list), lerr
	}
	if err != nil {
		h.log.Errorw("failed to list messages", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(messages)
}

// createMessage runs the announcement workflow and persists the result.
func (h *Handler) createMessage(c *fiber.Ctx) error {
	var body api.MessageInsert
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	in, err := schema.MessageInsert(body)
	if err != nil {
		return writeError(c, err)
	}

	msg, err := h.uc.CreateMessage(c.Context(), in.UserName, in.SprintCode)
	if err != nil {
		h.log.Errorw("failed to create message", "error", err.Error(), "user_name", in.UserName)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIMessage(*msg))
}

func (h *Handler) messagesByUser(c *fiber.Ctx) error {
	id, err := schema.ParseID(c.Params("userId"))
	if err != nil {
		return writeError(c, err)
	}

	list, err := h.uc.MessagesByUserID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIMessageList(list))
}

func (h *Handler) messagesBySprint(c *fiber.Ctx) error {
	id, err := schema.ParseID(c.Params("sprintId"))
	if err != nil {
		return writeError(c, err)
	}

	list, err := h.uc.MessagesBySprintID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIMessageList(list))
}
