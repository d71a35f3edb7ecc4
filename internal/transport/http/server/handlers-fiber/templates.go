package handlers_fiber

import (
	"net/http"

	"sprint-accomplishments/internal/api"
	"sprint-accomplishments/internal/mapper"
	"sprint-accomplishments/internal/schema"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) listTemplates(c *fiber.Ctx) error {
	templates, err := h.uc.Templates(c.Context())
	if err != nil {
		h.log.Errorw("failed to list templates", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITemplateList(templates))
}

func (h *Handler) createTemplate(c *fiber.Ctx) error {
	var body api.TemplateInsert
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	in, err := schema.TemplateInsert(body)
	if err != nil {
		return writeError(c, err)
	}

	tmpl, err := h.uc.CreateTemplate(c.Context(), in)
	if err != nil {
		h.log.Errorw("failed to create template", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPITemplate(*tmpl))
}

func (h *Handler) getTemplate(c *fiber.Ctx) error {
	id, err := schema.ParseID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	tmpl, err := h.uc.TemplateByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITemplate(*tmpl))
}

func (h *Handler) patchTemplate(c *fiber.Ctx) error {
	id, err := schema.ParseID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	var body api.TemplatePatch
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	patch, err := schema.TemplatePatch(body)
	if err != nil {
		return writeError(c, err)
	}

	tmpl, err := h.uc.UpdateTemplate(c.Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITemplate(*tmpl))
}

func (h *Handler) putTemplate(c *fiber.Ctx) error {
	id, err := schema.ParseID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	var body api.TemplatePut
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	in, err := schema.TemplatePut(id, body)
	if err != nil {
		return writeError(c, err)
	}

	tmpl, err := h.uc.ReplaceTemplate(c.Context(), id, in)
	if err != nil {
		h.log.Errorw("failed to replace template", "error", err.Error(), "template_id", id)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITemplate(*tmpl))
}

func (h *Handler) deleteTemplate(c *fiber.Ctx) error {
	id, err := schema.ParseID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	if _, err := h.uc.RemoveTemplate(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
