package schema

import (
	"sprint-accomplishments/internal/api"
	"sprint-accomplishments/internal/entities"
)

const (
	messageTemplateMin = 5
	messageTemplateMax = 2000
)

// TemplateInsert validates a POST /templates body.
func TemplateInsert(in api.TemplateInsert) (entities.TemplateInsert, error) {
	if err := checkLength("messageTemplate", in.MessageTemplate, messageTemplateMin, messageTemplateMax); err != nil {
		return entities.TemplateInsert{}, err
	}
	return entities.TemplateInsert{MessageTemplate: in.MessageTemplate}, nil
}

// TemplatePatch validates a PATCH /templates/:id body.
func TemplatePatch(in api.TemplatePatch) (entities.TemplateUpdate, error) {
	out := entities.TemplateUpdate{}
	if in.MessageTemplate != nil {
		if err := checkLength("messageTemplate", *in.MessageTemplate, messageTemplateMin, messageTemplateMax); err != nil {
			return entities.TemplateUpdate{}, err
		}
		out.MessageTemplate = in.MessageTemplate
	}
	return out, nil
}

// TemplatePut validates a PUT /templates/:id body as a full record.
func TemplatePut(pathID int64, in api.TemplatePut) (entities.TemplateInsert, error) {
	if err := checkBodyID(pathID, in.ID); err != nil {
		return entities.TemplateInsert{}, err
	}
	if err := checkLength("messageTemplate", in.MessageTemplate, messageTemplateMin, messageTemplateMax); err != nil {
		return entities.TemplateInsert{}, err
	}
	return entities.TemplateInsert{MessageTemplate: in.MessageTemplate}, nil
}
