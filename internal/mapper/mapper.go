// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"time"

	"sprint-accomplishments/internal/api"
	"sprint-accomplishments/internal/entities"
)

// ToAPIUser maps entities.User to transport model.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:       u.ID,
		UserName: u.UserName,
	}
}

// ToAPIUserList maps a slice of entities.User to transport slice.
func ToAPIUserList(list []entities.User) []api.User {
	res := make([]api.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// ToAPITemplate maps entities.Template to transport model.
func ToAPITemplate(t entities.Template) api.Template {
	return api.Template{
		ID:              t.ID,
		MessageTemplate: t.MessageTemplate,
	}
}

// ToAPITemplateList maps a slice of entities.Template to transport slice.
func ToAPITemplateList(list []entities.Template) []api.Template {
	res := make([]api.Template, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITemplate(t))
	}
	return res
}

// ToAPISprint maps entities.Sprint to transport model.
func ToAPISprint(s entities.Sprint) api.Sprint {
	return api.Sprint{
		ID:         s.ID,
		SprintCode: s.SprintCode,
		SprintName: s.SprintName,
	}
}

// ToAPISprintList maps a slice of entities.Sprint to transport slice.
func ToAPISprintList(list []entities.Sprint) []api.Sprint {
	res := make([]api.Sprint, 0, len(list))
	for _, s := range list {
		res = append(res, ToAPISprint(s))
	}
	return res
}

// ToAPIMessage maps entities.Message to transport model.
func ToAPIMessage(m entities.Message) api.Message {
	return api.Message{
		ID:         m.ID,
		UserID:     m.UserID,
		TemplateID: m.TemplateID,
		SprintID:   m.SprintID,
		Timestamp:  m.Timestamp.UTC().Format(time.RFC3339),
	}
}

// ToAPIMessageList maps a slice of entities.Message to transport slice.
func ToAPIMessageList(list []entities.Message) []api.Message {
	res := make([]api.Message, 0, len(list))
	for _, m := range list {
		res = append(res, ToAPIMessage(m))
	}
	return res
}
