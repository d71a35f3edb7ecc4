package schema

import (
	"sprint-accomplishments/internal/api"
	"sprint-accomplishments/internal/entities"
)

// SprintInsert validates a POST /sprints body.
func SprintInsert(in api.SprintInsert) (entities.SprintInsert, error) {
	if err := checkRequired("sprintCode", in.SprintCode); err != nil {
		return entities.SprintInsert{}, err
	}
	if err := checkRequired("sprintName", in.SprintName); err != nil {
		return entities.SprintInsert{}, err
	}
	return entities.SprintInsert{SprintCode: in.SprintCode, SprintName: in.SprintName}, nil
}

// SprintPatch validates a PATCH /sprints/:id body.
func SprintPatch(in api.SprintPatch) (entities.SprintUpdate, error) {
	out := entities.SprintUpdate{}
	if in.SprintCode != nil {
		if err := checkRequired("sprintCode", *in.SprintCode); err != nil {
			return entities.SprintUpdate{}, err
		}
		out.SprintCode = in.SprintCode
	}
	if in.SprintName != nil {
		if err := checkRequired("sprintName", *in.SprintName); err != nil {
			return entities.SprintUpdate{}, err
		}
		out.SprintName = in.SprintName
	}
	return out, nil
}

// SprintPut validates a PUT /sprints/:id body as a full record.
func SprintPut(pathID int64, in api.SprintPut) (entities.SprintInsert, error) {
	if err := checkBodyID(pathID, in.ID); err != nil {
		return entities.SprintInsert{}, err
	}
	return SprintInsert(api.SprintInsert{SprintCode: in.SprintCode, SprintName: in.SprintName})
}
