package schema

import (
	"sprint-accomplishments/internal/api"
)

// MessageInsert validates a POST /messages body. Messages are create-only;
// the workflow resolves userName and sprintCode to foreign ids afterwards.
func MessageInsert(in api.MessageInsert) (api.MessageInsert, error) {
	if err := checkRequired("userName", in.UserName); err != nil {
		return api.MessageInsert{}, err
	}
	if err := checkRequired("sprintCode", in.SprintCode); err != nil {
		return api.MessageInsert{}, err
	}
	return in, nil
}
