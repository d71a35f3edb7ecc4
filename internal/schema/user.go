package schema

import (
	"sprint-accomplishments/internal/api"
	"sprint-accomplishments/internal/entities"
)

const (
	userNameMin = 2
	userNameMax = 32
)

// UserInsert validates a POST /users body.
func UserInsert(in api.UserInsert) (entities.UserInsert, error) {
	if err := checkLength("userName", in.UserName, userNameMin, userNameMax); err != nil {
		return entities.UserInsert{}, err
	}
	return entities.UserInsert{UserName: in.UserName}, nil
}

// UserPatch validates a PATCH /users/:id body; absent fields stay unchanged.
func UserPatch(in api.UserPatch) (entities.UserUpdate, error) {
	out := entities.UserUpdate{}
	if in.UserName != nil {
		if err := checkLength("userName", *in.UserName, userNameMin, userNameMax); err != nil {
			return entities.UserUpdate{}, err
		}
		out.UserName = in.UserName
	}
	return out, nil
}

// UserPut validates a PUT /users/:id body as a full record. The path id wins;
// a body id that disagrees with the path is rejected.
func UserPut(pathID int64, in api.UserPut) (entities.UserInsert, error) {
	if err := checkBodyID(pathID, in.ID); err != nil {
		return entities.UserInsert{}, err
	}
	if err := checkLength("userName", in.UserName, userNameMin, userNameMax); err != nil {
		return entities.UserInsert{}, err
	}
	return entities.UserInsert{UserName: in.UserName}, nil
}
