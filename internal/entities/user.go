// Package entities contains core business entities.
package entities

// User is a domain representation of a registered user.
type User struct {
	ID       int64
	UserName string
}

// UserInsert carries the client-suppliable user fields.
type UserInsert struct {
	UserName string
}

// UserUpdate is a partial user patch; nil fields are left unchanged.
type UserUpdate struct {
	UserName *string
}

// UserFilter is an equality filter over user columns.
type UserFilter struct {
	UserName *string
}
