package entities

// Sprint is a named unit of work with a unique short code.
type Sprint struct {
	ID         int64
	SprintCode string
	SprintName string
}

// SprintInsert carries the client-suppliable sprint fields.
type SprintInsert struct {
	SprintCode string
	SprintName string
}

// SprintUpdate is a partial sprint patch.
type SprintUpdate struct {
	SprintCode *string
	SprintName *string
}

// SprintFilter is an equality filter over sprint columns.
type SprintFilter struct {
	SprintCode *string
}
