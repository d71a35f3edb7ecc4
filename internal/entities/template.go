package entities

// Template is a reusable message body for sprint announcements.
type Template struct {
	ID              int64
	MessageTemplate string
}

// TemplateInsert carries the client-suppliable template fields.
type TemplateInsert struct {
	MessageTemplate string
}

// TemplateUpdate is a partial template patch.
type TemplateUpdate struct {
	MessageTemplate *string
}
