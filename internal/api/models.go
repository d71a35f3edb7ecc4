// Package api defines the JSON transport models of the HTTP surface.
package api

// User is the transport representation of a user.
type User struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
}

// UserInsert is the POST /users request body.
type UserInsert struct {
	UserName string `json:"userName"`
}

// UserPatch is the PATCH /users/:id request body.
type UserPatch struct {
	UserName *string `json:"userName"`
}

// UserPut is the PUT /users/:id request body.
type UserPut struct {
	ID       *int64 `json:"id"`
	UserName string `json:"userName"`
}

// Template is the transport representation of a template.
type Template struct {
	ID              int64  `json:"id"`
	MessageTemplate string `json:"messageTemplate"`
}

// TemplateInsert is the POST /templates request body.
type TemplateInsert struct {
	MessageTemplate string `json:"messageTemplate"`
}

// TemplatePatch is the PATCH /templates/:id request body.
type TemplatePatch struct {
	MessageTemplate *string `json:"messageTemplate"`
}

// TemplatePut is the PUT /templates/:id request body.
type TemplatePut struct {
	ID              *int64 `json:"id"`
	MessageTemplate string `json:"messageTemplate"`
}

// Sprint is the transport representation of a sprint.
type Sprint struct {
	ID         int64  `json:"id"`
	SprintCode string `json:"sprintCode"`
	SprintName string `json:"sprintName"`
}

// SprintInsert is the POST /sprints request body.
type SprintInsert struct {
	SprintCode string `json:"sprintCode"`
	SprintName string `json:"sprintName"`
}

// SprintPatch is the PATCH /sprints/:id request body.
type SprintPatch struct {
	SprintCode *string `json:"sprintCode"`
	SprintName *string `json:"sprintName"`
}

// SprintPut is the PUT /sprints/:id request body.
type SprintPut struct {
	ID         *int64 `json:"id"`
	SprintCode string `json:"sprintCode"`
	SprintName string `json:"sprintName"`
}

// Message is the transport representation of an announcement record.
type Message struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	TemplateID int64  `json:"templateId"`
	SprintID   int64  `json:"sprintId"`
	Timestamp  string `json:"timestamp"`
}

// MessageInsert is the POST /messages request body. The workflow resolves
// the natural keys to foreign ids.
type MessageInsert struct {
	UserName   string `json:"userName"`
	SprintCode string `json:"sprintCode"`
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the human-readable failure message.
type ErrorDetail struct {
	Message string `json:"message"`
}
