package handlers_fiber

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sprint-accomplishments/internal/api"
	"sprint-accomplishments/internal/entities"
	"sprint-accomplishments/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type ucMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*ucMock)(nil)

func (m *ucMock) Users(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *ucMock) UserByID(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *ucMock) CreateUser(ctx context.Context, in entities.UserInsert) (*entities.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *ucMock) UpdateUser(ctx context.Context, id int64, patch entities.UserUpdate) (*entities.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *ucMock) ReplaceUser(ctx context.Context, id int64, in entities.UserInsert) (*entities.User, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *ucMock) RemoveUser(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *ucMock) Templates(ctx context.Context) ([]entities.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Template), args.Error(1)
}

func (m *ucMock) TemplateByID(ctx context.Context, id int64) (*entities.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Template), args.Error(1)
}

func (m *ucMock) CreateTemplate(ctx context.Context, in entities.TemplateInsert) (*entities.Template, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Template), args.Error(1)
}

func (m *ucMock) UpdateTemplate(ctx context.Context, id int64, patch entities.TemplateUpdate) (*entities.Template, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Template), args.Error(1)
}

func (m *ucMock) ReplaceTemplate(ctx context.Context, id int64, in entities.TemplateInsert) (*entities.Template, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Template), args.Error(1)
}

func (m *ucMock) RemoveTemplate(ctx context.Context, id int64) (*entities.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Template), args.Error(1)
}

func (m *ucMock) Sprints(ctx context.Context) ([]entities.Sprint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Sprint), args.Error(1)
}

func (m *ucMock) SprintByID(ctx context.Context, id int64) (*entities.Sprint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Sprint), args.Error(1)
}

func (m *ucMock) CreateSprint(ctx context.Context, in entities.SprintInsert) (*entities.Sprint, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Sprint), args.Error(1)
}

func (m *ucMock) UpdateSprint(ctx context.Context, id int64, patch entities.SprintUpdate) (*entities.Sprint, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Sprint), args.Error(1)
}

func (m *ucMock) ReplaceSprint(ctx context.Context, id int64, in entities.SprintInsert) (*entities.Sprint, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Sprint), args.Error(1)
}

func (m *ucMock) RemoveSprint(ctx context.Context, id int64) (*entities.Sprint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Sprint), args.Error(1)
}

func (m *ucMock) Messages(ctx context.Context) ([]entities.Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Message), args.Error(1)
}

func (m *ucMock) MessagesByUserName(ctx context.Context, userName string) ([]entities.Message, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Message), args.Error(1)
}

func (m *ucMock) MessagesBySprintCode(ctx context.Context, sprintCode string) ([]entities.Message, error) {
	args := m.Called(ctx, sprintCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Message), args.Error(1)
}

func (m *ucMock) MessagesByUserID(ctx context.Context, userID int64) ([]entities.Message, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Message), args.Error(1)
}

func (m *ucMock) MessagesBySprintID(ctx context.Context, sprintID int64) ([]entities.Message, error) {
	args := m.Called(ctx, sprintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Message), args.Error(1)
}

func (m *ucMock) CreateMessage(ctx context.Context, userName, sprintCode string) (*entities.Message, error) {
	args := m.Called(ctx, userName, sprintCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Message), args.Error(1)
}

func newTestApp(uc *ucMock) *fiber.App {
	app := fiber.New()
	h := NewHandler(zap.NewNop().Sugar(), uc)
	h.Register(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGetUser(t *testing.T) {
	uc := &ucMock{}
	uc.On("UserByID", mock.Anything, int64(1)).Return(&entities.User{ID: 1, UserName: "User1"}, nil)

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodGet, "/users/1", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body api.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, int64(1), body.ID)
	require.Equal(t, "User1", body.UserName)
}

func TestGetUserNotFound(t *testing.T) {
	uc := &ucMock{}
	uc.On("UserByID", mock.Anything, int64(999)).Return(nil, entities.ErrUserNotFound)

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodGet, "/users/999", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Contains(t, body.Error.Message, "not found")
}

func TestGetUserInvalidID(t *testing.T) {
	uc := &ucMock{}

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodGet, "/users/abc", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	uc.AssertNotCalled(t, "UserByID", mock.Anything, mock.Anything)
}

func TestCreateUser(t *testing.T) {
	uc := &ucMock{}
	uc.On("CreateUser", mock.Anything, entities.UserInsert{UserName: "User1"}).
		Return(&entities.User{ID: 1, UserName: "User1"}, nil)

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodPost, "/users", `{"userName":"User1"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body api.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, int64(1), body.ID)
}

func TestCreateUserValidationNamesField(t *testing.T) {
	uc := &ucMock{}

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodPost, "/users", `{"userName":"x"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Contains(t, body.Error.Message, "userName")
	uc.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestCreateUserConflict(t *testing.T) {
	uc := &ucMock{}
	uc.On("CreateUser", mock.Anything, mock.Anything).Return(nil, entities.ErrUserExists)

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodPost, "/users", `{"userName":"User1"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPatchUserEmptyBodyKeepsRecord(t *testing.T) {
	uc := &ucMock{}
	uc.On("UpdateUser", mock.Anything, int64(1), entities.UserUpdate{}).
		Return(&entities.User{ID: 1, UserName: "User1"}, nil)

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodPatch, "/users/1", `{}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	uc.AssertExpectations(t)
}

func TestDeleteUser(t *testing.T) {
	uc := &ucMock{}
	uc.On("RemoveUser", mock.Anything, int64(1)).Return(&entities.User{ID: 1, UserName: "User1"}, nil)

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodDelete, "/users/1", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDeleteUserNotFound(t *testing.T) {
	uc := &ucMock{}
	uc.On("RemoveUser", mock.Anything, int64(999)).Return(nil, entities.ErrUserNotFound)

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodDelete, "/users/999", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPutTemplateUpserts(t *testing.T) {
	uc := &ucMock{}
	uc.On("ReplaceTemplate", mock.Anything, int64(5), entities.TemplateInsert{MessageTemplate: "Well done, champion!"}).
		Return(&entities.Template{ID: 5, MessageTemplate: "Well done, champion!"}, nil)

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodPut, "/templates/5", `{"messageTemplate":"Well done, champion!"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body api.Template
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, int64(5), body.ID)
	uc.AssertExpectations(t)
}

func TestPutTemplateRejectsMismatchedBodyID(t *testing.T) {
	uc := &ucMock{}

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodPut, "/templates/5", `{"id":6,"messageTemplate":"Well done, champion!"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	uc.AssertNotCalled(t, "ReplaceTemplate", mock.Anything, mock.Anything, mock.Anything)
}

func TestPutTemplateRejectsMissingFields(t *testing.T) {
	uc := &ucMock{}

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodPut, "/templates/5", `{}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateMessage(t *testing.T) {
	uc := &ucMock{}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	uc.On("CreateMessage", mock.Anything, "User1", "Sprint1").
		Return(&entities.Message{ID: 9, UserID: 1, TemplateID: 3, SprintID: 2, Timestamp: now}, nil)

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodPost, "/messages", `{"userName":"User1","sprintCode":"Sprint1"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body api.Message
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, int64(9), body.ID)
	require.Equal(t, int64(1), body.UserID)
	require.Equal(t, int64(2), body.SprintID)
	require.Equal(t, int64(3), body.TemplateID)
	require.Equal(t, "2024-05-01T12:00:00Z", body.Timestamp)
}

func TestCreateMessageUnknownUser(t *testing.T) {
	uc := &ucMock{}
	uc.On("CreateMessage", mock.Anything, "Ghost", "Sprint1").Return(nil, entities.ErrUserNotFound)

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodPost, "/messages", `{"userName":"Ghost","sprintCode":"Sprint1"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Contains(t, body.Error.Message, "not found")
}

func TestCreateMessageDependencyDown(t *testing.T) {
	uc := &ucMock{}
	uc.On("CreateMessage", mock.Anything, "User1", "Sprint1").
		Return(nil, entities.ErrDependencyUnavailable)

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodPost, "/messages", `{"userName":"User1","sprintCode":"Sprint1"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestListMessagesByUserNameFilter(t *testing.T) {
	uc := &ucMock{}
	uc.On("MessagesByUserName", mock.Anything, "User1").
		Return([]entities.Message{{ID: 1, UserID: 1, TemplateID: 3, SprintID: 2}}, nil)

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodGet, "/messages?userName=User1", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body []api.Message
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	require.Equal(t, int64(1), body[0].UserID)
	uc.AssertNotCalled(t, "Messages", mock.Anything)
}

func TestListMessagesUnknownSprintFilter(t *testing.T) {
	uc := &ucMock{}
	uc.On("MessagesBySprintCode", mock.Anything, "Ghost").Return(nil, entities.ErrSprintNotFound)

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodGet, "/messages?sprint=Ghost", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMessagesBySprintPath(t *testing.T) {
	uc := &ucMock{}
	uc.On("MessagesBySprintID", mock.Anything, int64(2)).
		Return([]entities.Message{{ID: 1, SprintID: 2}}, nil)

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodGet, "/messages/sprint/2", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	uc.AssertExpectations(t)
}

func TestMessagesByUserPath(t *testing.T) {
	uc := &ucMock{}
	uc.On("MessagesByUserID", mock.Anything, int64(1)).
		Return([]entities.Message{{ID: 1, UserID: 1}}, nil)

	app := newTestApp(uc)
	resp := doJSON(t, app, http.MethodGet, "/messages/1", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	uc.AssertExpectations(t)
}
