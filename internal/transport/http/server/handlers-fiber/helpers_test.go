package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sprint-accomplishments/internal/api"
	"sprint-accomplishments/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorNotFoundMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrUserNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "user not found", body.Error.Message)
}

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "validation",
			err:     fmt.Errorf("%w: userName must be 2-32 characters", entities.ErrInvalidArgument),
			status:  http.StatusBadRequest,
			message: "invalid argument: userName must be 2-32 characters",
		},
		{
			name:    "sprint not found",
			err:     entities.ErrSprintNotFound,
			status:  http.StatusNotFound,
			message: "sprint not found",
		},
		{
			name:    "user conflict",
			err:     entities.ErrUserExists,
			status:  http.StatusConflict,
			message: "userName already exists",
		},
		{
			name:    "sprint conflict",
			err:     entities.ErrSprintExists,
			status:  http.StatusConflict,
			message: "sprintCode already exists",
		},
		{
			name:    "referenced",
			err:     entities.ErrReferenced,
			status:  http.StatusConflict,
			message: "entity is referenced by existing messages",
		},
		{
			name:    "dependency",
			err:     fmt.Errorf("%w: gif provider", entities.ErrDependencyUnavailable),
			status:  http.StatusBadGateway,
			message: "dependency unavailable: gif provider",
		},
		{
			name:    "unknown",
			err:     fmt.Errorf("disk on fire"),
			status:  http.StatusInternalServerError,
			message: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.message, body.Error.Message)
		})
	}
}
