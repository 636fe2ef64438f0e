package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpError "quotation-service/src/pkg/http-error"
)

func performRequest(t *testing.T, handler fiber.Handler) (int, Envelope) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	return resp.StatusCode, envelope
}

func TestResponseEnvelope(t *testing.T) {
	status, envelope := performRequest(t, func(ctx *fiber.Ctx) error {
		return Response(map[string]string{"ok": "yes"}, "Listado", "Los datos se obtuvieron correctamente", fiber.StatusOK, ctx)
	})

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Exitoso", envelope.Type)
	assert.Equal(t, "Listado", envelope.Title)
	assert.NotNil(t, envelope.Data)
	assert.Nil(t, envelope.Errors)
}

func TestResponseErrorKnownError(t *testing.T) {
	status, envelope := performRequest(t, func(ctx *fiber.Ctx) error {
		return ResponseError(httpError.NewNotFound(), ctx)
	})

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Error", envelope.Type)
	assert.Equal(t, "Recurso no encontrado", envelope.Title)
	assert.NotNil(t, envelope.Errors)
}

func TestResponseErrorFiberErrorKeepsStatus(t *testing.T) {
	status, envelope := performRequest(t, func(ctx *fiber.Ctx) error {
		return ResponseError(fiber.ErrMethodNotAllowed, ctx)
	})

	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, "Error", envelope.Type)
	assert.Equal(t, "Error en la solicitud", envelope.Title)
}

func TestResponseErrorUnknownErrorDefaultsToServerError(t *testing.T) {
	status, envelope := performRequest(t, func(ctx *fiber.Ctx) error {
		return ResponseError(errors.New("boom"), ctx)
	})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Error de sevidor", envelope.Title)
}
