package config

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmatchedRouteKeepsRouterStatus(t *testing.T) {
	app := NewFiber(viper.New())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/no-such-route", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "Error", envelope["type"])
	assert.Equal(t, "Error en la solicitud", envelope["title"])
}
