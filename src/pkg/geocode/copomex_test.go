package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotation-service/src/pkg/log"
)

func TestLookupResolvesAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query/info_cp/77500", r.URL.Path)
		assert.Equal(t, "test-token", r.URL.Query().Get("token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"error":false,"response":{"cp":"77500","asentamiento":"Centro","tipo_asentamiento":"Colonia","municipio":"Benito Juarez","estado":"Quintana Roo","ciudad":"Cancun","pais":"Mexico"}}]`))
	}))
	defer server.Close()

	client := NewCopomexClient(server.URL, "test-token", nil, log.Log{})

	address, err := client.Lookup(context.Background(), "77500")
	require.NoError(t, err)
	require.NotNil(t, address)
	assert.Equal(t, "77500", address.Zip)
	assert.Equal(t, "Benito Juarez", address.Municipality)
	assert.Equal(t, "Cancun", address.City)
}

func TestLookupUnknownZip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"error":true,"response":{}}]`))
	}))
	defer server.Close()

	client := NewCopomexClient(server.URL, "test-token", nil, log.Log{})

	address, err := client.Lookup(context.Background(), "99999")
	require.NoError(t, err)
	assert.Nil(t, address)
}

func TestLookupUpstreamFailureIsAMiss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewCopomexClient(server.URL, "test-token", nil, log.Log{})

	address, err := client.Lookup(context.Background(), "77500")
	require.NoError(t, err)
	assert.Nil(t, address)
}
