package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIVersion(t *testing.T) {
	webApp := CreateServer()

	request := httptest.NewRequest(http.MethodGet, "/core/version", nil)
	response, err := webApp.Test(request)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, response.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.Equal(t, "1", body["version"])
}

func TestAdminUpdateRoutesRegistered(t *testing.T) {
	webApp := CreateServer()

	patchable := map[string]bool{}
	for _, route := range webApp.GetRoutes() {
		if route.Method == http.MethodPatch {
			patchable[route.Path] = true
		}
	}

	assert.True(t, patchable["/core/banners/:identifier"])
	assert.True(t, patchable["/core/featured/:identifier"])
	assert.True(t, patchable["/core/systems/:identifier"])
}

func TestUnknownRoute(t *testing.T) {
	webApp := CreateServer()

	request := httptest.NewRequest(http.MethodGet, "/core/nothing-here", nil)
	response, err := webApp.Test(request)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}
