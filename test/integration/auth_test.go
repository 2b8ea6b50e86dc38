package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func postJSON(t *testing.T, app *TestApp, path string, body any, bearer string) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, app.Server.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodePair(t *testing.T, resp *http.Response) tokenPairResponse {
	t.Helper()
	defer resp.Body.Close()
	var pair tokenPairResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pair))
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	return pair
}

func TestAuthFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	// Register
	resp := postJSON(t, app, "/api/auth/register", map[string]string{
		"username": "alice", "password": "alice-password",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Login with bad password is rejected
	resp = postJSON(t, app, "/api/auth/login", map[string]string{
		"username": "alice", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Login
	resp = postJSON(t, app, "/api/auth/login", map[string]string{
		"username": "alice", "password": "alice-password",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pair0 := decodePair(t, resp)

	// Refresh rotates
	resp = postJSON(t, app, "/api/auth/refresh", map[string]string{"refreshToken": pair0.RefreshToken}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pair1 := decodePair(t, resp)
	assert.NotEqual(t, pair0.RefreshToken, pair1.RefreshToken)

	// Reusing the rotated-away token is rejected
	resp = postJSON(t, app, "/api/auth/refresh", map[string]string{"refreshToken": pair0.RefreshToken}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// The new token still works
	resp = postJSON(t, app, "/api/auth/refresh", map[string]string{"refreshToken": pair1.RefreshToken}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pair2 := decodePair(t, resp)

	// Logout clears the slot
	resp = postJSON(t, app, "/api/auth/logout", nil, pair2.AccessToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/api/auth/refresh", map[string]string{"refreshToken": pair2.RefreshToken}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	for _, path := range []string{"/api/users/", "/api/positions/"} {
		req, err := http.NewRequest(http.MethodGet, app.Server.URL+path, nil)
		require.NoError(t, err)

		resp, err := app.Client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, fmt.Sprintf("path %s", path))
		resp.Body.Close()
	}
}
