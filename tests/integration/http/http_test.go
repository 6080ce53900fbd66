package http

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/indianiiot/telemetry-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, payload any, cookies ...*http.Cookie) *http.Response {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func getWithToken(t *testing.T, url, access string) *http.Response {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func registerUser(t *testing.T, baseURL, email, password string) uuid.UUID {
	resp := postJSON(
		t, baseURL+"/api/v1/users", map[string]any{
			"email":    email,
			"password": password,
			"fullName": "Test User",
		},
	)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	res := &struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(res))
	require.NotEqual(t, uuid.Nil, res.Data.ID)

	return res.Data.ID
}

func login(t *testing.T, baseURL, email, password string) (access, refresh string) {
	resp := postJSON(
		t, baseURL+"/api/v1/auth/jwt", map[string]any{
			"email":    email,
			"password": password,
		},
	)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, c := range resp.Cookies() {
		switch c.Name {
		case config.AccessCookieName:
			access = c.Value
		case config.RefreshCookieName:
			refresh = c.Value
		}
	}
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	return access, refresh
}

func TestUserAndAuthFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	baseURL, _, cleanup := setupTestServer()
	defer cleanup(t)

	email := fmt.Sprintf("user-%s@example.com", uuid.New().String())
	password := "password123"

	t.Run("Health endpoint", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Exists is false before registration", func(t *testing.T) {
		resp := postJSON(t, baseURL+"/api/v1/users/exists", map[string]any{"email": email})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		res := &struct {
			Data struct {
				Exists bool `json:"exists"`
			} `json:"data"`
		}{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(res))
		assert.False(t, res.Data.Exists)
	})

	t.Run("Register user", func(t *testing.T) {
		registerUser(t, baseURL, email, password)
	})

	t.Run("Duplicate registration conflicts", func(t *testing.T) {
		resp := postJSON(
			t, baseURL+"/api/v1/users", map[string]any{
				"email":    email,
				"password": password,
			},
		)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Exists is true after registration", func(t *testing.T) {
		resp := postJSON(t, baseURL+"/api/v1/users/exists", map[string]any{"email": email})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		res := &struct {
			Data struct {
				Exists bool `json:"exists"`
			} `json:"data"`
		}{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(res))
		assert.True(t, res.Data.Exists)
	})

	t.Run("Login with wrong password fails", func(t *testing.T) {
		resp := postJSON(
			t, baseURL+"/api/v1/auth/jwt", map[string]any{
				"email":    email,
				"password": "wrong-password",
			},
		)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	access, refresh := "", ""
	t.Run("Login sets cookies", func(t *testing.T) {
		access, refresh = login(t, baseURL, email, password)
	})

	t.Run("GetMe returns profile", func(t *testing.T) {
		resp := getWithToken(t, baseURL+"/api/v1/users/me", access)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		res := &struct {
			Data struct {
				Email string `json:"email"`
			} `json:"data"`
		}{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(res))
		assert.Equal(t, email, res.Data.Email)
	})

	t.Run("GetMe without token is unauthorized", func(t *testing.T) {
		resp := getWithToken(t, baseURL+"/api/v1/users/me", "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Refresh rotates the token pair", func(t *testing.T) {
		resp := postJSON(
			t, baseURL+"/api/v1/auth/jwt/refresh", nil,
			&http.Cookie{Name: config.RefreshCookieName, Value: refresh},
		)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		rotated := ""
		for _, c := range resp.Cookies() {
			if c.Name == config.RefreshCookieName {
				rotated = c.Value
			}
		}
		require.NotEmpty(t, rotated)

		// the old refresh token was revoked by the rotation
		resp = postJSON(
			t, baseURL+"/api/v1/auth/jwt/refresh", nil,
			&http.Cookie{Name: config.RefreshCookieName, Value: refresh},
		)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		refresh = rotated
	})

	t.Run("Logout revokes refresh tokens", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/auth/logout", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+access)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		after := postJSON(
			t, baseURL+"/api/v1/auth/jwt/refresh", nil,
			&http.Cookie{Name: config.RefreshCookieName, Value: refresh},
		)
		defer after.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, after.StatusCode)
	})
}
