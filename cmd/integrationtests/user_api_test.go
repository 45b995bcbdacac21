package integrationtests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserRegistrationAndLogin(t *testing.T) {
	router := SetupTestRouter()

	register := map[string]any{
		"username":         "alice",
		"email":            "alice@example.com",
		"password":         "password123",
		"confirm_password": "password123",
	}

	w := ExecuteRequest(t, router, http.MethodPost, "/api/users/register", register, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := ResponseData(t, w)
	require.NotEmpty(t, data["user_id"])
	require.Equal(t, "alice", data["username"])
	// the hash never leaves the backend
	require.NotContains(t, w.Body.String(), "password123")

	t.Run("duplicate_email_rejected", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodPost, "/api/users/register", register, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "user already exists")
	})

	t.Run("password_mismatch_rejected", func(t *testing.T) {
		bad := map[string]any{
			"username":         "mallory",
			"email":            "mallory@example.com",
			"password":         "password123",
			"confirm_password": "password321",
		}
		w := ExecuteRequest(t, router, http.MethodPost, "/api/users/register", bad, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login_wrong_password", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodPost, "/api/users/login", map[string]any{
			"email":    "alice@example.com",
			"password": "wrong-password",
		}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "invalid email or password")
	})

	t.Run("login_unknown_email", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodPost, "/api/users/login", map[string]any{
			"email":    "nobody@example.com",
			"password": "password123",
		}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "invalid email or password")
	})

	t.Run("login_and_profile", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodPost, "/api/users/login", map[string]any{
			"email":    "alice@example.com",
			"password": "password123",
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		token := ResponseData(t, w)["token"].(string)
		require.NotEmpty(t, token)

		w = ExecuteRequest(t, router, http.MethodGet, "/api/users/profile", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, "alice", ResponseData(t, w)["username"])
	})

	t.Run("profile_requires_token", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodGet, "/api/users/profile", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("email_is_case_insensitive", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodPost, "/api/users/login", map[string]any{
			"email":    "Alice@Example.com",
			"password": "password123",
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}
