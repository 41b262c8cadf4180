package identity_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scoutline-backend/pkg/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	t.Run("Should map the provider user to the domain shape", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/users/user_abc", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "user_abc",
				"first_name": "Ada",
				"last_name": "Okoro",
				"public_metadata": {"role": "club"},
				"primary_email_address_id": "em_2",
				"email_addresses": [
					{"id": "em_1", "email_address": "old@example.com"},
					{"id": "em_2", "email_address": "ada@example.com"}
				]
			}`))
		}))
		defer srv.Close()

		client := identity.NewClient(srv.URL, "sk_test_123")
		user, err := client.GetUser(context.Background(), "user_abc")
		require.NoError(t, err)

		assert.Equal(t, "user_abc", user.ID)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, "club", user.Role())
	})

	t.Run("Should treat a provider 404 as unauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := identity.NewClient(srv.URL, "sk_test_123")
		_, err := client.GetUser(context.Background(), "user_missing")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not found")
	})
}

func TestSetUserRole(t *testing.T) {
	t.Run("Should PATCH the role into public metadata", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/v1/users/user_abc/metadata", r.URL.Path)

			var body struct {
				PublicMetadata map[string]string `json:"public_metadata"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "agent", body.PublicMetadata["role"])

			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := identity.NewClient(srv.URL, "sk_test_123")
		assert.NoError(t, client.SetUserRole(context.Background(), "user_abc", "agent"))
	})

	t.Run("Should surface provider error messages", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errors":[{"message":"Invalid secret key"}]}`))
		}))
		defer srv.Close()

		client := identity.NewClient(srv.URL, "bad_key")
		err := client.SetUserRole(context.Background(), "user_abc", "agent")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid secret key")
	})
}
