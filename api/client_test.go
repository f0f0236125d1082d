package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZeyadMahfouzz/supermarket-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error_field", `{"error":"Insufficient stock for Milk. Only 2 available"}`, "Insufficient stock for Milk. Only 2 available"},
		{"message_field", `{"message":"Cart is empty"}`, "Cart is empty"},
		{"error_wins_over_message", `{"error":"Item not found","message":"ignored"}`, "Item not found"},
		{"empty_body", ``, msgRequestRejected},
		{"not_json", `<html>bad gateway</html>`, msgRequestRejected},
		{"empty_fields", `{"error":"","message":""}`, msgRequestRejected},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractMessage([]byte(tc.body)))
		})
	}
}

func TestBusinessErrorCarriesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Insufficient stock for Milk. Only 2 available"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Cart.AddItem(1, 5)

	require.Error(t, err)
	assert.True(t, IsBusiness(err))
	assert.Equal(t, "Insufficient stock for Milk. Only 2 available", err.Error(), "business rejections surface verbatim")
}

func TestServerErrorsHideDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "java.lang.NullPointerException at CartService.java:42", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Cart.Get()

	require.Error(t, err)
	assert.False(t, IsBusiness(err))
	assert.Equal(t, msgTryAgainLater, err.Error(), "5xx detail must never reach the user")
}

func TestNetworkFailureIsTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	_, err := client.Items.List()

	require.Error(t, err)
	assert.False(t, IsBusiness(err))
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, msgTryAgainLater, err.Error())
}

func TestUnauthorizedClearsSessionAndFiresHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetSession(models.Session{Token: "stale", UserID: 7, Role: models.RoleUser})

	hookFired := false
	client.OnUnauthorized(func() { hookFired = true })

	_, err := client.Orders.History()

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, msgSessionExpired, err.Error())
	assert.True(t, hookFired, "401 must fire the unauthorized hook")
	assert.Empty(t, client.Session().Token, "401 must clear the held session")
}

func TestRequestsCarryIdentityHeaders(t *testing.T) {
	var authorization, userID, role string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		userID = r.Header.Get("X-User-Id")
		role = r.Header.Get("X-User-Role")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cartId":1,"userId":7,"items":[],"totalPrice":0}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetSession(models.Session{Token: "abc123", UserID: 7, Role: models.RoleAdmin})

	_, err := client.Cart.Get()
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc123", authorization)
	assert.Equal(t, "7", userID)
	assert.Equal(t, "ADMIN", role)
}

func TestAnonymousRequestsOmitIdentityHeaders(t *testing.T) {
	var hasAuthorization bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuthorization = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Items.List()
	require.NoError(t, err)

	assert.False(t, hasAuthorization, "no session means no Authorization header")
}

func TestLoginFailsOnMissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Account locked"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	token, err := client.Auth.Login("user@example.com", "password123")

	require.Error(t, err)
	assert.Empty(t, token)
	assert.True(t, IsBusiness(err))
	assert.Equal(t, "Account locked", err.Error())
}
