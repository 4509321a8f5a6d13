package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/homeledger/internal/client"
)

func TestLoginInstallsToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "maya", body["username"])
			assert.NotNil(t, body["location"])

			json.NewEncoder(w).Encode(client.Session{
				Token: "tok-123",
				User:  client.User{Name: "Maya", Email: "maya@example.com", Role: "admin"},
			})
		case "/accounts":
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode([]client.Account{})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := client.New(srv.URL)

	session, err := c.Login(context.Background(), "maya", "secret", &client.Location{Lat: 12.9, Lon: 77.5})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.Token)

	_, err = c.Accounts(context.Background())
	require.NoError(t, err)
}

func TestErrorMessageSurfacedVerbatim(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "You have read-only Access"})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	c.SetToken("tok")

	_, err := c.CreateAccount(context.Background(), client.CreateAccountParams{Name: "Wallet", Type: "wallet"})
	require.Error(t, err)
	assert.Equal(t, "You have read-only Access", err.Error())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestCheckBudgetQuery(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Groceries", q.Get("category"))
		assert.Equal(t, "300", q.Get("amount"))
		assert.Equal(t, "2025-03-15", q.Get("date"))

		overBy := int64(10000)
		json.NewEncoder(w).Encode(client.BudgetCheck{Status: "overBudget", OverBy: &overBy})
	}))
	defer srv.Close()

	c := client.New(srv.URL)

	check, err := c.CheckBudget(context.Background(), "Groceries", "", "300",
		time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "overBudget", check.Status)
	require.NotNil(t, check.OverBy)
	assert.Equal(t, int64(10000), *check.OverBy)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	store := client.NewSessionStore(path)

	session := &client.Session{
		Token:     "tok",
		User:      client.User{Name: "Maya", Email: "maya@example.com", Role: "viewer"},
		Household: client.Household{Name: "Home"},
	}
	require.NoError(t, store.Save(session))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, session, loaded)
	assert.True(t, loaded.User.ReadOnly())
}

func TestSessionStoreWipesGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := client.NewSessionStore(path)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSessionStoreRejectsUnknownRole(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	data, _ := json.Marshal(client.Session{
		Token: "tok",
		User:  client.User{Email: "x@example.com", Role: "superuser"},
	})
	require.NoError(t, os.WriteFile(path, data, 0o600))

	store := client.NewSessionStore(path)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMissingSessionIsNotAnError(t *testing.T) {
	t.Parallel()

	store := client.NewSessionStore(filepath.Join(t.TempDir(), "absent.json"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
