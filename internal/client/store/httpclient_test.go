package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"teamspace/internal/client/models"
)

func newServer(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewHTTPClient(srv.URL, 2*time.Second)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestAuthenticateSuccess(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ana@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(models.User{Email: "ana@example.com", Name: "Ana"})
	})

	user, err := c.Authenticate(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "Ana", user.Name)
}

func TestAuthenticateRejected(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	})

	_, err := c.Authenticate(context.Background(), "ana@example.com", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestTransportFailureMapsToUnavailable(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", 200*time.Millisecond)
	defer c.Close()

	_, err := c.ListTeams(context.Background(), "ana@example.com")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestApplicationErrorCarriesPayload(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "name required"})
	})

	_, err := c.CreateTeam(context.Background(), "", "", "ana@example.com")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Contains(t, apiErr.Message, "name required")
}

func TestListTeamsQuery(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/teams", r.URL.Path)
		require.Equal(t, "ana@example.com", r.URL.Query().Get("email"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"teams": []models.Team{{ID: "t1", Name: "Alpha"}},
		})
	})

	teams, err := c.ListTeams(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Equal(t, "Alpha", teams[0].Name)
}

func TestSaveMessageRoundTrip(t *testing.T) {
	sent := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var msg models.Message
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		msg.ID = "m-1"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": msg})
	})

	saved, err := c.SaveMessage(context.Background(), &models.Message{
		TeamID: "t1", SenderEmail: "ana@example.com", Text: "hola", SentAt: sent,
	})
	require.NoError(t, err)
	require.Equal(t, "m-1", saved.ID)
	require.True(t, saved.SentAt.Equal(sent))
}

func TestDeletePhotoNoContent(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/photos/p-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeletePhoto(context.Background(), "p-1"))
}

func TestAddToBudgetReturnsNewTotal(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]float64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_ = json.NewEncoder(w).Encode(models.Budget{TeamID: "t1", Total: 100 + body["delta"]})
	})

	total, err := c.AddToBudget(context.Background(), "t1", 20)
	require.NoError(t, err)
	require.InDelta(t, 120, total, 1e-9)
}
