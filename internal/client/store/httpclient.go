package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"teamspace/internal/client/models"
)

// HTTPClient talks JSON to the record store server: reads are parameterized
// GETs, writes are structured POST/DELETE payloads.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do issues the request and decodes a 2xx body into out (if out != nil).
// Transport failures map to ErrUnavailable, a 401 to ErrUnauthorized, a 404
// to ErrNotFound, and any other non-2xx to *APIError with the server's
// error payload.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding store response: %w", err)
		}
		return nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}

	var payload struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	if payload.Error == "" {
		payload.Error = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: payload.Error}
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}

func (c *HTTPClient) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/api/login", nil, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListTeams(ctx context.Context, email string) ([]models.Team, error) {
	var out struct {
		Teams []models.Team `json:"teams"`
	}
	q := url.Values{"email": {email}}
	if err := c.do(ctx, http.MethodGet, "/api/teams", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Teams, nil
}

func (c *HTTPClient) CreateTeam(ctx context.Context, name, description, ownerEmail string) (*models.Team, error) {
	body := map[string]string{
		"name":        name,
		"description": description,
		"ownerEmail":  ownerEmail,
	}
	var out struct {
		Team models.Team `json:"team"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/teams", nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Team, nil
}

func (c *HTTPClient) ListPhotos(ctx context.Context, teamID string) ([]models.Photo, error) {
	var out struct {
		Photos []models.Photo `json:"photos"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/teams/"+teamID+"/photos", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Photos, nil
}

func (c *HTTPClient) UploadPhoto(ctx context.Context, teamID, imageData string, uploadedAt time.Time) (*models.Photo, error) {
	body := map[string]any{
		"teamId":     teamID,
		"imageData":  imageData,
		"uploadedAt": uploadedAt,
	}
	var out struct {
		Photo models.Photo `json:"photo"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/photos", nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Photo, nil
}

func (c *HTTPClient) DeletePhoto(ctx context.Context, photoID string) error {
	return c.do(ctx, http.MethodDelete, "/api/photos/"+photoID, nil, nil, nil)
}

func (c *HTTPClient) ListMessages(ctx context.Context, teamID string) ([]models.Message, error) {
	var out struct {
		Messages []models.Message `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/teams/"+teamID+"/messages", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

func (c *HTTPClient) SaveMessage(ctx context.Context, msg *models.Message) (*models.Message, error) {
	var out struct {
		Message models.Message `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/messages", nil, msg, &out); err != nil {
		return nil, err
	}
	return &out.Message, nil
}

func (c *HTTPClient) Budget(ctx context.Context, teamID string) (float64, error) {
	var out models.Budget
	if err := c.do(ctx, http.MethodGet, "/api/teams/"+teamID+"/budget", nil, nil, &out); err != nil {
		return 0, err
	}
	return out.Total, nil
}

func (c *HTTPClient) AddToBudget(ctx context.Context, teamID string, delta float64) (float64, error) {
	body := map[string]float64{"delta": delta}
	var out models.Budget
	if err := c.do(ctx, http.MethodPost, "/api/teams/"+teamID+"/budget", nil, body, &out); err != nil {
		return 0, err
	}
	return out.Total, nil
}
