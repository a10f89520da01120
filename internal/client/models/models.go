// Package models defines the entities the client caches between loads.
// All of them are owned by the remote store; the structs here carry the
// wire representation used by the HTTP API.
package models

import "time"

// User is the identity a session is keyed by.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Team is a named collaboration group. ID is assigned by the store and is
// never set by the client.
type Team struct {
	ID          string `json:"id"`
	OwnerEmail  string `json:"ownerEmail"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Photo holds a self-describing data-URI image payload scoped to a team.
type Photo struct {
	ID         string    `json:"id"`
	TeamID     string    `json:"teamId"`
	ImageData  string    `json:"imageData"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Message is a chat entry. Messages are never edited or deleted.
type Message struct {
	ID          string    `json:"id"`
	TeamID      string    `json:"teamId"`
	SenderEmail string    `json:"senderEmail"`
	Text        string    `json:"text"`
	SentAt      time.Time `json:"sentAt"`
}

// Budget is the per-team accumulated monetary total.
type Budget struct {
	TeamID string  `json:"teamId"`
	Total  float64 `json:"total"`
}
