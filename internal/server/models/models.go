// Package models defines the record store's entities and request/response
// payloads.
package models

import "time"

type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Team struct {
	ID          string    `json:"id"`
	OwnerEmail  string    `json:"ownerEmail"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Photo struct {
	ID         string    `json:"id"`
	TeamID     string    `json:"teamId"`
	ImageData  string    `json:"imageData"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type Message struct {
	ID          string    `json:"id"`
	TeamID      string    `json:"teamId"`
	SenderEmail string    `json:"senderEmail"`
	Text        string    `json:"text"`
	SentAt      time.Time `json:"sentAt"`
}

type Budget struct {
	TeamID string  `json:"teamId"`
	Total  float64 `json:"total"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerEmail  string `json:"ownerEmail"`
}

type UploadPhotoRequest struct {
	TeamID     string    `json:"teamId"`
	ImageData  string    `json:"imageData"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type SaveMessageRequest struct {
	TeamID      string    `json:"teamId"`
	SenderEmail string    `json:"senderEmail"`
	Text        string    `json:"text"`
	SentAt      time.Time `json:"sentAt"`
}

type AddBudgetRequest struct {
	Delta float64 `json:"delta"`
}
