// Package handlers exposes the record store over HTTP/JSON.
package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"teamspace/internal/logging"
	"teamspace/internal/server/models"
	"teamspace/internal/server/storage"
)

// Handler answers the record store API. It depends on the repository
// interfaces, not on the database directly, so tests can swap in fakes.
type Handler struct {
	users    storage.UserRepository
	teams    storage.TeamRepository
	photos   storage.PhotoRepository
	messages storage.MessageRepository
	budgets  storage.BudgetRepository
	logger   logging.Logger
}

func New(users storage.UserRepository, teams storage.TeamRepository, photos storage.PhotoRepository,
	messages storage.MessageRepository, budgets storage.BudgetRepository, logger logging.Logger) *Handler {
	return &Handler{
		users:    users,
		teams:    teams,
		photos:   photos,
		messages: messages,
		budgets:  budgets,
		logger:   logger,
	}
}

// Register mounts every route on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", h.Health)

	api := app.Group("/api")
	api.Post("/login", h.Login)
	api.Post("/users", h.CreateUser)
	api.Get("/teams", h.ListTeams)
	api.Post("/teams", h.CreateTeam)
	api.Get("/teams/:id/photos", h.ListPhotos)
	api.Post("/photos", h.UploadPhoto)
	api.Delete("/photos/:id", h.DeletePhoto)
	api.Get("/teams/:id/messages", h.ListMessages)
	api.Post("/messages", h.SaveMessage)
	api.Get("/teams/:id/budget", h.GetBudget)
	api.Post("/teams/:id/budget", h.AddToBudget)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	user, err := h.users.GetByEmail(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
		}
		h.logger.Error(c.Context(), "login lookup failed", "email", req.Email, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	return c.JSON(user)
}

// CreateUser provisions an account. The client has no registration flow, so
// this is an admin-facing endpoint.
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error(c.Context(), "hashing password failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}
	if err := h.users.Create(c.Context(), user); err != nil {
		if errors.Is(err, storage.ErrExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "user already exists"})
		}
		h.logger.Error(c.Context(), "creating user failed", "email", req.Email, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *Handler) ListTeams(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email is required"})
	}

	teams, err := h.teams.ListByOwner(c.Context(), email)
	if err != nil {
		h.logger.Error(c.Context(), "listing teams failed", "email", email, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(fiber.Map{"teams": teams})
}

func (h *Handler) CreateTeam(c *fiber.Ctx) error {
	var req models.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "team name is required"})
	}
	if req.OwnerEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ownerEmail is required"})
	}

	team := &models.Team{
		OwnerEmail:  req.OwnerEmail,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.teams.Create(c.Context(), team); err != nil {
		h.logger.Error(c.Context(), "creating team failed", "name", req.Name, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"team": team})
}

func (h *Handler) ListPhotos(c *fiber.Ctx) error {
	teamID := c.Params("id")

	photos, err := h.photos.ListByTeam(c.Context(), teamID)
	if err != nil {
		h.logger.Error(c.Context(), "listing photos failed", "teamId", teamID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(fiber.Map{"photos": photos})
}

func (h *Handler) UploadPhoto(c *fiber.Ctx) error {
	var req models.UploadPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.TeamID == "" || req.ImageData == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "teamId and imageData are required"})
	}

	uploadedAt := req.UploadedAt
	if uploadedAt.IsZero() {
		uploadedAt = time.Now().UTC()
	}

	photo := &models.Photo{
		ID:         uuid.NewString(),
		TeamID:     req.TeamID,
		ImageData:  req.ImageData,
		UploadedAt: uploadedAt,
	}
	if err := h.photos.Create(c.Context(), photo); err != nil {
		h.logger.Error(c.Context(), "saving photo failed", "teamId", req.TeamID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"photo": photo})
}

func (h *Handler) DeletePhoto(c *fiber.Ctx) error {
	photoID := c.Params("id")

	if err := h.photos.Delete(c.Context(), photoID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "photo not found"})
		}
		h.logger.Error(c.Context(), "deleting photo failed", "photoId", photoID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ListMessages(c *fiber.Ctx) error {
	teamID := c.Params("id")

	messages, err := h.messages.ListByTeam(c.Context(), teamID)
	if err != nil {
		h.logger.Error(c.Context(), "listing messages failed", "teamId", teamID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(fiber.Map{"messages": messages})
}

func (h *Handler) SaveMessage(c *fiber.Ctx) error {
	var req models.SaveMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.TeamID == "" || req.SenderEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "teamId and senderEmail are required"})
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message text is required"})
	}

	sentAt := req.SentAt
	if sentAt.IsZero() {
		sentAt = time.Now().UTC()
	}

	msg := &models.Message{
		ID:          uuid.NewString(),
		TeamID:      req.TeamID,
		SenderEmail: req.SenderEmail,
		Text:        req.Text,
		SentAt:      sentAt,
	}
	if err := h.messages.Create(c.Context(), msg); err != nil {
		h.logger.Error(c.Context(), "saving message failed", "teamId", req.TeamID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": msg})
}

func (h *Handler) GetBudget(c *fiber.Ctx) error {
	teamID := c.Params("id")

	budget, err := h.budgets.Get(c.Context(), teamID)
	if err != nil {
		h.logger.Error(c.Context(), "reading budget failed", "teamId", teamID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(budget)
}

func (h *Handler) AddToBudget(c *fiber.Ctx) error {
	teamID := c.Params("id")

	var req models.AddBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.Delta < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "delta must not be negative"})
	}

	budget, err := h.budgets.Add(c.Context(), teamID, req.Delta)
	if err != nil {
		h.logger.Error(c.Context(), "incrementing budget failed", "teamId", teamID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(budget)
}
