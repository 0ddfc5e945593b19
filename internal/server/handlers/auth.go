package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/bugtrack/internal/crypto"
	"github.com/iudanet/bugtrack/internal/models"
	"github.com/iudanet/bugtrack/internal/server/storage"
	"github.com/iudanet/bugtrack/internal/server/token"
	"github.com/iudanet/bugtrack/internal/validation"
	"github.com/iudanet/bugtrack/pkg/api"
)

// AuthHandler обрабатывает регистрацию и аутентификацию
type AuthHandler struct {
	logger *slog.Logger
	users  storage.UserStorage
	tokens *token.Service
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, users storage.UserStorage, tokens *token.Service) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		users:  users,
		tokens: tokens,
	}
}

// Register обрабатывает POST /register
// Создает пользователя и сразу выдает токен
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		writeText(w, http.StatusBadRequest, "Invalid Request")
		return
	}

	// Email нормализуется до любого lookup/insert; пустой пароль
	// допустим и хешируется как есть (совместимость с прежним поведением)
	email := validation.NormalizeEmail(req.Email)

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		writeServerError(h.logger, w)
		return
	}

	// Pre-check ради читаемого 409; настоящую гонку закрывает
	// UNIQUE constraint в хранилище
	if _, err := h.users.GetUserByEmail(ctx, email); err == nil {
		writeText(w, http.StatusConflict, "User Already Registered, Please Login")
		return
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		h.logger.ErrorContext(ctx, "failed to check existing user", slog.Any("error", err))
		writeServerError(h.logger, w)
		return
	}

	user := &models.User{
		ID:             uuid.New().String(),
		Email:          email,
		PasswordHash:   passwordHash,
		Role:           models.RoleDeveloper,
		DateRegistered: time.Now(),
		IPAddress:      ClientIP(r),
	}

	if err := h.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			writeText(w, http.StatusConflict, "User Already Registered, Please Login")
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		writeServerError(h.logger, w)
		return
	}

	tokenString, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue token", slog.Any("error", err))
		writeServerError(h.logger, w)
		return
	}

	h.logger.InfoContext(ctx, "user registered",
		slog.String("email", email),
		slog.String("user_id", user.ID))

	writeJSON(h.logger, w, http.StatusCreated, api.TokenResponse{
		Token: tokenString,
		Email: email,
	})
}

// Login обрабатывает POST /login
// Неизвестный email и неверный пароль дают одинаковый ответ,
// чтобы не позволять перечислять зарегистрированные адреса
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		writeText(w, http.StatusBadRequest, "Invalid Credentials")
		return
	}

	email := validation.NormalizeEmail(req.Email)

	user, err := h.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			writeText(w, http.StatusBadRequest, "Invalid Credentials")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		writeServerError(h.logger, w)
		return
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		writeText(w, http.StatusBadRequest, "Invalid Credentials")
		return
	}

	tokenString, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue token", slog.Any("error", err))
		writeServerError(h.logger, w)
		return
	}

	h.logger.InfoContext(ctx, "user logged in",
		slog.String("email", email),
		slog.String("user_id", user.ID))

	writeJSON(h.logger, w, http.StatusCreated, api.TokenResponse{
		Token: tokenString,
		Email: email,
	})
}

// IsUserAuth обрабатывает GET /isUserAuth
// Достижим только через auth middleware
func (h *AuthHandler) IsUserAuth(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "You are authenticated!")
}
