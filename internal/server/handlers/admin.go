package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/bugtrack/internal/server/storage"
	"github.com/iudanet/bugtrack/pkg/api"
)

// AdminHandler обрабатывает административные маршруты.
// Достижим только через auth + admin middleware.
type AdminHandler struct {
	logger *slog.Logger
	users  storage.UserStorage
	bans   storage.BanStorage
}

// NewAdminHandler создает новый handler административных операций
func NewAdminHandler(logger *slog.Logger, users storage.UserStorage, bans storage.BanStorage) *AdminHandler {
	return &AdminHandler{
		logger: logger,
		users:  users,
		bans:   bans,
	}
}

// GetUsers обрабатывает GET /getUsers
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.users.ListUsers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list users", slog.Any("error", err))
		writeServerError(h.logger, w)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, users)
}

// BanUser обрабатывает POST /banUser
// Добавляет IP в ban registry; повторный бан не ошибка
func (h *AdminHandler) BanUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.BanUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode ban request", slog.Any("error", err))
		writeText(w, http.StatusBadRequest, "Invalid Request")
		return
	}

	// Ключ в registry всегда нормализованная форма: без Unmap бан,
	// выданный как ::ffff:x.x.x.x, никогда не совпал бы с peer адресом
	ip := normalizeIP(req.IP)

	if err := h.bans.Ban(ctx, ip); err != nil {
		h.logger.ErrorContext(ctx, "failed to ban ip", slog.Any("error", err))
		writeServerError(h.logger, w)
		return
	}

	admin, _ := GetEmail(ctx)
	h.logger.InfoContext(ctx, "ip banned",
		slog.String("ip", ip),
		slog.String("banned_by", admin))

	writeJSON(h.logger, w, http.StatusOK, "Succesfully Banned User")
}
