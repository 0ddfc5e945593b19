package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/bugtrack/internal/server/storage"
)

// SecurityHandler обрабатывает advisory проверку бана по IP
type SecurityHandler struct {
	logger *slog.Logger
	bans   storage.BanStorage
}

// NewSecurityHandler создает новый handler проверки бана
func NewSecurityHandler(logger *slog.Logger, bans storage.BanStorage) *SecurityHandler {
	return &SecurityHandler{
		logger: logger,
		bans:   bans,
	}
}

// UserSecurity обрабатывает GET /userSecurity
// Единственная точка, где проверяется бан: уже выданный токен
// продолжает действовать до истечения даже после бана IP
// (enforcement advisory/pre-session, осознанный gap).
func (h *SecurityHandler) UserSecurity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ip := ClientIP(r)

	banned, err := h.bans.IsBanned(ctx, ip)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to check ban", slog.Any("error", err))
		writeServerError(h.logger, w)
		return
	}

	if banned {
		h.logger.WarnContext(ctx, "banned ip probed security endpoint", slog.String("ip", ip))
		writeText(w, http.StatusBadRequest, "You are Banned")
		return
	}

	writeText(w, http.StatusCreated, "Valid Credentials")
}
