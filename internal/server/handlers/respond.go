package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON пишет JSON ответ с заданным статусом.
// v может быть и голой строкой: часть маршрутов отвечает
// JSON-кодированной строкой ради совместимости со старыми клиентами.
func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeText пишет plain-text ответ с заданным статусом
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// writeServerError пишет generic 500 не раскрывая внутренних деталей
func writeServerError(logger *slog.Logger, w http.ResponseWriter) {
	writeJSON(logger, w, http.StatusInternalServerError, map[string]any{
		"ok":      false,
		"message": "Server error",
	})
}
