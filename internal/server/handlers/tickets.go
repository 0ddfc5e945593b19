package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/bugtrack/internal/models"
	"github.com/iudanet/bugtrack/internal/server/storage"
	"github.com/iudanet/bugtrack/pkg/api"
)

// TicketHandler обрабатывает маршруты тикетов.
// Достижим только через auth middleware.
type TicketHandler struct {
	logger  *slog.Logger
	tickets storage.TicketStorage
}

// NewTicketHandler создает новый handler тикетов
func NewTicketHandler(logger *slog.Logger, tickets storage.TicketStorage) *TicketHandler {
	return &TicketHandler{
		logger:  logger,
		tickets: tickets,
	}
}

// CreateTicket обрабатывает POST /createTicket
func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode ticket request", slog.Any("error", err))
		writeText(w, http.StatusBadRequest, "Invalid Request")
		return
	}

	author, ok := GetEmail(ctx)
	if !ok {
		writeText(w, http.StatusUnauthorized, "No Token Found!")
		return
	}

	ticket := &models.Ticket{
		ID:            uuid.New().String(),
		Title:         req.Title,
		Description:   req.Description,
		Project:       req.Project,
		TicketAuthor:  author,
		Priority:      req.Priority,
		Status:        models.StatusNew,
		Type:          req.Type,
		EstimatedTime: req.EstimatedTime,
		AssignedDevs:  []string{},
		Comments:      []models.Comment{},
		CreatedAt:     time.Now(),
	}

	if err := h.tickets.CreateTicket(ctx, ticket); err != nil {
		h.logger.ErrorContext(ctx, "failed to create ticket", slog.Any("error", err))
		writeServerError(h.logger, w)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, "Succesfully Added a New Ticket")
}

// GetAllTickets обрабатывает GET /getAllTickets
func (h *TicketHandler) GetAllTickets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tickets, err := h.tickets.ListTickets(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list tickets", slog.Any("error", err))
		writeServerError(h.logger, w)
		return
	}

	if len(tickets) == 0 {
		writeJSON(h.logger, w, http.StatusOK, "No Documents Found")
		return
	}

	writeJSON(h.logger, w, http.StatusOK, tickets)
}

// UpdateStatus обрабатывает POST /updateStatus
func (h *TicketHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode status request", slog.Any("error", err))
		writeText(w, http.StatusBadRequest, "Invalid Request")
		return
	}

	if err := h.tickets.UpdateStatus(ctx, req.ID, req.Status); err != nil {
		h.ticketError(ctx, w, "failed to update status", err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, "Succesfully Updated Status")
}

// AddDevs обрабатывает POST /addDevs
func (h *TicketHandler) AddDevs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.AddDevsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode devs request", slog.Any("error", err))
		writeText(w, http.StatusBadRequest, "Invalid Request")
		return
	}

	if err := h.tickets.AddDev(ctx, req.ID, req.NewDev); err != nil {
		h.ticketError(ctx, w, "failed to add dev", err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, "Succesfully Added Devs to Ticket")
}

// AddComment обрабатывает POST /addComment
// Автор комментария берется из верифицированных claims
func (h *TicketHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode comment request", slog.Any("error", err))
		writeText(w, http.StatusBadRequest, "Invalid Request")
		return
	}

	author, ok := GetEmail(ctx)
	if !ok {
		writeText(w, http.StatusUnauthorized, "No Token Found!")
		return
	}

	comment := models.Comment{
		Author:  author,
		Comment: req.Comment,
	}

	if err := h.tickets.AddComment(ctx, req.ID, comment); err != nil {
		h.ticketError(ctx, w, "failed to add comment", err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, "Succesfully Added Comment to Ticket")
}

// ticketError маппит ошибки хранилища тикетов в HTTP ответ
func (h *TicketHandler) ticketError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	if errors.Is(err, storage.ErrTicketNotFound) {
		writeText(w, http.StatusNotFound, "Ticket Not Found")
		return
	}
	h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
	writeServerError(h.logger, w)
}
