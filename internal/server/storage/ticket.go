package storage

import (
	"context"

	"github.com/iudanet/bugtrack/internal/models"
)

// TicketStorage defines interface for ticket persistence
type TicketStorage interface {
	// CreateTicket stores a new ticket
	CreateTicket(ctx context.Context, ticket *models.Ticket) error

	// ListTickets returns all tickets with assigned devs and comments,
	// ordered by creation time
	ListTickets(ctx context.Context) ([]*models.Ticket, error)

	// UpdateStatus changes the status of an existing ticket.
	// Returns ErrTicketNotFound if ticket doesn't exist
	UpdateStatus(ctx context.Context, ticketID, status string) error

	// AddDev appends a developer to the ticket's assignee list.
	// Returns ErrTicketNotFound if ticket doesn't exist
	AddDev(ctx context.Context, ticketID, dev string) error

	// AddComment appends a comment to the ticket.
	// Returns ErrTicketNotFound if ticket doesn't exist
	AddComment(ctx context.Context, ticketID string, comment models.Comment) error
}
