package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/bugtrack/internal/models"
	"github.com/iudanet/bugtrack/internal/server/storage"
)

// CreateTicket stores a new ticket together with any pre-assigned
// devs and comments (normally both empty at creation).
func (s *Storage) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	query := `
		INSERT INTO tickets (id, title, description, project, ticket_author,
			priority, status, type, estimated_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, query,
		ticket.ID,
		ticket.Title,
		ticket.Description,
		ticket.Project,
		ticket.TicketAuthor,
		ticket.Priority,
		ticket.Status,
		ticket.Type,
		ticket.EstimatedTime,
		ticket.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}

	for _, dev := range ticket.AssignedDevs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ticket_devs (ticket_id, dev, added_at) VALUES (?, ?, ?)`,
			ticket.ID, dev, ticket.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert ticket dev: %w", err)
		}
	}

	for _, c := range ticket.Comments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ticket_comments (ticket_id, author, comment, created_at) VALUES (?, ?, ?, ?)`,
			ticket.ID, c.Author, c.Comment, ticket.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert ticket comment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ticket: %w", err)
	}

	return nil
}

// ListTickets returns all tickets with assigned devs and comments
func (s *Storage) ListTickets(ctx context.Context) ([]*models.Ticket, error) {
	query := `
		SELECT id, title, description, project, ticket_author,
			priority, status, type, estimated_time, created_at
		FROM tickets
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*models.Ticket
	byID := make(map[string]*models.Ticket)

	for rows.Next() {
		ticket := &models.Ticket{
			AssignedDevs: []string{},
			Comments:     []models.Comment{},
		}
		if err := rows.Scan(
			&ticket.ID,
			&ticket.Title,
			&ticket.Description,
			&ticket.Project,
			&ticket.TicketAuthor,
			&ticket.Priority,
			&ticket.Status,
			&ticket.Type,
			&ticket.EstimatedTime,
			&ticket.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
		byID[ticket.ID] = ticket
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tickets: %w", err)
	}

	if len(tickets) == 0 {
		return tickets, nil
	}

	if err := s.loadDevs(ctx, byID); err != nil {
		return nil, err
	}
	if err := s.loadComments(ctx, byID); err != nil {
		return nil, err
	}

	return tickets, nil
}

// loadDevs подгружает назначенных разработчиков для всех тикетов
func (s *Storage) loadDevs(ctx context.Context, byID map[string]*models.Ticket) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ticket_id, dev FROM ticket_devs ORDER BY added_at`)
	if err != nil {
		return fmt.Errorf("failed to list ticket devs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ticketID, dev string
		if err := rows.Scan(&ticketID, &dev); err != nil {
			return fmt.Errorf("failed to scan ticket dev: %w", err)
		}
		if ticket, ok := byID[ticketID]; ok {
			ticket.AssignedDevs = append(ticket.AssignedDevs, dev)
		}
	}

	return rows.Err()
}

// loadComments подгружает комментарии для всех тикетов
func (s *Storage) loadComments(ctx context.Context, byID map[string]*models.Ticket) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ticket_id, author, comment FROM ticket_comments ORDER BY created_at`)
	if err != nil {
		return fmt.Errorf("failed to list ticket comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ticketID string
		var c models.Comment
		if err := rows.Scan(&ticketID, &c.Author, &c.Comment); err != nil {
			return fmt.Errorf("failed to scan ticket comment: %w", err)
		}
		if ticket, ok := byID[ticketID]; ok {
			ticket.Comments = append(ticket.Comments, c)
		}
	}

	return rows.Err()
}

// UpdateStatus changes the status of an existing ticket
func (s *Storage) UpdateStatus(ctx context.Context, ticketID, status string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE tickets SET status = ? WHERE id = ?`, status, ticketID)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	return s.requireTicketAffected(result)
}

// AddDev appends a developer to the ticket's assignee list
func (s *Storage) AddDev(ctx context.Context, ticketID, dev string) error {
	if err := s.requireTicketExists(ctx, ticketID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ticket_devs (ticket_id, dev, added_at) VALUES (?, ?, ?)`,
		ticketID, dev, time.Now())
	if err != nil {
		return fmt.Errorf("failed to add dev: %w", err)
	}

	return nil
}

// AddComment appends a comment to the ticket
func (s *Storage) AddComment(ctx context.Context, ticketID string, comment models.Comment) error {
	if err := s.requireTicketExists(ctx, ticketID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ticket_comments (ticket_id, author, comment, created_at) VALUES (?, ?, ?, ?)`,
		ticketID, comment.Author, comment.Comment, time.Now())
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}

	return nil
}

// requireTicketExists проверяет наличие тикета перед вставкой в child таблицы
func (s *Storage) requireTicketExists(ctx context.Context, ticketID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM tickets WHERE id = ?`, ticketID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrTicketNotFound
		}
		return fmt.Errorf("failed to check ticket: %w", err)
	}
	return nil
}

func (s *Storage) requireTicketAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrTicketNotFound
	}
	return nil
}
