package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bugtrack/internal/models"
	"github.com/iudanet/bugtrack/internal/server/storage"
)

func testTicket(project string) *models.Ticket {
	return &models.Ticket{
		ID:            uuid.New().String(),
		Title:         "Login page broken",
		Description:   "500 on submit",
		Project:       project,
		TicketAuthor:  "dev@example.com",
		Priority:      "high",
		Status:        models.StatusNew,
		Type:          "bug",
		EstimatedTime: "2h",
		AssignedDevs:  []string{},
		Comments:      []models.Comment{},
		CreatedAt:     time.Now(),
	}
}

func TestTicketStorage_CreateAndList(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	tickets, err := s.ListTickets(ctx)
	require.NoError(t, err)
	assert.Empty(t, tickets)

	ticket := testTicket("website")
	require.NoError(t, s.CreateTicket(ctx, ticket))

	tickets, err = s.ListTickets(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, ticket.ID, tickets[0].ID)
	assert.Equal(t, models.StatusNew, tickets[0].Status)
	assert.Empty(t, tickets[0].AssignedDevs)
	assert.Empty(t, tickets[0].Comments)
}

func TestTicketStorage_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ticket := testTicket("website")
	require.NoError(t, s.CreateTicket(ctx, ticket))

	require.NoError(t, s.UpdateStatus(ctx, ticket.ID, "in progress"))

	tickets, err := s.ListTickets(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "in progress", tickets[0].Status)

	err = s.UpdateStatus(ctx, uuid.New().String(), "done")
	assert.ErrorIs(t, err, storage.ErrTicketNotFound)
}

func TestTicketStorage_AddDev(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ticket := testTicket("website")
	require.NoError(t, s.CreateTicket(ctx, ticket))

	require.NoError(t, s.AddDev(ctx, ticket.ID, "alice@example.com"))
	require.NoError(t, s.AddDev(ctx, ticket.ID, "bob@example.com"))

	tickets, err := s.ListTickets(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, tickets[0].AssignedDevs)

	err = s.AddDev(ctx, uuid.New().String(), "carol@example.com")
	assert.ErrorIs(t, err, storage.ErrTicketNotFound)
}

func TestTicketStorage_AddComment(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ticket := testTicket("website")
	require.NoError(t, s.CreateTicket(ctx, ticket))

	comment := models.Comment{Author: "alice@example.com", Comment: "reproduced on staging"}
	require.NoError(t, s.AddComment(ctx, ticket.ID, comment))

	tickets, err := s.ListTickets(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	require.Len(t, tickets[0].Comments, 1)
	assert.Equal(t, comment, tickets[0].Comments[0])

	err = s.AddComment(ctx, uuid.New().String(), comment)
	assert.ErrorIs(t, err, storage.ErrTicketNotFound)
}

func TestProjectStorage_CreateAndList(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	projects, err := s.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	project := &models.Project{
		ID:          uuid.New().String(),
		Title:       "website",
		Description: "customer-facing site",
		Creator:     "dev@example.com",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, s.CreateProject(ctx, project))

	projects, err = s.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, project.Title, projects[0].Title)
	assert.Equal(t, project.Creator, projects[0].Creator)
}
