package handlers

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/bugtrack/internal/models"
	"github.com/iudanet/bugtrack/internal/server/storage"
	"github.com/iudanet/bugtrack/internal/server/token"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTokenService(t *testing.T) *token.Service {
	t.Helper()
	svc, err := token.NewService(token.Config{Secret: []byte("test-secret")})
	require.NoError(t, err)
	return svc
}

// authedContext кладет в контекст claims, как это делает auth middleware
func authedContext(user models.User) context.Context {
	return WithClaims(context.Background(), &token.Claims{User: user})
}

// mockUserStorage implements storage.UserStorage for testing
type mockUserStorage struct {
	users     map[string]*models.User
	createErr error
	listErr   error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.users[user.Email]; ok {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Email] = user
	return nil
}

func (m *mockUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) ListUsers(ctx context.Context) ([]*models.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (m *mockUserStorage) UpdateRole(ctx context.Context, email, role string) error {
	u, ok := m.users[email]
	if !ok {
		return storage.ErrUserNotFound
	}
	u.Role = role
	return nil
}

// mockBanStorage implements storage.BanStorage for testing
type mockBanStorage struct {
	bans    map[string]time.Time
	banErr  error
	peekErr error
}

func newMockBanStorage() *mockBanStorage {
	return &mockBanStorage{bans: make(map[string]time.Time)}
}

func (m *mockBanStorage) Ban(ctx context.Context, ip string) error {
	if m.banErr != nil {
		return m.banErr
	}
	if _, ok := m.bans[ip]; !ok {
		m.bans[ip] = time.Now()
	}
	return nil
}

func (m *mockBanStorage) IsBanned(ctx context.Context, ip string) (bool, error) {
	if m.peekErr != nil {
		return false, m.peekErr
	}
	_, ok := m.bans[ip]
	return ok, nil
}

func (m *mockBanStorage) Unban(ctx context.Context, ip string) error {
	if _, ok := m.bans[ip]; !ok {
		return storage.ErrBanNotFound
	}
	delete(m.bans, ip)
	return nil
}

func (m *mockBanStorage) ListBans(ctx context.Context) ([]*models.BannedIP, error) {
	out := make([]*models.BannedIP, 0, len(m.bans))
	for ip, at := range m.bans {
		out = append(out, &models.BannedIP{IP: ip, BannedAt: at})
	}
	return out, nil
}

// mockProjectStorage implements storage.ProjectStorage for testing
type mockProjectStorage struct {
	projects  []*models.Project
	createErr error
	listErr   error
}

func (m *mockProjectStorage) CreateProject(ctx context.Context, project *models.Project) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.projects = append(m.projects, project)
	return nil
}

func (m *mockProjectStorage) ListProjects(ctx context.Context) ([]*models.Project, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.projects, nil
}

// mockTicketStorage implements storage.TicketStorage for testing
type mockTicketStorage struct {
	tickets   map[string]*models.Ticket
	createErr error
}

func newMockTicketStorage() *mockTicketStorage {
	return &mockTicketStorage{tickets: make(map[string]*models.Ticket)}
}

func (m *mockTicketStorage) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.tickets[ticket.ID] = ticket
	return nil
}

func (m *mockTicketStorage) ListTickets(ctx context.Context) ([]*models.Ticket, error) {
	out := make([]*models.Ticket, 0, len(m.tickets))
	for _, tk := range m.tickets {
		out = append(out, tk)
	}
	return out, nil
}

func (m *mockTicketStorage) UpdateStatus(ctx context.Context, ticketID, status string) error {
	tk, ok := m.tickets[ticketID]
	if !ok {
		return storage.ErrTicketNotFound
	}
	tk.Status = status
	return nil
}

func (m *mockTicketStorage) AddDev(ctx context.Context, ticketID, dev string) error {
	tk, ok := m.tickets[ticketID]
	if !ok {
		return storage.ErrTicketNotFound
	}
	tk.AssignedDevs = append(tk.AssignedDevs, dev)
	return nil
}

func (m *mockTicketStorage) AddComment(ctx context.Context, ticketID string, comment models.Comment) error {
	tk, ok := m.tickets[ticketID]
	if !ok {
		return storage.ErrTicketNotFound
	}
	tk.Comments = append(tk.Comments, comment)
	return nil
}
