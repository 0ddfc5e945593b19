package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestStorage creates an in-memory storage with migrations applied
func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	ctx := context.Background()
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		require.NoError(t, s.Close())
	}

	return s, cleanup
}

func TestNew_RunsMigrations(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Все таблицы должны существовать после миграций
	for _, table := range []string{"users", "projects", "tickets", "ticket_devs", "ticket_comments"} {
		var name string
		err := s.DB().QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}
