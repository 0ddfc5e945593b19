package storage

import (
	"context"

	"github.com/iudanet/bugtrack/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage.
	// Returns ErrUserAlreadyExists if the email is taken; the email must
	// be normalized by the caller before the call.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves user by normalized email
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// ListUsers returns all registered users
	ListUsers(ctx context.Context) ([]*models.User, error)

	// UpdateRole changes the role of an existing user.
	// Returns ErrUserNotFound if user doesn't exist
	UpdateRole(ctx context.Context, email, role string) error
}
