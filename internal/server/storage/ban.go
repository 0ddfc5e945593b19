package storage

import (
	"context"

	"github.com/iudanet/bugtrack/internal/models"
)

// BanStorage defines interface for the banned IP registry
type BanStorage interface {
	// Ban adds an IP to the registry. Banning an already banned IP
	// is not an error (idempotent insert).
	Ban(ctx context.Context, ip string) error

	// IsBanned reports whether the IP is present in the registry.
	// Exact string match on the normalized form; no CIDR matching.
	IsBanned(ctx context.Context, ip string) (bool, error)

	// Unban removes an IP from the registry.
	// Returns ErrBanNotFound if the IP was not banned.
	Unban(ctx context.Context, ip string) error

	// ListBans returns all banned IPs
	ListBans(ctx context.Context) ([]*models.BannedIP, error)
}
