package admincli

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/bugtrack/internal/crypto"
	"github.com/iudanet/bugtrack/internal/iocli"
	"github.com/iudanet/bugtrack/internal/models"
	"github.com/iudanet/bugtrack/internal/server/storage"
	"github.com/iudanet/bugtrack/internal/validation"
)

// Cli выполняет административные команды напрямую над хранилищами,
// минуя HTTP слой.
type Cli struct {
	io    iocli.IO
	users storage.UserStorage
	bans  storage.BanStorage
}

func New(io iocli.IO, users storage.UserStorage, bans storage.BanStorage) *Cli {
	return &Cli{
		io:    io,
		users: users,
		bans:  bans,
	}
}

// RunPromote grants the admin role to an existing user.
func (c *Cli) RunPromote(ctx context.Context, email string) error {
	return c.setRole(ctx, email, models.RoleAdmin)
}

// RunDemote reverts a user to the developer role.
func (c *Cli) RunDemote(ctx context.Context, email string) error {
	return c.setRole(ctx, email, models.RoleDeveloper)
}

func (c *Cli) setRole(ctx context.Context, email, role string) error {
	email = validation.NormalizeEmail(email)
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	if err := c.users.UpdateRole(ctx, email, role); err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	c.io.Printf("User %s is now %s\n", email, role)
	return nil
}

// RunCreateAdmin interactively creates a user with the admin role.
// Пароль запрашивается без эха и подтверждается повторным вводом.
func (c *Cli) RunCreateAdmin(ctx context.Context) error {
	c.io.Println("=== Create Admin ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	email = validation.NormalizeEmail(email)
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:             uuid.NewString(),
		Email:          email,
		PasswordHash:   hash,
		Role:           models.RoleAdmin,
		DateRegistered: time.Now().UTC(),
		IPAddress:      "127.0.0.1",
	}

	if err := c.users.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	c.io.Println()
	c.io.Printf("Admin %s created (id %s)\n", user.Email, user.ID)
	return nil
}

// RunBan adds an IP to the ban registry.
func (c *Cli) RunBan(ctx context.Context, ip string) error {
	normalized, err := normalizeIP(ip)
	if err != nil {
		return err
	}

	if err := c.bans.Ban(ctx, normalized); err != nil {
		return fmt.Errorf("failed to ban: %w", err)
	}

	c.io.Printf("Banned %s\n", normalized)
	return nil
}

// RunUnban removes an IP from the ban registry.
func (c *Cli) RunUnban(ctx context.Context, ip string) error {
	normalized, err := normalizeIP(ip)
	if err != nil {
		return err
	}

	if err := c.bans.Unban(ctx, normalized); err != nil {
		return fmt.Errorf("failed to unban: %w", err)
	}

	c.io.Printf("Unbanned %s\n", normalized)
	return nil
}

// RunListBans prints every banned IP with its ban time.
func (c *Cli) RunListBans(ctx context.Context) error {
	bans, err := c.bans.ListBans(ctx)
	if err != nil {
		return fmt.Errorf("failed to list bans: %w", err)
	}

	if len(bans) == 0 {
		c.io.Println("No banned IPs")
		return nil
	}

	for _, b := range bans {
		c.io.Printf("%s\tbanned at %s\n", b.IP, b.BannedAt.Format(time.RFC3339))
	}
	return nil
}

// normalizeIP приводит адрес к канонической форме
// (IPv4-mapped IPv6 сворачивается в IPv4)
func normalizeIP(ip string) (string, error) {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return "", fmt.Errorf("invalid IP address %q: %w", ip, err)
	}
	return addr.Unmap().String(), nil
}
