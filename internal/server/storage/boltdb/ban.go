package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/bugtrack/internal/models"
	"github.com/iudanet/bugtrack/internal/server/storage"
)

// Ban adds an IP to the registry. A repeated ban overwrites the
// existing record, keeping the registry deduplicated.
func (s *Storage) Ban(ctx context.Context, ip string) error {
	ban := models.BannedIP{
		IP:       ip,
		BannedAt: time.Now(),
	}

	data, err := json.Marshal(ban)
	if err != nil {
		return fmt.Errorf("failed to marshal ban: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketBans)
		if b == nil {
			return fmt.Errorf("bans bucket not found")
		}

		// Не перезаписываем BannedAt повторным баном того же IP
		if existing := b.Get([]byte(ip)); existing != nil {
			return nil
		}

		if err := b.Put([]byte(ip), data); err != nil {
			return fmt.Errorf("failed to put ban: %w", err)
		}
		return nil
	})
}

// IsBanned reports whether the IP is present in the registry
func (s *Storage) IsBanned(ctx context.Context, ip string) (bool, error) {
	var banned bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketBans)
		if b == nil {
			return fmt.Errorf("bans bucket not found")
		}

		banned = b.Get([]byte(ip)) != nil
		return nil
	})

	if err != nil {
		return false, fmt.Errorf("failed to check ban: %w", err)
	}

	return banned, nil
}

// Unban removes an IP from the registry
func (s *Storage) Unban(ctx context.Context, ip string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketBans)
		if b == nil {
			return fmt.Errorf("bans bucket not found")
		}

		if b.Get([]byte(ip)) == nil {
			return storage.ErrBanNotFound
		}

		if err := b.Delete([]byte(ip)); err != nil {
			return fmt.Errorf("failed to delete ban: %w", err)
		}
		return nil
	})
}

// ListBans returns all banned IPs
func (s *Storage) ListBans(ctx context.Context) ([]*models.BannedIP, error) {
	var bans []*models.BannedIP

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketBans)
		if b == nil {
			return fmt.Errorf("bans bucket not found")
		}

		return b.ForEach(func(k, v []byte) error {
			ban := &models.BannedIP{}
			if err := json.Unmarshal(v, ban); err != nil {
				return fmt.Errorf("failed to unmarshal ban %s: %w", k, err)
			}
			bans = append(bans, ban)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list bans: %w", err)
	}

	return bans, nil
}
