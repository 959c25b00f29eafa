package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// AvatarCache persists resolved avatar URLs in BadgerDB so a restarted panel
// does not re-resolve the whole directory. Entries expire through Badger's
// native TTL; a stale entry simply falls back to a network resolve.
//
// The key is formatted as "avatar:{user_id}". The value is the canonical URL
// as raw bytes: there is no schema to encode for a single string.
type AvatarCache struct {
	db  *badger.DB
	log *slog.Logger
	ttl time.Duration
}

func NewAvatarCache(db *badger.DB, log *slog.Logger, ttl time.Duration) *AvatarCache {
	return &AvatarCache{db: db, log: log, ttl: ttl}
}

func avatarKey(userID int) []byte {
	return []byte(fmt.Sprintf("avatar:%d", userID))
}

// Get returns the cached canonical URL for a user, if present and fresh.
func (c *AvatarCache) Get(userID int) (string, bool) {
	var url string
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(avatarKey(userID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			url = string(val)
			return nil
		})
	})
	if err != nil {
		return "", false
	}
	return url, true
}

// Put stores the canonical URL with the configured TTL. An empty URL is a
// valid entry: it caches the "no avatar" answer too.
func (c *AvatarCache) Put(userID int, url string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(avatarKey(userID), []byte(url))
		if c.ttl > 0 {
			entry = entry.WithTTL(c.ttl)
		}
		return txn.SetEntry(entry)
	})
}
