package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/shopsync/internal/client/storage"
)

// Compile-time check that Storage implements LocalStore
var _ storage.LocalStore = (*Storage)(nil)

// Get retrieves a value by key from the cache bucket
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrKeyNotFound
		}

		value = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return value, nil
}

// Set stores or overwrites a value in the cache bucket
func (s *Storage) Set(ctx context.Context, key, value string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		if err := bucket.Put([]byte(key), []byte(value)); err != nil {
			return fmt.Errorf("failed to save key %s: %w", key, err)
		}

		return nil
	})
}

// Remove deletes a key from the cache bucket (no-op if missing)
func (s *Storage) Remove(ctx context.Context, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to remove key %s: %w", key, err)
		}

		return nil
	})
}

// MultiRemove deletes several keys in a single transaction
func (s *Storage) MultiRemove(ctx context.Context, keys []string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		for _, key := range keys {
			if err := bucket.Delete([]byte(key)); err != nil {
				return fmt.Errorf("failed to remove key %s: %w", key, err)
			}
		}

		return nil
	})
}
