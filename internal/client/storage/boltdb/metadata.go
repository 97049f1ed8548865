package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/bookkeeper/internal/client/storage"
)

const (
	keyLastSync = "last_sync"
)

// SaveLastSync saves the summary of the last reconciliation pass
func (s *Storage) SaveLastSync(ctx context.Context, info storage.SyncInfo) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data, err := json.Marshal(info)
		if err != nil {
			return fmt.Errorf("failed to marshal sync info: %w", err)
		}

		if err := bucket.Put([]byte(keyLastSync), data); err != nil {
			return fmt.Errorf("failed to save last sync: %w", err)
		}

		return nil
	})
}

// GetLastSync retrieves the summary of the last reconciliation pass
// Returns zero SyncInfo if no pass has been performed yet
func (s *Storage) GetLastSync(ctx context.Context) (storage.SyncInfo, error) {
	var info storage.SyncInfo

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get([]byte(keyLastSync))
		if data == nil {
			// первая синхронизация еще не выполнялась
			return nil
		}

		return json.Unmarshal(data, &info)
	})
	if err != nil {
		return storage.SyncInfo{}, fmt.Errorf("failed to get last sync: %w", err)
	}

	return info, nil
}
