package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// SyncInfo summary of the last completed reconciliation pass
type SyncInfo struct {
	FinishedAt time.Time `json:"finished_at"`
	PassID     string    `json:"pass_id"`
	Pushed     int       `json:"pushed"`
	Pulled     int       `json:"pulled"`
	Updated    int       `json:"updated"`
	Failed     int       `json:"failed"`
}

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSync saves the summary of the last reconciliation pass
	SaveLastSync(ctx context.Context, info SyncInfo) error

	// GetLastSync retrieves the summary of the last reconciliation pass
	// Returns zero SyncInfo if no pass has completed yet
	GetLastSync(ctx context.Context) (SyncInfo, error)
}
