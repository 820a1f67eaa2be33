package domain

import (
	"context"
	"errors"
)

// ErrSnapshotLoad wraps any failure to materialize the warehouse snapshot.
// A partial snapshot is never returned; the caller retries or gives up.
var ErrSnapshotLoad = errors.New("snapshot_load_failed")

type Repository interface {
	// LoadSnapshot performs a single read-only fetch of the fact and
	// dimension tables. The caller bounds it with its own context deadline.
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
}
