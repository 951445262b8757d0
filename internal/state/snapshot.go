package state

import "context"

// SnapshotStore is the persistence adapter boundary: load and save of one
// serialized state snapshot per user. Format and storage medium belong to the
// adapter; the store only ever sees whole snapshots.
type SnapshotStore interface {
	// Load returns the stored snapshot for a user, reporting absence
	// without error.
	Load(ctx context.Context, userID string) (*State, bool, error)
	// Save persists the snapshot for a user, replacing any previous one.
	Save(ctx context.Context, userID string, snapshot *State) error
}
