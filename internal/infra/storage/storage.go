// Package storage persists binary artifacts under a deterministic path.
// Filename generation is the caller's responsibility so implementations stay
// storage-agnostic.
package storage

import "context"

type Store interface {
	// Save writes data under dir/filename, creating dir if needed, and
	// returns the final stored path.
	Save(ctx context.Context, data []byte, filename string, dir string) (string, error)
}
