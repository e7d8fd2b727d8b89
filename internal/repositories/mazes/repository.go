// Package mazes stores generated maze layouts so they can be fetched and
// simulated again without regenerating
package mazes

import (
	"context"
	"time"

	"github.com/KirkDiggler/maze-api/internal/maze"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mazesmock github.com/KirkDiggler/maze-api/internal/repositories/mazes Repository

// DefaultTTL is how long a layout lives when no TTL is given
const DefaultTTL = time.Hour

// Record is a stored maze layout
type Record struct {
	ID string `json:"id"`

	// Config is the regenerable record the layout was built from
	Config maze.Config `json:"config"`

	// Rows is the grid snapshot, see maze.Maze.Snapshot
	Rows []string `json:"rows"`

	// Population is how many entities are placed when the maze is loaded
	Population Population `json:"population"`

	// FurnitureHints are patch room furniture cells in world space
	FurnitureHints []maze.Coord `json:"furniture_hints,omitempty"`

	OpenCells         int `json:"open_cells"`
	SkippedRooms      int `json:"skipped_rooms"`
	DisconnectedRooms int `json:"disconnected_rooms"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Population counts the entities placed into a maze
type Population struct {
	Collectibles int `json:"collectibles"`
	Enemies      int `json:"enemies"`
	Furniture    int `json:"furniture"`
}

// SaveInput contains the record to store
type SaveInput struct {
	Record *Record
	// TTL defaults to DefaultTTL
	TTL time.Duration
}

// SaveOutput contains the stored record with timestamps filled in
type SaveOutput struct {
	Record *Record
}

// GetInput identifies a record
type GetInput struct {
	ID string
}

// GetOutput contains the fetched record
type GetOutput struct {
	Record *Record
}

// DeleteInput identifies a record to delete
type DeleteInput struct {
	ID string
}

// DeleteOutput reports whether anything was removed
type DeleteOutput struct {
	Deleted bool
}

// ListInput is reserved for paging
type ListInput struct{}

// ListOutput contains the IDs of live records, sorted
type ListOutput struct {
	IDs []string
}

// Repository stores maze layouts
type Repository interface {
	// Save stores or replaces a record
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get returns NotFound for missing or expired records
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every live record ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

func cloneRecord(r *Record) *Record {
	out := *r
	out.Rows = append([]string(nil), r.Rows...)
	out.FurnitureHints = append([]maze.Coord(nil), r.FurnitureHints...)
	return &out
}
