// Package store persists named graphs.
//
// A [Record] is a graph's vertex map plus a name and description. Stores
// assign IDs (random UUIDs) and creation times on Create.
//
// # Backends
//
//   - [MemoryStore]: process-local, for tests and ephemeral servers
//   - [FileStore]: one JSON file per record, for the CLI
//   - [MongoStore]: a MongoDB collection, for shared deployments
//
// All backends are safe for concurrent use. Lookups of unknown IDs fail with
// a GRAPH_NOT_FOUND error.
package store

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/graphcanvas/pkg/errors"
	"github.com/matzehuels/graphcanvas/pkg/graph"
)

// Record is a persisted graph.
type Record struct {
	ID          string     `json:"id" bson:"_id"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description" bson:"description"`
	GraphData   graph.Data `json:"graphData" bson:"graph_data"`
	CreatedAt   time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updated_at"`
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	c.GraphData = r.GraphData.Clone()
	return &c
}

// Validate checks the name, description and graph data.
func (r *Record) Validate() error {
	if err := errors.ValidateGraphName(r.Name); err != nil {
		return err
	}
	if err := errors.ValidateGraphDescription(r.Description); err != nil {
		return err
	}
	if err := r.GraphData.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidGraph, err, "graph %q", r.Name)
	}
	return nil
}

// Store persists records.
type Store interface {
	// List returns every record, oldest first.
	List(ctx context.Context) ([]*Record, error)

	// Get returns the record with the given ID.
	Get(ctx context.Context, id string) (*Record, error)

	// Create validates r, assigns its ID and timestamps, stores it and returns
	// the stored copy. r itself is not modified.
	Create(ctx context.Context, r *Record) (*Record, error)

	// Update replaces the name, description and graph data of an existing
	// record and returns the stored copy.
	Update(ctx context.Context, r *Record) (*Record, error)

	// Delete removes the record with the given ID.
	Delete(ctx context.Context, id string) error

	Close() error
}

// Backend names accepted by [Open].
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendMongo  = "mongo"
)

// Options selects and configures a backend for [Open].
type Options struct {
	Backend    string
	Dir        string
	MongoURI   string
	Database   string
	Collection string
}

// Open creates the store named by opts.Backend. An empty backend is treated
// as [BackendMemory].
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		s, err := NewFileStore(opts.Dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendMongo:
		s, err := NewMongoStore(ctx, opts.MongoURI, opts.Database, opts.Collection)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown store backend %q", opts.Backend)
}

// newRecord prepares a validated copy of r for insertion.
func newRecord(r *Record, now time.Time) (*Record, error) {
	if r == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "record is required")
	}
	c := r.Clone()
	c.Name = strings.TrimSpace(c.Name)
	if c.GraphData == nil {
		c.GraphData = graph.Data{}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.ID = uuid.NewString()
	c.CreatedAt = now.UTC()
	c.UpdatedAt = c.CreatedAt
	return c, nil
}

// applyUpdate copies the mutable fields of r onto a copy of existing.
func applyUpdate(existing, r *Record, now time.Time) (*Record, error) {
	c := existing.Clone()
	c.Name = strings.TrimSpace(r.Name)
	c.Description = r.Description
	c.GraphData = r.GraphData.Clone()
	if c.GraphData == nil {
		c.GraphData = graph.Data{}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.UpdatedAt = now.UTC()
	return c, nil
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeGraphNotFound, "graph %q not found", id)
}

func sortByCreation(recs []*Record) {
	slices.SortStableFunc(recs, func(a, b *Record) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
