// Package lifecycle implements the CRUD orchestration engine shared by every
// resource collection: query/filter/paginate on read, extension-consensus-gated
// mutation on write, immutability and precondition enforcement, and post-commit
// notification fan-out. Per-resource behavior is injected through a Spec value
// so one orchestrator serves networks, policies, and whatever comes next.
package lifecycle

import (
	"context"
	"net/url"
)

// Repository is the abstract port to the persisted resource collection, keyed
// by the resource identifier. Implementations must be safe for concurrent use
// and must make Insert atomic: inserting an identifier that already exists
// fails with domain.ErrAlreadyExists even when a concurrent request passed the
// orchestrator's own existence pre-check. The orchestrator never serializes
// access itself.
type Repository[T any] interface {
	// GetAll returns every record in the collection.
	GetAll(ctx context.Context) ([]T, error)

	// Get returns the record with the given id, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (T, error)

	// Exists reports whether a record with the given id is present.
	Exists(ctx context.Context, id string) (bool, error)

	// InUse reports whether another subsystem still references the record.
	InUse(ctx context.Context, id string) (bool, error)

	// Insert stores a new record. It fails atomically with
	// domain.ErrAlreadyExists if the id is already taken.
	Insert(ctx context.Context, item T) error

	// Update replaces the stored record under the given id.
	Update(ctx context.Context, id string, item T) error

	// Remove deletes the record with the given id.
	Remove(ctx context.Context, id string) error
}

// RepositoryResolver obtains the repository for one operation. Resolution can
// fail when the backing store is unreachable; the orchestrator surfaces that
// as domain.ErrUnavailable.
type RepositoryResolver[T any] func(ctx context.Context) (Repository[T], error)

// StaticRepository wraps an always-available repository in a resolver.
func StaticRepository[T any](repo Repository[T]) RepositoryResolver[T] {
	return func(ctx context.Context) (Repository[T], error) {
		return repo, nil
	}
}

// Extension is the per-resource capability contract for externally registered
// modules. The Can* hooks return an HTTP-style status; anything outside
// [200,299] vetoes the mutation and is returned to the caller verbatim. The
// notification hooks run after commit, cannot veto, and their outcome is
// ignored.
type Extension[T any] interface {
	CanCreate(item T) int
	CanUpdate(delta, original T) int
	CanDelete(item T) int
	Created(item T)
	Updated(item T)
	Deleted(item T)
}

// Extensions yields the currently registered extensions for a resource type.
// Registration is dynamic, so the set is looked up on every call. A lookup
// error means the registry itself was unreachable, which is distinct from a
// successful lookup returning no extensions; the orchestrator reports both as
// domain.ErrUnavailable but with different messages.
type Extensions[T any] interface {
	Lookup(ctx context.Context) ([]Extension[T], error)
}

// Spec carries the per-resource behavior the generic orchestrator needs. The
// Immutable hook is deliberately configuration, not a hardcoded field list:
// each resource type declares which of its fields a delta may never set.
type Spec[T any] struct {
	// Name is the resource name used in error messages, e.g. "network".
	Name string

	// ID returns the resource's unique identifier.
	ID func(item T) string

	// Match reports whether the item satisfies every filter condition.
	Match func(item T, filters map[string]string) bool

	// Project returns a copy reduced to the requested field subset.
	Project func(item T, fields []string) T

	// Defaults applies creation defaults to absent fields.
	Defaults func(item T) T

	// Merge applies a delta over the current record field by field.
	Merge func(current, delta T) T

	// Immutable returns the names of immutable fields the delta tries to set.
	Immutable func(delta T) []string
}

// Query describes one read request: conjunctive equality filters, an optional
// field projection, and an optional page request. A Limit of zero or less
// means no pagination. Base is the request address pagination links are built
// from.
type Query struct {
	Filters map[string]string
	Fields  []string
	Limit   int
	Marker  string
	Reverse bool
	Base    *url.URL
}
