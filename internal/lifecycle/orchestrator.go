package lifecycle

import (
	"context"
	"fmt"

	"netbound/internal/domain"
)

// Orchestrator drives the lifecycle of one resource collection.
type Orchestrator[T any] struct {
	spec       Spec[T]
	repository RepositoryResolver[T]
	extensions Extensions[T]
}

// New creates an orchestrator for one resource type.
func New[T any](spec Spec[T], repository RepositoryResolver[T], extensions Extensions[T]) *Orchestrator[T] {
	return &Orchestrator[T]{
		spec:       spec,
		repository: repository,
		extensions: extensions,
	}
}

// List returns the page of resources matching every filter condition, each
// optionally reduced to the requested field subset. Results are paginated only
// when the query asks for a positive page size and more than one resource
// matched; otherwise the full filtered set comes back as a single page.
func (o *Orchestrator[T]) List(ctx context.Context, q Query) (*Page[T], error) {
	repo, err := o.repo(ctx)
	if err != nil {
		return nil, err
	}
	all, err := repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]T, 0, len(all))
	for _, item := range all {
		if !o.spec.Match(item, q.Filters) {
			continue
		}
		if len(q.Fields) > 0 {
			item = o.spec.Project(item, q.Fields)
		}
		matched = append(matched, item)
	}

	if q.Limit > 0 && len(matched) > 1 {
		return Paginate(matched, o.spec.ID, q)
	}
	return &Page[T]{Items: matched}, nil
}

// Get returns the resource with the given id, optionally projected.
func (o *Orchestrator[T]) Get(ctx context.Context, id string, fields []string) (T, error) {
	var zero T
	repo, err := o.repo(ctx)
	if err != nil {
		return zero, err
	}
	item, err := repo.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	if len(fields) > 0 {
		item = o.spec.Project(item, fields)
	}
	return item, nil
}

// Create persists the given resources with all-or-nothing semantics: every
// item is checked for identifier uniqueness (against the store and against
// its batch siblings) and approved by every registered extension before any
// item is persisted. Only then does each item get its defaults applied,
// inserted, and announced through the Created hooks. A singleton create is a
// batch of one.
func (o *Orchestrator[T]) Create(ctx context.Context, items []T) ([]T, error) {
	repo, err := o.repo(ctx)
	if err != nil {
		return nil, err
	}

	// Uniqueness is settled before the extension set is even resolved, so a
	// duplicate identifier reports a conflict no matter what state the
	// registry is in.
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		id := o.spec.ID(item)
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%s %q: %w", o.spec.Name, id, domain.ErrAlreadyExists)
		}
		exists, err := repo.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%s %q: %w", o.spec.Name, id, domain.ErrAlreadyExists)
		}
		seen[id] = struct{}{}
	}

	exts, err := o.approvers(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		for _, ext := range exts {
			if status := ext.CanCreate(item); !approved(status) {
				return nil, &domain.VetoError{Status: status}
			}
		}
	}

	created := make([]T, 0, len(items))
	for _, item := range items {
		item = o.spec.Defaults(item)
		if err := repo.Insert(ctx, item); err != nil {
			return nil, err
		}
		for _, ext := range exts {
			ext.Created(item)
		}
		created = append(created, item)
	}
	return created, nil
}

// Update merges the delta into the stored resource after every registered
// extension approves the transition. Deltas touching an immutable field are
// rejected before any extension is consulted. Returns the full post-update
// record.
func (o *Orchestrator[T]) Update(ctx context.Context, id string, delta T) (T, error) {
	var zero T
	repo, err := o.repo(ctx)
	if err != nil {
		return zero, err
	}
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, fmt.Errorf("%s %q: %w", o.spec.Name, id, domain.ErrNotFound)
	}
	if fields := o.spec.Immutable(delta); len(fields) > 0 {
		return zero, fmt.Errorf("field %q of %s may not be updated: %w", fields[0], o.spec.Name, domain.ErrInvalidInput)
	}

	original, err := repo.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	exts, err := o.approvers(ctx)
	if err != nil {
		return zero, err
	}
	for _, ext := range exts {
		if status := ext.CanUpdate(delta, original); !approved(status) {
			return zero, &domain.VetoError{Status: status}
		}
	}

	merged := o.spec.Merge(original, delta)
	if err := repo.Update(ctx, id, merged); err != nil {
		return zero, err
	}
	for _, ext := range exts {
		ext.Updated(merged)
	}
	return merged, nil
}

// Delete removes the resource after checking the in-use precondition and
// gathering extension consensus against the pre-delete snapshot. The snapshot
// is also what the Deleted hooks receive, so notification payloads stay
// meaningful after removal.
func (o *Orchestrator[T]) Delete(ctx context.Context, id string) error {
	repo, err := o.repo(ctx)
	if err != nil {
		return err
	}
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s %q: %w", o.spec.Name, id, domain.ErrNotFound)
	}
	inUse, err := repo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("%s %q: %w", o.spec.Name, id, domain.ErrInUse)
	}

	snapshot, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	exts, err := o.approvers(ctx)
	if err != nil {
		return err
	}
	for _, ext := range exts {
		if status := ext.CanDelete(snapshot); !approved(status) {
			return &domain.VetoError{Status: status}
		}
	}

	if err := repo.Remove(ctx, id); err != nil {
		return err
	}
	for _, ext := range exts {
		ext.Deleted(snapshot)
	}
	return nil
}

func (o *Orchestrator[T]) repo(ctx context.Context) (Repository[T], error) {
	repo, err := o.repository(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s store unreachable: %w", o.spec.Name, domain.ErrUnavailable)
	}
	return repo, nil
}

// approvers resolves the extension set required for a mutation. The registry
// being unreachable and the registry holding no extensions are distinct
// failures: every mutation needs at least one extension to exist and approve.
func (o *Orchestrator[T]) approvers(ctx context.Context) ([]Extension[T], error) {
	exts, err := o.extensions.Lookup(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't get %s extensions list: %w", o.spec.Name, domain.ErrUnavailable)
	}
	if len(exts) == 0 {
		return nil, fmt.Errorf("no %s extensions registered: %w", o.spec.Name, domain.ErrUnavailable)
	}
	return exts, nil
}

func approved(status int) bool {
	return status >= 200 && status <= 299
}
