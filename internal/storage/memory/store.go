// Package memory is an in-memory implementation of the storage interface for
// testing and for running without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"netbound/internal/domain"
	"netbound/internal/lifecycle"
	"netbound/internal/record"
	"netbound/internal/transcribe"
)

// Store keeps every record in maps guarded by one RWMutex. Insert checks and
// writes under the write lock, which is the insert-if-absent atomicity the
// orchestrator relies on under concurrent requests.
type Store struct {
	mu sync.RWMutex

	networks    map[string]record.Network
	policies    map[string]record.Policy
	attachments map[string]int // network id -> ports attached by the port subsystem
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		networks:    make(map[string]record.Network),
		policies:    make(map[string]record.Policy),
		attachments: make(map[string]int),
	}
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error { return nil }

// Networks returns the network repository.
func (s *Store) Networks() lifecycle.Repository[domain.Network] {
	return &networkRepo{store: s}
}

// Policies returns the QoS policy repository.
func (s *Store) Policies() lifecycle.Repository[domain.QosPolicy] {
	return &policyRepo{store: s}
}

// Attach records a port attachment on a network. The port subsystem owns
// attachments; this entry point exists so tests and embedding code can mark a
// network as in use.
func (s *Store) Attach(networkID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attachments[networkID]++
}

// Detach removes a port attachment from a network.
func (s *Store) Detach(networkID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attachments[networkID] > 0 {
		s.attachments[networkID]--
	}
}

type networkRepo struct {
	store *Store
}

func (r *networkRepo) GetAll(ctx context.Context) ([]domain.Network, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.Network, 0, len(r.store.networks))
	for _, rec := range r.store.networks {
		out = append(out, transcribe.NetworkFromRecord(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *networkRepo) Get(ctx context.Context, id string) (domain.Network, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rec, ok := r.store.networks[id]
	if !ok {
		return domain.Network{}, errors.Wrapf(domain.ErrNotFound, "network %q", id)
	}
	return transcribe.NetworkFromRecord(rec), nil
}

func (r *networkRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.networks[id]
	return ok, nil
}

func (r *networkRepo) InUse(ctx context.Context, id string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.attachments[id] > 0, nil
}

func (r *networkRepo) Insert(ctx context.Context, n domain.Network) error {
	rec, err := transcribe.NetworkToRecord(n)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	id := rec.UUID.String()
	if _, ok := r.store.networks[id]; ok {
		return errors.Wrapf(domain.ErrAlreadyExists, "network %q", id)
	}
	r.store.networks[id] = rec
	return nil
}

func (r *networkRepo) Update(ctx context.Context, id string, n domain.Network) error {
	rec, err := transcribe.NetworkToRecord(n)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.networks[id]; !ok {
		return errors.Wrapf(domain.ErrNotFound, "network %q", id)
	}
	r.store.networks[id] = rec
	return nil
}

func (r *networkRepo) Remove(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.networks[id]; !ok {
		return errors.Wrapf(domain.ErrNotFound, "network %q", id)
	}
	delete(r.store.networks, id)
	return nil
}

type policyRepo struct {
	store *Store
}

func (r *policyRepo) GetAll(ctx context.Context) ([]domain.QosPolicy, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.QosPolicy, 0, len(r.store.policies))
	for _, rec := range r.store.policies {
		out = append(out, transcribe.PolicyFromRecord(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *policyRepo) Get(ctx context.Context, id string) (domain.QosPolicy, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rec, ok := r.store.policies[id]
	if !ok {
		return domain.QosPolicy{}, errors.Wrapf(domain.ErrNotFound, "qos policy %q", id)
	}
	return transcribe.PolicyFromRecord(rec), nil
}

func (r *policyRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.policies[id]
	return ok, nil
}

// InUse reports whether any network references the policy.
func (r *policyRepo) InUse(ctx context.Context, id string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, n := range r.store.networks {
		if n.QosPolicy.String() == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *policyRepo) Insert(ctx context.Context, p domain.QosPolicy) error {
	rec, err := transcribe.PolicyToRecord(p)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	id := rec.UUID.String()
	if _, ok := r.store.policies[id]; ok {
		return errors.Wrapf(domain.ErrAlreadyExists, "qos policy %q", id)
	}
	r.store.policies[id] = rec
	return nil
}

func (r *policyRepo) Update(ctx context.Context, id string, p domain.QosPolicy) error {
	rec, err := transcribe.PolicyToRecord(p)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.policies[id]; !ok {
		return errors.Wrapf(domain.ErrNotFound, "qos policy %q", id)
	}
	r.store.policies[id] = rec
	return nil
}

func (r *policyRepo) Remove(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.policies[id]; !ok {
		return errors.Wrapf(domain.ErrNotFound, "qos policy %q", id)
	}
	delete(r.store.policies, id)
	return nil
}
