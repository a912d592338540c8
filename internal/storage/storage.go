// Package storage defines the persistence boundary. A Store hands out one
// lifecycle repository per resource collection; implementations persist the
// internal record schema and run the transcriber at the boundary, so the
// external models never leak into storage and malformed identifiers are
// rejected before anything is written.
package storage

import (
	"netbound/internal/domain"
	"netbound/internal/lifecycle"
)

// Store is the interface for the storage layer.
// Implementations must be safe for concurrent use.
type Store interface {
	// Close closes the storage connection.
	Close() error

	// Networks returns the network repository.
	Networks() lifecycle.Repository[domain.Network]

	// Policies returns the QoS policy repository.
	Policies() lifecycle.Repository[domain.QosPolicy]
}
