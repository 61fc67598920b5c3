package firestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/fastbite/api/internal/platform/firestore"
	"github.com/fastbite/api/internal/repositories"
)

// Registry bundles the Firestore backed repositories behind the shared
// provider so they reuse one client.
type Registry struct {
	provider *firestore.Provider

	catalog  *CatalogRepository
	orders   *OrderRepository
	reviews  *ReviewRepository
	content  *ContentRepository
	counters *CounterRepository
}

// NewRegistry constructs the full Firestore repository set.
func NewRegistry(provider *firestore.Provider) (*Registry, error) {
	if provider == nil {
		return nil, errors.New("firestore registry: provider is required")
	}

	counters, err := NewCounterRepository(provider)
	if err != nil {
		return nil, fmt.Errorf("firestore registry: %w", err)
	}
	catalog, err := NewCatalogRepository(provider, counters)
	if err != nil {
		return nil, fmt.Errorf("firestore registry: %w", err)
	}
	orders, err := NewOrderRepository(provider)
	if err != nil {
		return nil, fmt.Errorf("firestore registry: %w", err)
	}
	reviews, err := NewReviewRepository(provider)
	if err != nil {
		return nil, fmt.Errorf("firestore registry: %w", err)
	}
	content, err := NewContentRepository(provider)
	if err != nil {
		return nil, fmt.Errorf("firestore registry: %w", err)
	}

	return &Registry{
		provider: provider,
		catalog:  catalog,
		orders:   orders,
		reviews:  reviews,
		content:  content,
		counters: counters,
	}, nil
}

var _ repositories.Registry = (*Registry)(nil)

// Close releases the underlying Firestore client.
func (r *Registry) Close(context.Context) error {
	if r == nil {
		return nil
	}
	return r.provider.Close()
}

// Catalog returns the catalog repository.
func (r *Registry) Catalog() repositories.CatalogRepository { return r.catalog }

// Orders returns the order repository.
func (r *Registry) Orders() repositories.OrderRepository { return r.orders }

// Reviews returns the review repository.
func (r *Registry) Reviews() repositories.ReviewRepository { return r.reviews }

// Content returns the content repository.
func (r *Registry) Content() repositories.ContentRepository { return r.content }

// Counters returns the counter repository.
func (r *Registry) Counters() repositories.CounterRepository { return r.counters }
