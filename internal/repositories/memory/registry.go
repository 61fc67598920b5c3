package memory

import (
	"context"

	"github.com/fastbite/api/internal/repositories"
)

// Registry bundles the in-memory repositories behind the shared Registry
// interface. It is the default backing for local runs and tests.
type Registry struct {
	catalog  *CatalogRepository
	orders   *OrderRepository
	reviews  *ReviewRepository
	content  *ContentRepository
	counters *CounterRepository
}

// NewRegistry constructs a registry with empty in-memory repositories.
func NewRegistry() *Registry {
	return &Registry{
		catalog:  NewCatalogRepository(),
		orders:   NewOrderRepository(),
		reviews:  NewReviewRepository(),
		content:  NewContentRepository(),
		counters: NewCounterRepository(),
	}
}

// Close implements repositories.Registry; memory backends hold no resources.
func (r *Registry) Close(context.Context) error { return nil }

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
