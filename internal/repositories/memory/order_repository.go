package memory

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/repositories"
)

// OrderRepository is an in-memory, mutex-guarded order store. Orders are held
// most-recent-first; the repository owns its records and always hands out
// copies so callers never retain a mutable reference into the store.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewOrderRepository constructs an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Insert places the order at the head of the collection.
func (r *OrderRepository) Insert(_ context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.ID == order.ID {
			return repositories.NewConflict("memory.orders.insert", fmt.Sprintf("order %s already exists", order.ID))
		}
	}

	r.orders = append([]domain.Order{cloneOrder(order)}, r.orders...)
	return nil
}

// Update replaces the stored order with the same identifier.
func (r *OrderRepository) Update(_ context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.orders {
		if existing.ID == order.ID {
			r.orders[i] = cloneOrder(order)
			return nil
		}
	}
	return repositories.NewNotFound("memory.orders.update", fmt.Sprintf("order %s not found", order.ID))
}

// FindByID returns a copy of the order with the given identifier.
func (r *OrderRepository) FindByID(_ context.Context, orderID string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.ID == orderID {
			return cloneOrder(order), nil
		}
	}
	return domain.Order{}, repositories.NewNotFound("memory.orders.find", fmt.Sprintf("order %s not found", orderID))
}

// List returns a consistent snapshot of the store, most-recent-first.
func (r *OrderRepository) List(_ context.Context, filter repositories.OrderListFilter) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if filter.Status != nil && order.Status != *filter.Status {
			continue
		}
		out = append(out, cloneOrder(order))
	}
	return out, nil
}

// Delete removes the order with the given identifier.
func (r *OrderRepository) Delete(_ context.Context, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, order := range r.orders {
		if order.ID == orderID {
			r.orders = append(r.orders[:i:i], r.orders[i+1:]...)
			return nil
		}
	}
	return repositories.NewNotFound("memory.orders.delete", fmt.Sprintf("order %s not found", orderID))
}

func cloneOrder(order domain.Order) domain.Order {
	cloned := order
	cloned.Items = make([]domain.OrderItem, len(order.Items))
	for i, item := range order.Items {
		ci := item
		ci.Extras = append([]domain.OrderItemExtra(nil), item.Extras...)
		ci.Ingredients = append([]domain.IngredientDecision(nil), item.Ingredients...)
		cloned.Items[i] = ci
	}
	return cloned
}
