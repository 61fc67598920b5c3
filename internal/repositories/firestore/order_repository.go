package firestore

import (
	"context"
	"errors"

	fs "cloud.google.com/go/firestore"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/platform/firestore"
	"github.com/fastbite/api/internal/repositories"
)

const ordersCollection = "orders"

// OrderRepository persists assembled orders in Firestore.
type OrderRepository struct {
	provider   *firestore.Provider
	collection *firestore.Collection[orderDocument]
}

// NewOrderRepository constructs a Firestore backed order repository.
func NewOrderRepository(provider *firestore.Provider) (*OrderRepository, error) {
	if provider == nil {
		return nil, errors.New("order repository: firestore provider is required")
	}
	return &OrderRepository{
		provider:   provider,
		collection: firestore.NewCollection[orderDocument](provider, ordersCollection),
	}, nil
}

var _ repositories.OrderRepository = (*OrderRepository)(nil)

// Insert stores a new order, failing with a conflict when the ID is taken.
func (r *OrderRepository) Insert(ctx context.Context, order domain.Order) error {
	doc, err := r.collection.DocumentRef(ctx, order.ID)
	if err != nil {
		return err
	}
	if _, err := doc.Create(ctx, encodeOrder(order)); err != nil {
		return firestore.WrapError("orders.insert", err)
	}
	return nil
}

// Update replaces an existing order document. The read inside the
// transaction guards against resurrecting deleted orders.
func (r *OrderRepository) Update(ctx context.Context, order domain.Order) error {
	doc, err := r.collection.DocumentRef(ctx, order.ID)
	if err != nil {
		return err
	}
	return r.provider.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		if _, err := tx.Get(doc); err != nil {
			return firestore.WrapError("orders.update", err)
		}
		return tx.Set(doc, encodeOrder(order))
	})
}

// FindByID fetches a single order.
func (r *OrderRepository) FindByID(ctx context.Context, orderID string) (domain.Order, error) {
	doc, err := r.collection.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	return decodeOrder(doc), nil
}

// List returns orders most-recent-first, optionally narrowed by status.
func (r *OrderRepository) List(ctx context.Context, filter repositories.OrderListFilter) ([]domain.Order, error) {
	docs, err := r.collection.Query(ctx, func(query fs.Query) fs.Query {
		if filter.Status != nil {
			query = query.Where("status", "==", string(*filter.Status))
		}
		return query.OrderBy("createdAt", fs.Desc)
	})
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, decodeOrder(doc))
	}
	return orders, nil
}

// Delete removes an order, failing with not-found when it does not exist.
func (r *OrderRepository) Delete(ctx context.Context, orderID string) error {
	doc, err := r.collection.DocumentRef(ctx, orderID)
	if err != nil {
		return err
	}
	if _, err := doc.Delete(ctx, fs.Exists); err != nil {
		return firestore.WrapError("orders.delete", err)
	}
	return nil
}
