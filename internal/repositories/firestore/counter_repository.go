package firestore

import (
	"context"
	"errors"
	"strings"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fastbite/api/internal/platform/firestore"
	"github.com/fastbite/api/internal/repositories"
)

const countersCollection = "counters"

// CounterRepository mints sequence values from Firestore counter documents.
// Increments run inside a transaction so concurrent callers never observe the
// same value.
type CounterRepository struct {
	provider   *firestore.Provider
	collection *firestore.Collection[counterDocument]
}

// NewCounterRepository constructs a Firestore backed counter repository.
func NewCounterRepository(provider *firestore.Provider) (*CounterRepository, error) {
	if provider == nil {
		return nil, errors.New("counter repository: firestore provider is required")
	}
	return &CounterRepository{
		provider:   provider,
		collection: firestore.NewCollection[counterDocument](provider, countersCollection),
	}, nil
}

var _ repositories.CounterRepository = (*CounterRepository)(nil)

// Next advances the named counter by step and returns the new value. Missing
// counters start at zero; a non-positive step defaults to one.
func (r *CounterRepository) Next(ctx context.Context, counterID string, step int64) (int64, error) {
	if strings.TrimSpace(counterID) == "" {
		return 0, errors.New("counter repository: counter id is required")
	}
	if step <= 0 {
		step = 1
	}

	doc, err := r.collection.DocumentRef(ctx, counterID)
	if err != nil {
		return 0, err
	}

	var next int64
	err = r.provider.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		snap, err := tx.Get(doc)
		if err != nil && status.Code(err) != codes.NotFound {
			return firestore.WrapError("counters.next", err)
		}

		var current counterDocument
		if snap != nil && snap.Exists() {
			if err := snap.DataTo(&current); err != nil {
				return err
			}
		}

		next = current.Value + step
		return tx.Set(doc, counterDocument{Value: next})
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}
