package firestore

import (
	"context"
	"errors"

	fs "cloud.google.com/go/firestore"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/platform/firestore"
	"github.com/fastbite/api/internal/repositories"
)

const reviewsCollection = "reviews"

// ReviewRepository persists customer reviews in Firestore.
type ReviewRepository struct {
	provider   *firestore.Provider
	collection *firestore.Collection[reviewDocument]
}

// NewReviewRepository constructs a Firestore backed review repository.
func NewReviewRepository(provider *firestore.Provider) (*ReviewRepository, error) {
	if provider == nil {
		return nil, errors.New("review repository: firestore provider is required")
	}
	return &ReviewRepository{
		provider:   provider,
		collection: firestore.NewCollection[reviewDocument](provider, reviewsCollection),
	}, nil
}

var _ repositories.ReviewRepository = (*ReviewRepository)(nil)

// Insert stores a new review, failing with a conflict when the ID is taken.
func (r *ReviewRepository) Insert(ctx context.Context, review domain.Review) error {
	doc, err := r.collection.DocumentRef(ctx, review.ID)
	if err != nil {
		return err
	}
	if _, err := doc.Create(ctx, reviewDocument(review)); err != nil {
		return firestore.WrapError("reviews.insert", err)
	}
	return nil
}

// List returns reviews newest first. Hidden reviews are included only when
// requested.
func (r *ReviewRepository) List(ctx context.Context, includeHidden bool) ([]domain.Review, error) {
	docs, err := r.collection.Query(ctx, func(query fs.Query) fs.Query {
		if !includeHidden {
			query = query.Where("isVisible", "==", true)
		}
		return query.OrderBy("createdAt", fs.Desc)
	})
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(docs))
	for _, doc := range docs {
		reviews = append(reviews, domain.Review(doc))
	}
	return reviews, nil
}

// SetVisibility toggles whether a review shows on the storefront.
func (r *ReviewRepository) SetVisibility(ctx context.Context, reviewID string, visible bool) (domain.Review, error) {
	doc, err := r.collection.DocumentRef(ctx, reviewID)
	if err != nil {
		return domain.Review{}, err
	}

	var updated domain.Review
	err = r.provider.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		snap, err := tx.Get(doc)
		if err != nil {
			return firestore.WrapError("reviews.visibility", err)
		}
		var current reviewDocument
		if err := snap.DataTo(&current); err != nil {
			return err
		}
		current.IsVisible = visible
		updated = domain.Review(current)
		return tx.Set(doc, current)
	})
	if err != nil {
		return domain.Review{}, err
	}
	return updated, nil
}
