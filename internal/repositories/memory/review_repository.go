package memory

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/repositories"
)

// ReviewRepository is an in-memory review store, newest first.
type ReviewRepository struct {
	mu      sync.RWMutex
	reviews []domain.Review
}

// NewReviewRepository constructs an empty in-memory review repository.
func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// Insert places the review at the head of the collection.
func (r *ReviewRepository) Insert(_ context.Context, review domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reviews {
		if existing.ID == review.ID {
			return repositories.NewConflict("memory.reviews.insert", fmt.Sprintf("review %s already exists", review.ID))
		}
	}
	r.reviews = append([]domain.Review{review}, r.reviews...)
	return nil
}

// List returns reviews newest first, optionally including hidden ones.
func (r *ReviewRepository) List(_ context.Context, includeHidden bool) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		if !includeHidden && !review.IsVisible {
			continue
		}
		out = append(out, review)
	}
	return out, nil
}

// SetVisibility toggles whether a review is publicly visible.
func (r *ReviewRepository) SetVisibility(_ context.Context, reviewID string, visible bool) (domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, review := range r.reviews {
		if review.ID == reviewID {
			r.reviews[i].IsVisible = visible
			return r.reviews[i], nil
		}
	}
	return domain.Review{}, repositories.NewNotFound("memory.reviews.visibility", fmt.Sprintf("review %s not found", reviewID))
}
