package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/repositories"
)

const (
	reviewIDPrefix  = "rev_"
	reviewMinRating = 1
	reviewMaxRating = 5
)

var (
	// ErrReviewInvalidInput signals the caller provided invalid review data.
	ErrReviewInvalidInput = errors.New("review: invalid input")
	// ErrReviewNotFound indicates the review could not be located.
	ErrReviewNotFound = errors.New("review: not found")
)

// ReviewServiceDeps bundles collaborators required to construct the review service.
type ReviewServiceDeps struct {
	Reviews     repositories.ReviewRepository
	Clock       func() time.Time
	IDGenerator func() string
	Logger      func(ctx context.Context, event string, fields map[string]any)
}

type reviewService struct {
	reviews repositories.ReviewRepository
	clock   func() time.Time
	newID   func() string
	logger  func(context.Context, string, map[string]any)
}

// NewReviewService wires dependencies into a concrete ReviewService implementation.
func NewReviewService(deps ReviewServiceDeps) (ReviewService, error) {
	if deps.Reviews == nil {
		return nil, errors.New("review service: review repository is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = func() string {
			return ulid.Make().String()
		}
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}

	return &reviewService{
		reviews: deps.Reviews,
		clock: func() time.Time {
			return clock().UTC()
		},
		newID:  idGen,
		logger: logger,
	}, nil
}

// Create sanitizes and stores a customer review. Ratings clamp into the
// 1..5 star range.
func (s *reviewService) Create(ctx context.Context, submission ReviewSubmission) (domain.Review, error) {
	username := sanitizeText(submission.Username)
	if username == "" {
		return domain.Review{}, fmt.Errorf("%w: username is required", ErrReviewInvalidInput)
	}
	comment := sanitizeText(submission.Comment)
	if comment == "" {
		return domain.Review{}, fmt.Errorf("%w: comment is required", ErrReviewInvalidInput)
	}

	rating := submission.Rating
	if rating < reviewMinRating {
		rating = reviewMinRating
	}
	if rating > reviewMaxRating {
		rating = reviewMaxRating
	}

	review := domain.Review{
		ID:        reviewIDPrefix + s.newID(),
		Username:  username,
		Rating:    rating,
		Comment:   comment,
		IsVisible: true,
		CreatedAt: s.clock(),
	}

	if err := s.reviews.Insert(ctx, review); err != nil {
		return domain.Review{}, s.mapRepositoryError(err)
	}

	s.logger(ctx, "review.created", map[string]any{
		"review": review.ID,
		"rating": review.Rating,
	})
	return review, nil
}

// List returns reviews newest first, hidden ones only when requested.
func (s *reviewService) List(ctx context.Context, includeHidden bool) ([]domain.Review, error) {
	reviews, err := s.reviews.List(ctx, includeHidden)
	if err != nil {
		return nil, s.mapRepositoryError(err)
	}
	return reviews, nil
}

// SetVisibility toggles whether a review shows on the storefront.
func (s *reviewService) SetVisibility(ctx context.Context, reviewID string, visible bool) (domain.Review, error) {
	reviewID = strings.TrimSpace(reviewID)
	if reviewID == "" {
		return domain.Review{}, fmt.Errorf("%w: review id is required", ErrReviewInvalidInput)
	}

	review, err := s.reviews.SetVisibility(ctx, reviewID, visible)
	if err != nil {
		return domain.Review{}, s.mapRepositoryError(err)
	}
	return review, nil
}

func (s *reviewService) mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var repoErr repositories.RepositoryError
	if errors.As(err, &repoErr) {
		switch {
		case repoErr.IsNotFound():
			return fmt.Errorf("%w: %v", ErrReviewNotFound, err)
		case repoErr.IsUnavailable():
			return fmt.Errorf("review: repository unavailable: %w", err)
		}
	}
	return err
}
