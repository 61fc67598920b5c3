package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fastbite/api/internal/repositories/memory"
)

func newReviewServiceForTest(t *testing.T, reviews *memory.ReviewRepository) ReviewService {
	t.Helper()
	svc, err := NewReviewService(ReviewServiceDeps{
		Reviews: reviews,
		Clock: func() time.Time {
			return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		},
		IDGenerator: func() string { return "test" },
	})
	if err != nil {
		t.Fatalf("new review service: %v", err)
	}
	return svc
}

func TestReviewServiceCreateSanitizesAndDefaultsVisible(t *testing.T) {
	svc := newReviewServiceForTest(t, memory.NewReviewRepository())

	review, err := svc.Create(context.Background(), ReviewSubmission{
		Username: " <i>Maria</i> ",
		Rating:   4,
		Comment:  "Great <script>alert(1)</script>food",
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}

	if review.ID != "rev_test" {
		t.Fatalf("expected id rev_test, got %s", review.ID)
	}
	if review.Username != "Maria" {
		t.Fatalf("expected sanitized username, got %q", review.Username)
	}
	if review.Comment != "Great food" {
		t.Fatalf("expected sanitized comment, got %q", review.Comment)
	}
	if !review.IsVisible {
		t.Fatalf("new reviews must be visible")
	}
}

func TestReviewServiceCreateClampsRating(t *testing.T) {
	svc := newReviewServiceForTest(t, memory.NewReviewRepository())
	ctx := context.Background()

	low, err := svc.Create(ctx, ReviewSubmission{Username: "A", Rating: -3, Comment: "meh"})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	if low.Rating != 1 {
		t.Fatalf("expected rating clamped to 1, got %d", low.Rating)
	}

	// Memory repo rejects duplicate ids, so swap in a fresh store.
	svc = newReviewServiceForTest(t, memory.NewReviewRepository())
	high, err := svc.Create(ctx, ReviewSubmission{Username: "B", Rating: 99, Comment: "wow"})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	if high.Rating != 5 {
		t.Fatalf("expected rating clamped to 5, got %d", high.Rating)
	}
}

func TestReviewServiceCreateValidatesInput(t *testing.T) {
	svc := newReviewServiceForTest(t, memory.NewReviewRepository())
	ctx := context.Background()

	if _, err := svc.Create(ctx, ReviewSubmission{Username: "", Rating: 5, Comment: "x"}); !errors.Is(err, ErrReviewInvalidInput) {
		t.Fatalf("expected invalid input for blank username, got %v", err)
	}
	if _, err := svc.Create(ctx, ReviewSubmission{Username: "A", Rating: 5, Comment: " <p></p> "}); !errors.Is(err, ErrReviewInvalidInput) {
		t.Fatalf("expected invalid input for empty comment, got %v", err)
	}
}

func TestReviewServiceVisibilityModeration(t *testing.T) {
	reviews := memory.NewReviewRepository()
	svc := newReviewServiceForTest(t, reviews)
	ctx := context.Background()

	created, err := svc.Create(ctx, ReviewSubmission{Username: "Maria", Rating: 5, Comment: "Tasty"})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}

	hidden, err := svc.SetVisibility(ctx, created.ID, false)
	if err != nil {
		t.Fatalf("hide review: %v", err)
	}
	if hidden.IsVisible {
		t.Fatalf("expected review hidden")
	}

	visible, err := svc.List(ctx, false)
	if err != nil {
		t.Fatalf("list visible: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("hidden review must not appear publicly, got %d", len(visible))
	}

	all, err := svc.List(ctx, true)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("moderation listing must include hidden reviews, got %d", len(all))
	}

	if _, err := svc.SetVisibility(ctx, "rev_missing", true); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
