package services

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/repositories/memory"
)

func newContentServiceForTest(t *testing.T) ContentService {
	t.Helper()
	svc, err := NewContentService(ContentServiceDeps{
		Content: memory.NewContentRepository(),
		Clock: func() time.Time {
			return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		},
	})
	if err != nil {
		t.Fatalf("new content service: %v", err)
	}
	return svc
}

func TestContentServiceUpdateHeroSanitizesAndStamps(t *testing.T) {
	svc := newContentServiceForTest(t)
	ctx := context.Background()

	saved, err := svc.UpdateHero(ctx, domain.HeroSection{
		Title:      " <b>Hot</b> deals ",
		Subtitle:   "Fresh daily",
		ButtonText: "Order now",
		IsActive:   true,
	})
	if err != nil {
		t.Fatalf("update hero: %v", err)
	}
	if saved.Title != "Hot deals" {
		t.Fatalf("expected sanitized title, got %q", saved.Title)
	}
	if saved.ID != "1" {
		t.Fatalf("singleton id must stay fixed, got %q", saved.ID)
	}
	if saved.UpdatedAt != time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) {
		t.Fatalf("expected clock timestamp, got %s", saved.UpdatedAt)
	}

	fetched, err := svc.Hero(ctx)
	if err != nil {
		t.Fatalf("get hero: %v", err)
	}
	if fetched.Title != "Hot deals" {
		t.Fatalf("expected stored hero, got %+v", fetched)
	}
}

func TestContentServiceUpdateHeroRequiresTitle(t *testing.T) {
	svc := newContentServiceForTest(t)

	if _, err := svc.UpdateHero(context.Background(), domain.HeroSection{Title: " <p></p> "}); !errors.Is(err, ErrContentInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestContentServiceUpdateAboutValidation(t *testing.T) {
	svc := newContentServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.UpdateAbout(ctx, domain.AboutSection{Title: ""}); !errors.Is(err, ErrContentInvalidInput) {
		t.Fatalf("expected invalid input for blank title, got %v", err)
	}
	if _, err := svc.UpdateAbout(ctx, domain.AboutSection{Title: "About", YearsExperience: -1}); !errors.Is(err, ErrContentInvalidInput) {
		t.Fatalf("expected invalid input for negative years, got %v", err)
	}

	saved, err := svc.UpdateAbout(ctx, domain.AboutSection{Title: "About us", YearsExperience: 12, IsActive: true})
	if err != nil {
		t.Fatalf("update about: %v", err)
	}
	if saved.YearsExperience != 12 {
		t.Fatalf("expected years kept, got %d", saved.YearsExperience)
	}
}

func TestContentServiceUpdateFeaturedValidation(t *testing.T) {
	svc := newContentServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.UpdateFeatured(ctx, domain.FeaturedPromo{Name: ""}); !errors.Is(err, ErrContentInvalidInput) {
		t.Fatalf("expected invalid input for blank name, got %v", err)
	}
	if _, err := svc.UpdateFeatured(ctx, domain.FeaturedPromo{Name: "Promo", Price: -1}); !errors.Is(err, ErrContentInvalidInput) {
		t.Fatalf("expected invalid input for negative price, got %v", err)
	}
}

func TestContentServiceSiteConfigRoundTrip(t *testing.T) {
	svc := newContentServiceForTest(t)
	ctx := context.Background()

	initial, err := svc.SiteConfig(ctx)
	if err != nil {
		t.Fatalf("get site config: %v", err)
	}
	if !initial.ShowReviews {
		t.Fatalf("expected reviews shown by default")
	}

	updated, err := svc.UpdateSiteConfig(ctx, domain.SiteConfig{ShowReviews: false})
	if err != nil {
		t.Fatalf("update site config: %v", err)
	}
	if updated.ShowReviews {
		t.Fatalf("expected reviews hidden after update")
	}
}
