package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/repositories"
)

// ErrContentInvalidInput signals the caller provided invalid content data.
var ErrContentInvalidInput = errors.New("content: invalid input")

// ContentServiceDeps bundles collaborators required to construct the content service.
type ContentServiceDeps struct {
	Content repositories.ContentRepository
	Clock   func() time.Time
	Logger  func(ctx context.Context, event string, fields map[string]any)
}

type contentService struct {
	content repositories.ContentRepository
	clock   func() time.Time
	logger  func(context.Context, string, map[string]any)
}

// NewContentService wires dependencies into a concrete ContentService implementation.
func NewContentService(deps ContentServiceDeps) (ContentService, error) {
	if deps.Content == nil {
		return nil, errors.New("content service: content repository is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}

	return &contentService{
		content: deps.Content,
		clock: func() time.Time {
			return clock().UTC()
		},
		logger: logger,
	}, nil
}

// Hero returns the storefront hero section.
func (s *contentService) Hero(ctx context.Context) (domain.HeroSection, error) {
	return s.content.GetHero(ctx)
}

// UpdateHero sanitizes and stores the hero section.
func (s *contentService) UpdateHero(ctx context.Context, hero domain.HeroSection) (domain.HeroSection, error) {
	hero.Title = sanitizeText(hero.Title)
	hero.Subtitle = sanitizeText(hero.Subtitle)
	hero.ButtonText = sanitizeText(hero.ButtonText)
	if hero.Title == "" {
		return domain.HeroSection{}, fmt.Errorf("%w: hero title is required", ErrContentInvalidInput)
	}
	hero.UpdatedAt = s.clock()

	saved, err := s.content.SetHero(ctx, hero)
	if err != nil {
		return domain.HeroSection{}, err
	}
	s.logger(ctx, "content.hero.updated", map[string]any{"title": saved.Title})
	return saved, nil
}

// About returns the storefront about section.
func (s *contentService) About(ctx context.Context) (domain.AboutSection, error) {
	return s.content.GetAbout(ctx)
}

// UpdateAbout sanitizes and stores the about section.
func (s *contentService) UpdateAbout(ctx context.Context, about domain.AboutSection) (domain.AboutSection, error) {
	about.Title = sanitizeText(about.Title)
	about.Subtitle = sanitizeText(about.Subtitle)
	about.Description = sanitizeText(about.Description)
	if about.Title == "" {
		return domain.AboutSection{}, fmt.Errorf("%w: about title is required", ErrContentInvalidInput)
	}
	if about.YearsExperience < 0 {
		return domain.AboutSection{}, fmt.Errorf("%w: years of experience must not be negative", ErrContentInvalidInput)
	}
	about.UpdatedAt = s.clock()
	return s.content.SetAbout(ctx, about)
}

// Contact returns the storefront contact info.
func (s *contentService) Contact(ctx context.Context) (domain.ContactInfo, error) {
	return s.content.GetContact(ctx)
}

// UpdateContact sanitizes and stores the contact info.
func (s *contentService) UpdateContact(ctx context.Context, contact domain.ContactInfo) (domain.ContactInfo, error) {
	contact.Phone = sanitizeText(contact.Phone)
	contact.Email = sanitizeText(contact.Email)
	contact.Address = sanitizeText(contact.Address)
	contact.UpdatedAt = s.clock()
	return s.content.SetContact(ctx, contact)
}

// Featured returns the landing page promotion.
func (s *contentService) Featured(ctx context.Context) (domain.FeaturedPromo, error) {
	return s.content.GetFeatured(ctx)
}

// UpdateFeatured sanitizes and stores the landing page promotion.
func (s *contentService) UpdateFeatured(ctx context.Context, promo domain.FeaturedPromo) (domain.FeaturedPromo, error) {
	promo.Name = sanitizeText(promo.Name)
	promo.Description = sanitizeText(promo.Description)
	if promo.Name == "" {
		return domain.FeaturedPromo{}, fmt.Errorf("%w: promo name is required", ErrContentInvalidInput)
	}
	if promo.Price < 0 || promo.OriginalPrice < 0 {
		return domain.FeaturedPromo{}, fmt.Errorf("%w: promo prices must not be negative", ErrContentInvalidInput)
	}
	promo.UpdatedAt = s.clock()
	return s.content.SetFeatured(ctx, promo)
}

// SiteConfig returns the storefront-wide toggles.
func (s *contentService) SiteConfig(ctx context.Context) (domain.SiteConfig, error) {
	return s.content.GetSiteConfig(ctx)
}

// UpdateSiteConfig stores the storefront-wide toggles.
func (s *contentService) UpdateSiteConfig(ctx context.Context, cfg domain.SiteConfig) (domain.SiteConfig, error) {
	cfg.UpdatedAt = s.clock()
	return s.content.SetSiteConfig(ctx, cfg)
}
