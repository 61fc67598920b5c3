package firestore

import (
	"context"
	"errors"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/platform/firestore"
	"github.com/fastbite/api/internal/repositories"
)

const (
	contentCollection = "content"

	heroDocID       = "hero"
	aboutDocID      = "about"
	contactDocID    = "contact"
	featuredDocID   = "featured"
	siteConfigDocID = "siteConfig"

	singletonID = "1"
)

// ContentRepository stores the storefront content singletons as fixed
// documents of one Firestore collection. Missing documents yield the same
// defaults a fresh in-memory store starts with.
type ContentRepository struct {
	hero     *firestore.Collection[heroDocument]
	about    *firestore.Collection[aboutDocument]
	contact  *firestore.Collection[contactDocument]
	featured *firestore.Collection[featuredDocument]
	site     *firestore.Collection[siteConfigDocument]
}

// NewContentRepository constructs a Firestore backed content repository.
func NewContentRepository(provider *firestore.Provider) (*ContentRepository, error) {
	if provider == nil {
		return nil, errors.New("content repository: firestore provider is required")
	}
	return &ContentRepository{
		hero:     firestore.NewCollection[heroDocument](provider, contentCollection),
		about:    firestore.NewCollection[aboutDocument](provider, contentCollection),
		contact:  firestore.NewCollection[contactDocument](provider, contentCollection),
		featured: firestore.NewCollection[featuredDocument](provider, contentCollection),
		site:     firestore.NewCollection[siteConfigDocument](provider, contentCollection),
	}, nil
}

var _ repositories.ContentRepository = (*ContentRepository)(nil)

func isNotFound(err error) bool {
	var repoErr repositories.RepositoryError
	return errors.As(err, &repoErr) && repoErr.IsNotFound()
}

// GetHero returns the hero section.
func (r *ContentRepository) GetHero(ctx context.Context) (domain.HeroSection, error) {
	doc, err := r.hero.Get(ctx, heroDocID)
	if isNotFound(err) {
		return domain.HeroSection{ID: singletonID, IsActive: true}, nil
	}
	if err != nil {
		return domain.HeroSection{}, err
	}
	return domain.HeroSection(doc), nil
}

// SetHero replaces the hero section.
func (r *ContentRepository) SetHero(ctx context.Context, hero domain.HeroSection) (domain.HeroSection, error) {
	hero.ID = singletonID
	if err := r.hero.Set(ctx, heroDocID, heroDocument(hero)); err != nil {
		return domain.HeroSection{}, err
	}
	return hero, nil
}

// GetAbout returns the about section.
func (r *ContentRepository) GetAbout(ctx context.Context) (domain.AboutSection, error) {
	doc, err := r.about.Get(ctx, aboutDocID)
	if isNotFound(err) {
		return domain.AboutSection{ID: singletonID, IsActive: true}, nil
	}
	if err != nil {
		return domain.AboutSection{}, err
	}
	return domain.AboutSection(doc), nil
}

// SetAbout replaces the about section.
func (r *ContentRepository) SetAbout(ctx context.Context, about domain.AboutSection) (domain.AboutSection, error) {
	about.ID = singletonID
	if err := r.about.Set(ctx, aboutDocID, aboutDocument(about)); err != nil {
		return domain.AboutSection{}, err
	}
	return about, nil
}

// GetContact returns the contact info.
func (r *ContentRepository) GetContact(ctx context.Context) (domain.ContactInfo, error) {
	doc, err := r.contact.Get(ctx, contactDocID)
	if isNotFound(err) {
		return domain.ContactInfo{ID: singletonID, IsActive: true}, nil
	}
	if err != nil {
		return domain.ContactInfo{}, err
	}
	return domain.ContactInfo(doc), nil
}

// SetContact replaces the contact info.
func (r *ContentRepository) SetContact(ctx context.Context, contact domain.ContactInfo) (domain.ContactInfo, error) {
	contact.ID = singletonID
	if err := r.contact.Set(ctx, contactDocID, contactDocument(contact)); err != nil {
		return domain.ContactInfo{}, err
	}
	return contact, nil
}

// GetFeatured returns the featured promotion.
func (r *ContentRepository) GetFeatured(ctx context.Context) (domain.FeaturedPromo, error) {
	doc, err := r.featured.Get(ctx, featuredDocID)
	if isNotFound(err) {
		return domain.FeaturedPromo{ID: singletonID, IsActive: true}, nil
	}
	if err != nil {
		return domain.FeaturedPromo{}, err
	}
	return domain.FeaturedPromo(doc), nil
}

// SetFeatured replaces the featured promotion.
func (r *ContentRepository) SetFeatured(ctx context.Context, promo domain.FeaturedPromo) (domain.FeaturedPromo, error) {
	promo.ID = singletonID
	if err := r.featured.Set(ctx, featuredDocID, featuredDocument(promo)); err != nil {
		return domain.FeaturedPromo{}, err
	}
	return promo, nil
}

// GetSiteConfig returns the site configuration.
func (r *ContentRepository) GetSiteConfig(ctx context.Context) (domain.SiteConfig, error) {
	doc, err := r.site.Get(ctx, siteConfigDocID)
	if isNotFound(err) {
		return domain.SiteConfig{ID: singletonID, ShowReviews: true}, nil
	}
	if err != nil {
		return domain.SiteConfig{}, err
	}
	return domain.SiteConfig(doc), nil
}

// SetSiteConfig replaces the site configuration.
func (r *ContentRepository) SetSiteConfig(ctx context.Context, cfg domain.SiteConfig) (domain.SiteConfig, error) {
	cfg.ID = singletonID
	if err := r.site.Set(ctx, siteConfigDocID, siteConfigDocument(cfg)); err != nil {
		return domain.SiteConfig{}, err
	}
	return cfg, nil
}
