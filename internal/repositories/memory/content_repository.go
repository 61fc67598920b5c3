package memory

import (
	"context"
	"sync"

	domain "github.com/fastbite/api/internal/domain"
)

// ContentRepository holds the storefront content singletons in memory.
type ContentRepository struct {
	mu       sync.RWMutex
	hero     domain.HeroSection
	about    domain.AboutSection
	contact  domain.ContactInfo
	featured domain.FeaturedPromo
	site     domain.SiteConfig
}

// NewContentRepository constructs a content repository with zero-value
// singletons; callers typically seed it at startup.
func NewContentRepository() *ContentRepository {
	return &ContentRepository{
		hero:     domain.HeroSection{ID: "1", IsActive: true},
		about:    domain.AboutSection{ID: "1", IsActive: true},
		contact:  domain.ContactInfo{ID: "1", IsActive: true},
		featured: domain.FeaturedPromo{ID: "1", IsActive: true},
		site:     domain.SiteConfig{ID: "1", ShowReviews: true},
	}
}

// GetHero returns the hero section.
func (r *ContentRepository) GetHero(_ context.Context) (domain.HeroSection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hero, nil
}

// SetHero replaces the hero section.
func (r *ContentRepository) SetHero(_ context.Context, hero domain.HeroSection) (domain.HeroSection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	hero.ID = r.hero.ID
	r.hero = hero
	return r.hero, nil
}

// GetAbout returns the about section.
func (r *ContentRepository) GetAbout(_ context.Context) (domain.AboutSection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.about, nil
}

// SetAbout replaces the about section.
func (r *ContentRepository) SetAbout(_ context.Context, about domain.AboutSection) (domain.AboutSection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	about.ID = r.about.ID
	r.about = about
	return r.about, nil
}

// GetContact returns the contact info.
func (r *ContentRepository) GetContact(_ context.Context) (domain.ContactInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.contact, nil
}

// SetContact replaces the contact info.
func (r *ContentRepository) SetContact(_ context.Context, contact domain.ContactInfo) (domain.ContactInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	contact.ID = r.contact.ID
	r.contact = contact
	return r.contact, nil
}

// GetFeatured returns the featured promotion.
func (r *ContentRepository) GetFeatured(_ context.Context) (domain.FeaturedPromo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.featured, nil
}

// SetFeatured replaces the featured promotion.
func (r *ContentRepository) SetFeatured(_ context.Context, promo domain.FeaturedPromo) (domain.FeaturedPromo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	promo.ID = r.featured.ID
	r.featured = promo
	return r.featured, nil
}

// GetSiteConfig returns the site configuration.
func (r *ContentRepository) GetSiteConfig(_ context.Context) (domain.SiteConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.site, nil
}

// SetSiteConfig replaces the site configuration.
func (r *ContentRepository) SetSiteConfig(_ context.Context, cfg domain.SiteConfig) (domain.SiteConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cfg.ID = r.site.ID
	r.site = cfg
	return r.site, nil
}
