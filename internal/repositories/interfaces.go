package repositories

import (
	"context"

	domain "github.com/fastbite/api/internal/domain"
)

// Registry exposes typed repository accessors and lifecycle hooks for
// dependency injection.
type Registry interface {
	Close(ctx context.Context) error

	Catalog() CatalogRepository
	Orders() OrderRepository
	Reviews() ReviewRepository
	Content() ContentRepository
	Counters() CounterRepository
}

// RepositoryError wraps low-level persistence failures with the
// categorisation services rely on.
type RepositoryError interface {
	error
	IsNotFound() bool
	IsConflict() bool
	IsUnavailable() bool
}

// OrderListFilter narrows order listings. An empty filter lists everything.
type OrderListFilter struct {
	Status *domain.OrderStatus
}

// OrderRepository owns all assembled orders. List returns orders
// most-recent-first; Insert places new orders at the head of that ordering.
type OrderRepository interface {
	Insert(ctx context.Context, order domain.Order) error
	Update(ctx context.Context, order domain.Order) error
	FindByID(ctx context.Context, orderID string) (domain.Order, error)
	List(ctx context.Context, filter OrderListFilter) ([]domain.Order, error)
	Delete(ctx context.Context, orderID string) error
}

// ProductFilter narrows catalog product listings.
type ProductFilter struct {
	CategoryID string
	ActiveOnly bool
	Query      string
}

// CatalogRepository stores products, categories, ingredients and tags. It is
// the order assembler's read-only catalog provider; only admin operations
// mutate it.
type CatalogRepository interface {
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	UpsertProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, categoryID string) (domain.Category, error)
	UpsertCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	ListIngredients(ctx context.Context) ([]domain.Ingredient, error)
	UpsertIngredient(ctx context.Context, ingredient domain.Ingredient) (domain.Ingredient, error)
	DeleteIngredient(ctx context.Context, ingredientID string) error

	ListTags(ctx context.Context) ([]domain.Tag, error)
	UpsertTag(ctx context.Context, tag domain.Tag) (domain.Tag, error)
	DeleteTag(ctx context.Context, tagID string) error
}

// ReviewRepository stores customer reviews, newest first.
type ReviewRepository interface {
	Insert(ctx context.Context, review domain.Review) error
	List(ctx context.Context, includeHidden bool) ([]domain.Review, error)
	SetVisibility(ctx context.Context, reviewID string, visible bool) (domain.Review, error)
}

// ContentRepository stores the storefront content singletons.
type ContentRepository interface {
	GetHero(ctx context.Context) (domain.HeroSection, error)
	SetHero(ctx context.Context, hero domain.HeroSection) (domain.HeroSection, error)

	GetAbout(ctx context.Context) (domain.AboutSection, error)
	SetAbout(ctx context.Context, about domain.AboutSection) (domain.AboutSection, error)

	GetContact(ctx context.Context) (domain.ContactInfo, error)
	SetContact(ctx context.Context, contact domain.ContactInfo) (domain.ContactInfo, error)

	GetFeatured(ctx context.Context) (domain.FeaturedPromo, error)
	SetFeatured(ctx context.Context, promo domain.FeaturedPromo) (domain.FeaturedPromo, error)

	GetSiteConfig(ctx context.Context) (domain.SiteConfig, error)
	SetSiteConfig(ctx context.Context, cfg domain.SiteConfig) (domain.SiteConfig, error)
}

// CounterRepository mints monotonically increasing sequences, used for order
// identifiers.
type CounterRepository interface {
	Next(ctx context.Context, counterID string, step int64) (int64, error)
}
