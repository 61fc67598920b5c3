package services

import (
	"context"
	"time"

	domain "github.com/fastbite/api/internal/domain"
)

// OrderSubmission is the raw storefront checkout payload. Field values come
// in as the loosely typed shapes the web client sends; normalization happens
// during assembly.
type OrderSubmission struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Street        string
	Number        string
	Apartment     string
	City          string
	Region        string
	Notes         string
	Items         []OrderItemSubmission
}

// OrderItemSubmission is one raw cart line. Quantity and the extras map carry
// string values as submitted; IncludedIngredientIDs lists the ingredients the
// customer kept on the item.
type OrderItemSubmission struct {
	ProductID             string
	Quantity              string
	Extras                map[string]string
	IncludedIngredientIDs []string
}

// OrderListQuery narrows admin order listings.
type OrderListQuery struct {
	Status string
}

// OrderService assembles, prices and manages customer orders.
type OrderService interface {
	Create(ctx context.Context, submission OrderSubmission) (domain.Order, error)
	List(ctx context.Context, query OrderListQuery) ([]domain.Order, error)
	Get(ctx context.Context, orderID string) (domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, target domain.OrderStatus) (domain.Order, error)
	Delete(ctx context.Context, orderID string) error
}

// OrderEventMessage captures metadata for emitted order lifecycle events.
type OrderEventMessage struct {
	EventID        string    `json:"eventId"`
	Type           string    `json:"type"`
	OrderID        string    `json:"orderId"`
	OrderNumber    string    `json:"orderNumber"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	TotalAmount    int64     `json:"totalAmount"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// OrderEventPublisher publishes order lifecycle events for downstream
// consumers. Implementations return the broker message id.
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEventMessage) (string, error)
}

// PricingEngine prices a product together with a selection of billed extras.
type PricingEngine interface {
	Quote(product domain.Product, extraIDs []string) domain.PriceQuote
}

// StatsService aggregates the order store for the admin dashboard.
type StatsService interface {
	Aggregate(ctx context.Context, rangeKeyword string) (domain.StatsReport, error)
}

// ProductQuery narrows public and admin product listings.
type ProductQuery struct {
	CategoryID string
	Search     string
	IncludeAll bool
	Limit      int
}

// CatalogService exposes the storefront catalog plus its admin CRUD.
type CatalogService interface {
	ListProducts(ctx context.Context, query ProductQuery) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
	FeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error)
	SaveProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, categoryID string) (domain.Category, error)
	SaveCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	ListIngredients(ctx context.Context) ([]domain.Ingredient, error)
	SaveIngredient(ctx context.Context, ingredient domain.Ingredient) (domain.Ingredient, error)
	DeleteIngredient(ctx context.Context, ingredientID string) error

	ListTags(ctx context.Context) ([]domain.Tag, error)
	SaveTag(ctx context.Context, tag domain.Tag) (domain.Tag, error)
	DeleteTag(ctx context.Context, tagID string) error
}

// ContentService manages the storefront content singletons.
type ContentService interface {
	Hero(ctx context.Context) (domain.HeroSection, error)
	UpdateHero(ctx context.Context, hero domain.HeroSection) (domain.HeroSection, error)

	About(ctx context.Context) (domain.AboutSection, error)
	UpdateAbout(ctx context.Context, about domain.AboutSection) (domain.AboutSection, error)

	Contact(ctx context.Context) (domain.ContactInfo, error)
	UpdateContact(ctx context.Context, contact domain.ContactInfo) (domain.ContactInfo, error)

	Featured(ctx context.Context) (domain.FeaturedPromo, error)
	UpdateFeatured(ctx context.Context, promo domain.FeaturedPromo) (domain.FeaturedPromo, error)

	SiteConfig(ctx context.Context) (domain.SiteConfig, error)
	UpdateSiteConfig(ctx context.Context, cfg domain.SiteConfig) (domain.SiteConfig, error)
}

// ReviewSubmission is the raw storefront review payload.
type ReviewSubmission struct {
	Username string
	Rating   int
	Comment  string
}

// ReviewService manages customer reviews.
type ReviewService interface {
	Create(ctx context.Context, submission ReviewSubmission) (domain.Review, error)
	List(ctx context.Context, includeHidden bool) ([]domain.Review, error)
	SetVisibility(ctx context.Context, reviewID string, visible bool) (domain.Review, error)
}
