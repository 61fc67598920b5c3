package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/repositories"
)

const defaultFeaturedLimit = 4

var (
	// ErrCatalogInvalidInput signals the caller provided invalid data.
	ErrCatalogInvalidInput = errors.New("catalog: invalid input")
	// ErrCatalogNotFound indicates the catalog entry could not be located.
	ErrCatalogNotFound = errors.New("catalog: not found")
	// ErrCatalogConflict indicates duplicate or concurrent catalog writes.
	ErrCatalogConflict = errors.New("catalog: conflict")
)

// CatalogServiceDeps bundles collaborators required to construct the catalog service.
type CatalogServiceDeps struct {
	Catalog repositories.CatalogRepository
	Clock   func() time.Time
	Logger  func(ctx context.Context, event string, fields map[string]any)
}

type catalogService struct {
	catalog repositories.CatalogRepository
	clock   func() time.Time
	logger  func(context.Context, string, map[string]any)
}

// NewCatalogService wires dependencies into a concrete CatalogService implementation.
func NewCatalogService(deps CatalogServiceDeps) (CatalogService, error) {
	if deps.Catalog == nil {
		return nil, errors.New("catalog service: catalog repository is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}

	return &catalogService{
		catalog: deps.Catalog,
		clock: func() time.Time {
			return clock().UTC()
		},
		logger: logger,
	}, nil
}

// ListProducts returns catalog products. Public listings see active products
// only; admin listings pass IncludeAll.
func (s *catalogService) ListProducts(ctx context.Context, query ProductQuery) ([]domain.Product, error) {
	products, err := s.catalog.ListProducts(ctx, repositories.ProductFilter{
		CategoryID: strings.TrimSpace(query.CategoryID),
		ActiveOnly: !query.IncludeAll,
		Query:      strings.TrimSpace(query.Search),
	})
	if err != nil {
		return nil, s.mapRepositoryError(err)
	}
	if query.Limit > 0 && len(products) > query.Limit {
		products = products[:query.Limit]
	}
	return products, nil
}

// GetProduct fetches one product by id.
func (s *catalogService) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return domain.Product{}, fmt.Errorf("%w: product id is required", ErrCatalogInvalidInput)
	}
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, s.mapRepositoryError(err)
	}
	return product, nil
}

// FeaturedProducts returns the first active products for the landing page.
func (s *catalogService) FeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	return s.ListProducts(ctx, ProductQuery{Limit: limit})
}

// SaveProduct creates or updates a product, denormalising category metadata
// onto it.
func (s *catalogService) SaveProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return domain.Product{}, fmt.Errorf("%w: product name is required", ErrCatalogInvalidInput)
	}
	if product.Price < 0 {
		return domain.Product{}, fmt.Errorf("%w: product price must not be negative", ErrCatalogInvalidInput)
	}
	product.Description = sanitizeText(product.Description)

	if categoryID := strings.TrimSpace(product.CategoryID); categoryID != "" {
		category, err := s.catalog.GetCategory(ctx, categoryID)
		if err != nil {
			return domain.Product{}, s.mapRepositoryError(err)
		}
		product.CategoryID = category.ID
		product.CategoryName = category.Name
		product.CategoryIcon = category.Icon
	}

	now := s.clock()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	saved, err := s.catalog.UpsertProduct(ctx, product)
	if err != nil {
		return domain.Product{}, s.mapRepositoryError(err)
	}

	s.logger(ctx, "catalog.product.saved", map[string]any{
		"product": saved.ID,
		"name":    saved.Name,
	})
	return saved, nil
}

// DeleteProduct removes a product from the catalog.
func (s *catalogService) DeleteProduct(ctx context.Context, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return fmt.Errorf("%w: product id is required", ErrCatalogInvalidInput)
	}
	if err := s.catalog.DeleteProduct(ctx, productID); err != nil {
		return s.mapRepositoryError(err)
	}
	return nil
}

// ListCategories returns all categories with live product counts.
func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, s.mapRepositoryError(err)
	}
	return categories, nil
}

// GetCategory fetches one category by id.
func (s *catalogService) GetCategory(ctx context.Context, categoryID string) (domain.Category, error) {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return domain.Category{}, fmt.Errorf("%w: category id is required", ErrCatalogInvalidInput)
	}
	category, err := s.catalog.GetCategory(ctx, categoryID)
	if err != nil {
		return domain.Category{}, s.mapRepositoryError(err)
	}
	return category, nil
}

// SaveCategory creates or updates a category.
func (s *catalogService) SaveCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return domain.Category{}, fmt.Errorf("%w: category name is required", ErrCatalogInvalidInput)
	}
	saved, err := s.catalog.UpsertCategory(ctx, category)
	if err != nil {
		return domain.Category{}, s.mapRepositoryError(err)
	}
	return saved, nil
}

// DeleteCategory removes a category.
func (s *catalogService) DeleteCategory(ctx context.Context, categoryID string) error {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return fmt.Errorf("%w: category id is required", ErrCatalogInvalidInput)
	}
	if err := s.catalog.DeleteCategory(ctx, categoryID); err != nil {
		return s.mapRepositoryError(err)
	}
	return nil
}

// ListIngredients returns all catalog ingredients.
func (s *catalogService) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	ingredients, err := s.catalog.ListIngredients(ctx)
	if err != nil {
		return nil, s.mapRepositoryError(err)
	}
	return ingredients, nil
}

// SaveIngredient creates or updates an ingredient.
func (s *catalogService) SaveIngredient(ctx context.Context, ingredient domain.Ingredient) (domain.Ingredient, error) {
	ingredient.Name = strings.TrimSpace(ingredient.Name)
	if ingredient.Name == "" {
		return domain.Ingredient{}, fmt.Errorf("%w: ingredient name is required", ErrCatalogInvalidInput)
	}
	saved, err := s.catalog.UpsertIngredient(ctx, ingredient)
	if err != nil {
		return domain.Ingredient{}, s.mapRepositoryError(err)
	}
	return saved, nil
}

// DeleteIngredient removes an ingredient.
func (s *catalogService) DeleteIngredient(ctx context.Context, ingredientID string) error {
	ingredientID = strings.TrimSpace(ingredientID)
	if ingredientID == "" {
		return fmt.Errorf("%w: ingredient id is required", ErrCatalogInvalidInput)
	}
	if err := s.catalog.DeleteIngredient(ctx, ingredientID); err != nil {
		return s.mapRepositoryError(err)
	}
	return nil
}

// ListTags returns all catalog tags.
func (s *catalogService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.catalog.ListTags(ctx)
	if err != nil {
		return nil, s.mapRepositoryError(err)
	}
	return tags, nil
}

// SaveTag creates or updates a tag.
func (s *catalogService) SaveTag(ctx context.Context, tag domain.Tag) (domain.Tag, error) {
	tag.Name = strings.TrimSpace(tag.Name)
	if tag.Name == "" {
		return domain.Tag{}, fmt.Errorf("%w: tag name is required", ErrCatalogInvalidInput)
	}
	saved, err := s.catalog.UpsertTag(ctx, tag)
	if err != nil {
		return domain.Tag{}, s.mapRepositoryError(err)
	}
	return saved, nil
}

// DeleteTag removes a tag.
func (s *catalogService) DeleteTag(ctx context.Context, tagID string) error {
	tagID = strings.TrimSpace(tagID)
	if tagID == "" {
		return fmt.Errorf("%w: tag id is required", ErrCatalogInvalidInput)
	}
	if err := s.catalog.DeleteTag(ctx, tagID); err != nil {
		return s.mapRepositoryError(err)
	}
	return nil
}

func (s *catalogService) mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var repoErr repositories.RepositoryError
	if errors.As(err, &repoErr) {
		switch {
		case repoErr.IsNotFound():
			return fmt.Errorf("%w: %v", ErrCatalogNotFound, err)
		case repoErr.IsConflict():
			return fmt.Errorf("%w: %v", ErrCatalogConflict, err)
		case repoErr.IsUnavailable():
			return fmt.Errorf("catalog: repository unavailable: %w", err)
		}
	}
	return err
}
