package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/repositories"
)

// CatalogRepository is an in-memory catalog backing. Reads hand out copies;
// admin mutations replace whole records under the write lock.
type CatalogRepository struct {
	mu          sync.RWMutex
	products    map[string]domain.Product
	categories  map[string]domain.Category
	ingredients map[string]domain.Ingredient
	tags        map[string]domain.Tag
	nextID      int64
}

// NewCatalogRepository constructs an empty in-memory catalog.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		products:    map[string]domain.Product{},
		categories:  map[string]domain.Category{},
		ingredients: map[string]domain.Ingredient{},
		tags:        map[string]domain.Tag{},
		nextID:      1000,
	}
}

// GetProduct returns the product with the given id.
func (r *CatalogRepository) GetProduct(_ context.Context, productID string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[productID]
	if !ok {
		return domain.Product{}, repositories.NewNotFound("memory.catalog.product", fmt.Sprintf("product %s not found", productID))
	}
	return cloneProduct(product), nil
}

// ListProducts returns products matching the filter, ordered by id.
func (r *CatalogRepository) ListProducts(_ context.Context, filter repositories.ProductFilter) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]domain.Product, 0, len(r.products))
	for _, product := range r.products {
		if filter.ActiveOnly && !product.IsActive {
			continue
		}
		if filter.CategoryID != "" && product.CategoryID != filter.CategoryID {
			continue
		}
		if query != "" && !productMatches(product, query) {
			continue
		}
		out = append(out, cloneProduct(product))
	}
	sortProducts(out)
	return out, nil
}

// UpsertProduct inserts or replaces a product, minting an id when absent.
func (r *CatalogRepository) UpsertProduct(_ context.Context, product domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = r.mintID()
	}
	r.products[product.ID] = cloneProduct(product)
	return cloneProduct(product), nil
}

// DeleteProduct removes a product.
func (r *CatalogRepository) DeleteProduct(_ context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[productID]; !ok {
		return repositories.NewNotFound("memory.catalog.product", fmt.Sprintf("product %s not found", productID))
	}
	delete(r.products, productID)
	return nil
}

// ListCategories returns all categories with live product counts.
func (r *CatalogRepository) ListCategories(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Category, 0, len(r.categories))
	for _, category := range r.categories {
		category.ProductsCount = r.countProducts(category.ID)
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool { return idLess(out[i].ID, out[j].ID) })
	return out, nil
}

// GetCategory returns the category with the given id.
func (r *CatalogRepository) GetCategory(_ context.Context, categoryID string) (domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[categoryID]
	if !ok {
		return domain.Category{}, repositories.NewNotFound("memory.catalog.category", fmt.Sprintf("category %s not found", categoryID))
	}
	category.ProductsCount = r.countProducts(category.ID)
	return category, nil
}

// UpsertCategory inserts or replaces a category.
func (r *CatalogRepository) UpsertCategory(_ context.Context, category domain.Category) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == "" {
		category.ID = r.mintID()
	}
	r.categories[category.ID] = category
	return category, nil
}

// DeleteCategory removes a category.
func (r *CatalogRepository) DeleteCategory(_ context.Context, categoryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[categoryID]; !ok {
		return repositories.NewNotFound("memory.catalog.category", fmt.Sprintf("category %s not found", categoryID))
	}
	delete(r.categories, categoryID)
	return nil
}

// ListIngredients returns all ingredients ordered by id.
func (r *CatalogRepository) ListIngredients(_ context.Context) ([]domain.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Ingredient, 0, len(r.ingredients))
	for _, ingredient := range r.ingredients {
		out = append(out, ingredient)
	}
	sort.Slice(out, func(i, j int) bool { return idLess(out[i].ID, out[j].ID) })
	return out, nil
}

// UpsertIngredient inserts or replaces an ingredient.
func (r *CatalogRepository) UpsertIngredient(_ context.Context, ingredient domain.Ingredient) (domain.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ingredient.ID == "" {
		ingredient.ID = r.mintID()
	}
	r.ingredients[ingredient.ID] = ingredient
	return ingredient, nil
}

// DeleteIngredient removes an ingredient.
func (r *CatalogRepository) DeleteIngredient(_ context.Context, ingredientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ingredients[ingredientID]; !ok {
		return repositories.NewNotFound("memory.catalog.ingredient", fmt.Sprintf("ingredient %s not found", ingredientID))
	}
	delete(r.ingredients, ingredientID)
	return nil
}

// ListTags returns all tags ordered by id.
func (r *CatalogRepository) ListTags(_ context.Context) ([]domain.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Tag, 0, len(r.tags))
	for _, tag := range r.tags {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return idLess(out[i].ID, out[j].ID) })
	return out, nil
}

// UpsertTag inserts or replaces a tag.
func (r *CatalogRepository) UpsertTag(_ context.Context, tag domain.Tag) (domain.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tag.ID == "" {
		tag.ID = r.mintID()
	}
	r.tags[tag.ID] = tag
	return tag, nil
}

// DeleteTag removes a tag.
func (r *CatalogRepository) DeleteTag(_ context.Context, tagID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tags[tagID]; !ok {
		return repositories.NewNotFound("memory.catalog.tag", fmt.Sprintf("tag %s not found", tagID))
	}
	delete(r.tags, tagID)
	return nil
}

func (r *CatalogRepository) countProducts(categoryID string) int {
	count := 0
	for _, product := range r.products {
		if product.CategoryID == categoryID {
			count++
		}
	}
	return count
}

func (r *CatalogRepository) mintID() string {
	r.nextID++
	return strconv.FormatInt(r.nextID, 10)
}

func productMatches(product domain.Product, query string) bool {
	return strings.Contains(strings.ToLower(product.Name), query) ||
		strings.Contains(strings.ToLower(product.Description), query) ||
		strings.Contains(strings.ToLower(product.CategoryName), query)
}

func sortProducts(products []domain.Product) {
	sort.Slice(products, func(i, j int) bool { return idLess(products[i].ID, products[j].ID) })
}

// idLess orders numeric ids numerically and falls back to lexical ordering.
func idLess(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

func cloneProduct(product domain.Product) domain.Product {
	cloned := product
	cloned.Tags = append([]domain.Tag(nil), product.Tags...)
	cloned.Ingredients = append([]domain.IngredientAssociation(nil), product.Ingredients...)
	return cloned
}
