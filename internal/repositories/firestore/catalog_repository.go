package firestore

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	fs "cloud.google.com/go/firestore"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/platform/firestore"
	"github.com/fastbite/api/internal/repositories"
)

const (
	productsCollection    = "products"
	categoriesCollection  = "categories"
	ingredientsCollection = "ingredients"
	tagsCollection        = "tags"

	catalogCounterID  = "catalog"
	catalogCounterMin = 1000
)

// CatalogRepository stores the storefront catalog in Firestore. Identifiers
// for new entries are minted from the shared catalog counter.
type CatalogRepository struct {
	counters    repositories.CounterRepository
	products    *firestore.Collection[productDocument]
	categories  *firestore.Collection[categoryDocument]
	ingredients *firestore.Collection[ingredientDocument]
	tags        *firestore.Collection[tagDocument]
}

// NewCatalogRepository constructs a Firestore backed catalog repository.
func NewCatalogRepository(provider *firestore.Provider, counters repositories.CounterRepository) (*CatalogRepository, error) {
	if provider == nil {
		return nil, errors.New("catalog repository: firestore provider is required")
	}
	if counters == nil {
		return nil, errors.New("catalog repository: counter repository is required")
	}
	return &CatalogRepository{
		counters:    counters,
		products:    firestore.NewCollection[productDocument](provider, productsCollection),
		categories:  firestore.NewCollection[categoryDocument](provider, categoriesCollection),
		ingredients: firestore.NewCollection[ingredientDocument](provider, ingredientsCollection),
		tags:        firestore.NewCollection[tagDocument](provider, tagsCollection),
	}, nil
}

var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

func (r *CatalogRepository) mintID(ctx context.Context) (string, error) {
	n, err := r.counters.Next(ctx, catalogCounterID, 1)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(catalogCounterMin+n, 10), nil
}

// GetProduct fetches a single product by ID.
func (r *CatalogRepository) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	doc, err := r.products.Get(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}
	return decodeProduct(doc), nil
}

// ListProducts returns catalog products ordered by ID. Text queries match
// name and description case-insensitively.
func (r *CatalogRepository) ListProducts(ctx context.Context, filter repositories.ProductFilter) ([]domain.Product, error) {
	docs, err := r.products.Query(ctx, func(query fs.Query) fs.Query {
		if filter.ActiveOnly {
			query = query.Where("isActive", "==", true)
		}
		if filter.CategoryID != "" {
			query = query.Where("categoryId", "==", filter.CategoryID)
		}
		return query
	})
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(filter.Query))
	products := make([]domain.Product, 0, len(docs))
	for _, doc := range docs {
		product := decodeProduct(doc)
		if needle != "" &&
			!strings.Contains(strings.ToLower(product.Name), needle) &&
			!strings.Contains(strings.ToLower(product.Description), needle) {
			continue
		}
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool {
		return idLess(products[i].ID, products[j].ID)
	})
	return products, nil
}

// UpsertProduct stores a product, minting an ID when absent.
func (r *CatalogRepository) UpsertProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if strings.TrimSpace(product.ID) == "" {
		id, err := r.mintID(ctx)
		if err != nil {
			return domain.Product{}, err
		}
		product.ID = id
	}
	if err := r.products.Set(ctx, product.ID, encodeProduct(product)); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

// DeleteProduct removes a product, failing with not-found when absent.
func (r *CatalogRepository) DeleteProduct(ctx context.Context, productID string) error {
	return r.deleteExisting(ctx, r.products.DocumentRef, productID, "products.delete")
}

// ListCategories returns categories with their live product counts.
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	docs, err := r.categories.Query(ctx, nil)
	if err != nil {
		return nil, err
	}
	counts, err := r.productCounts(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, domain.Category{
			ID:            doc.ID,
			Name:          doc.Name,
			Icon:          doc.Icon,
			ProductsCount: counts[doc.ID],
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		return idLess(categories[i].ID, categories[j].ID)
	})
	return categories, nil
}

// GetCategory fetches a category with its live product count.
func (r *CatalogRepository) GetCategory(ctx context.Context, categoryID string) (domain.Category, error) {
	doc, err := r.categories.Get(ctx, categoryID)
	if err != nil {
		return domain.Category{}, err
	}
	counts, err := r.productCounts(ctx)
	if err != nil {
		return domain.Category{}, err
	}
	return domain.Category{ID: doc.ID, Name: doc.Name, Icon: doc.Icon, ProductsCount: counts[doc.ID]}, nil
}

// UpsertCategory stores a category, minting an ID when absent.
func (r *CatalogRepository) UpsertCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	if strings.TrimSpace(category.ID) == "" {
		id, err := r.mintID(ctx)
		if err != nil {
			return domain.Category{}, err
		}
		category.ID = id
	}
	doc := categoryDocument{ID: category.ID, Name: category.Name, Icon: category.Icon}
	if err := r.categories.Set(ctx, category.ID, doc); err != nil {
		return domain.Category{}, err
	}
	return category, nil
}

// DeleteCategory removes a category, failing with not-found when absent.
func (r *CatalogRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	return r.deleteExisting(ctx, r.categories.DocumentRef, categoryID, "categories.delete")
}

// ListIngredients returns all catalog ingredients ordered by ID.
func (r *CatalogRepository) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	docs, err := r.ingredients.Query(ctx, nil)
	if err != nil {
		return nil, err
	}
	ingredients := make([]domain.Ingredient, 0, len(docs))
	for _, doc := range docs {
		ingredients = append(ingredients, domain.Ingredient(doc))
	}
	sort.Slice(ingredients, func(i, j int) bool {
		return idLess(ingredients[i].ID, ingredients[j].ID)
	})
	return ingredients, nil
}

// UpsertIngredient stores an ingredient, minting an ID when absent.
func (r *CatalogRepository) UpsertIngredient(ctx context.Context, ingredient domain.Ingredient) (domain.Ingredient, error) {
	if strings.TrimSpace(ingredient.ID) == "" {
		id, err := r.mintID(ctx)
		if err != nil {
			return domain.Ingredient{}, err
		}
		ingredient.ID = id
	}
	if err := r.ingredients.Set(ctx, ingredient.ID, ingredientDocument(ingredient)); err != nil {
		return domain.Ingredient{}, err
	}
	return ingredient, nil
}

// DeleteIngredient removes an ingredient, failing with not-found when absent.
func (r *CatalogRepository) DeleteIngredient(ctx context.Context, ingredientID string) error {
	return r.deleteExisting(ctx, r.ingredients.DocumentRef, ingredientID, "ingredients.delete")
}

// ListTags returns all catalog tags ordered by ID.
func (r *CatalogRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	docs, err := r.tags.Query(ctx, nil)
	if err != nil {
		return nil, err
	}
	tags := make([]domain.Tag, 0, len(docs))
	for _, doc := range docs {
		tags = append(tags, domain.Tag(doc))
	}
	sort.Slice(tags, func(i, j int) bool {
		return idLess(tags[i].ID, tags[j].ID)
	})
	return tags, nil
}

// UpsertTag stores a tag, minting an ID when absent.
func (r *CatalogRepository) UpsertTag(ctx context.Context, tag domain.Tag) (domain.Tag, error) {
	if strings.TrimSpace(tag.ID) == "" {
		id, err := r.mintID(ctx)
		if err != nil {
			return domain.Tag{}, err
		}
		tag.ID = id
	}
	if err := r.tags.Set(ctx, tag.ID, tagDocument(tag)); err != nil {
		return domain.Tag{}, err
	}
	return tag, nil
}

// DeleteTag removes a tag, failing with not-found when absent.
func (r *CatalogRepository) DeleteTag(ctx context.Context, tagID string) error {
	return r.deleteExisting(ctx, r.tags.DocumentRef, tagID, "tags.delete")
}

func (r *CatalogRepository) productCounts(ctx context.Context) (map[string]int, error) {
	docs, err := r.products.Query(ctx, nil)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(docs))
	for _, doc := range docs {
		counts[doc.CategoryID]++
	}
	return counts, nil
}

type docRefFunc func(ctx context.Context, id string) (*fs.DocumentRef, error)

func (r *CatalogRepository) deleteExisting(ctx context.Context, ref docRefFunc, id, op string) error {
	doc, err := ref(ctx, id)
	if err != nil {
		return err
	}
	if _, err := doc.Delete(ctx, fs.Exists); err != nil {
		return firestore.WrapError(op, err)
	}
	return nil
}

// idLess orders numeric identifiers numerically and everything else
// lexically, matching the in-memory repositories.
func idLess(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}
