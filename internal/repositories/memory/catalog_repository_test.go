package memory

import (
	"context"
	"testing"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/repositories"
)

func seedCatalog(t *testing.T) *CatalogRepository {
	t.Helper()
	repo := NewCatalogRepository()
	ctx := context.Background()

	if _, err := repo.UpsertCategory(ctx, domain.Category{ID: "1", Name: "Burgers", Icon: "burger"}); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	products := []domain.Product{
		{ID: "2", Name: "Cheeseburger", CategoryID: "1", CategoryName: "Burgers", Price: 4500, IsActive: true},
		{ID: "10", Name: "Veggie Wrap", Description: "with hummus", Price: 3800, IsActive: true},
		{ID: "3", Name: "Old Special", Price: 4000, IsActive: false},
	}
	for _, product := range products {
		if _, err := repo.UpsertProduct(ctx, product); err != nil {
			t.Fatalf("seed product %s: %v", product.ID, err)
		}
	}
	return repo
}

func TestCatalogRepositoryListProductsSortsNumericIDs(t *testing.T) {
	repo := seedCatalog(t)

	products, err := repo.ListProducts(context.Background(), repositories.ProductFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	// "10" sorts after "3" numerically, not lexically.
	if products[0].ID != "2" || products[1].ID != "3" || products[2].ID != "10" {
		t.Fatalf("unexpected order %s, %s, %s", products[0].ID, products[1].ID, products[2].ID)
	}
}

func TestCatalogRepositoryListProductsFilters(t *testing.T) {
	repo := seedCatalog(t)
	ctx := context.Background()

	active, err := repo.ListProducts(ctx, repositories.ProductFilter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active products, got %d", len(active))
	}

	burgers, err := repo.ListProducts(ctx, repositories.ProductFilter{CategoryID: "1"})
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(burgers) != 1 || burgers[0].ID != "2" {
		t.Fatalf("expected only the cheeseburger, got %+v", burgers)
	}

	// Search is case-insensitive over name, description and category name.
	matched, err := repo.ListProducts(ctx, repositories.ProductFilter{Query: "HUMMUS"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matched) != 1 || matched[0].ID != "10" {
		t.Fatalf("expected the wrap, got %+v", matched)
	}
}

func TestCatalogRepositoryMintsSequentialIDs(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	first, err := repo.UpsertProduct(ctx, domain.Product{Name: "A", Price: 1})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	second, err := repo.UpsertTag(ctx, domain.Tag{Name: "B"})
	if err != nil {
		t.Fatalf("upsert tag: %v", err)
	}
	if first.ID != "1001" || second.ID != "1002" {
		t.Fatalf("expected minted ids 1001 and 1002, got %s and %s", first.ID, second.ID)
	}
}

func TestCatalogRepositoryCategoryProductCounts(t *testing.T) {
	repo := seedCatalog(t)

	category, err := repo.GetCategory(context.Background(), "1")
	if err != nil {
		t.Fatalf("get category: %v", err)
	}
	if category.ProductsCount != 1 {
		t.Fatalf("expected 1 product counted, got %d", category.ProductsCount)
	}
}
