package services

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/repositories/memory"
)

func newCatalogServiceForTest(t *testing.T, catalog *memory.CatalogRepository) CatalogService {
	t.Helper()
	svc, err := NewCatalogService(CatalogServiceDeps{
		Catalog: catalog,
		Clock: func() time.Time {
			return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		},
	})
	if err != nil {
		t.Fatalf("new catalog service: %v", err)
	}
	return svc
}

func TestCatalogServiceSaveProductDenormalizesCategory(t *testing.T) {
	catalog := memory.NewCatalogRepository()
	ctx := context.Background()
	if _, err := catalog.UpsertCategory(ctx, domain.Category{ID: "5", Name: "Burgers", Icon: "burger"}); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	svc := newCatalogServiceForTest(t, catalog)

	saved, err := svc.SaveProduct(ctx, domain.Product{
		Name:        " Classic Burger ",
		Description: "<script>alert(1)</script>Juicy",
		Price:       4500,
		CategoryID:  "5",
		IsActive:    true,
	})
	if err != nil {
		t.Fatalf("save product: %v", err)
	}

	if saved.ID == "" {
		t.Fatalf("expected an id to be minted")
	}
	if saved.Name != "Classic Burger" {
		t.Fatalf("expected trimmed name, got %q", saved.Name)
	}
	if saved.Description != "Juicy" {
		t.Fatalf("expected markup stripped, got %q", saved.Description)
	}
	if saved.CategoryName != "Burgers" || saved.CategoryIcon != "burger" {
		t.Fatalf("expected denormalized category metadata, got %+v", saved)
	}
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps set, got %+v", saved)
	}
}

func TestCatalogServiceSaveProductRejectsInvalid(t *testing.T) {
	svc := newCatalogServiceForTest(t, memory.NewCatalogRepository())
	ctx := context.Background()

	if _, err := svc.SaveProduct(ctx, domain.Product{Name: "  ", Price: 100}); !errors.Is(err, ErrCatalogInvalidInput) {
		t.Fatalf("expected invalid input for blank name, got %v", err)
	}
	if _, err := svc.SaveProduct(ctx, domain.Product{Name: "X", Price: -1}); !errors.Is(err, ErrCatalogInvalidInput) {
		t.Fatalf("expected invalid input for negative price, got %v", err)
	}
	if _, err := svc.SaveProduct(ctx, domain.Product{Name: "X", Price: 1, CategoryID: "404"}); !errors.Is(err, ErrCatalogNotFound) {
		t.Fatalf("expected not found for unknown category, got %v", err)
	}
}

func TestCatalogServiceListProductsActiveOnlyByDefault(t *testing.T) {
	catalog := memory.NewCatalogRepository()
	ctx := context.Background()
	seed := []domain.Product{
		{ID: "1", Name: "Active", Price: 100, IsActive: true},
		{ID: "2", Name: "Inactive", Price: 100, IsActive: false},
	}
	for _, product := range seed {
		if _, err := catalog.UpsertProduct(ctx, product); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}
	svc := newCatalogServiceForTest(t, catalog)

	visible, err := svc.ListProducts(ctx, ProductQuery{})
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != "1" {
		t.Fatalf("expected only the active product, got %+v", visible)
	}

	all, err := svc.ListProducts(ctx, ProductQuery{IncludeAll: true})
	if err != nil {
		t.Fatalf("list all products: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both products, got %d", len(all))
	}
}

func TestCatalogServiceFeaturedProductsLimit(t *testing.T) {
	catalog := memory.NewCatalogRepository()
	ctx := context.Background()
	for _, id := range []string{"1", "2", "3", "4", "5", "6"} {
		if _, err := catalog.UpsertProduct(ctx, domain.Product{ID: id, Name: "P" + id, Price: 100, IsActive: true}); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}
	svc := newCatalogServiceForTest(t, catalog)

	featured, err := svc.FeaturedProducts(ctx, 0)
	if err != nil {
		t.Fatalf("featured products: %v", err)
	}
	if len(featured) != 4 {
		t.Fatalf("expected default limit of 4, got %d", len(featured))
	}

	two, err := svc.FeaturedProducts(ctx, 2)
	if err != nil {
		t.Fatalf("featured products: %v", err)
	}
	if len(two) != 2 {
		t.Fatalf("expected 2 products, got %d", len(two))
	}
}

func TestCatalogServiceCategoryCRUD(t *testing.T) {
	svc := newCatalogServiceForTest(t, memory.NewCatalogRepository())
	ctx := context.Background()

	saved, err := svc.SaveCategory(ctx, domain.Category{Name: "Drinks", Icon: "cup"})
	if err != nil {
		t.Fatalf("save category: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected an id to be minted")
	}

	fetched, err := svc.GetCategory(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get category: %v", err)
	}
	if fetched.Name != "Drinks" {
		t.Fatalf("expected Drinks, got %q", fetched.Name)
	}

	if err := svc.DeleteCategory(ctx, saved.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	if _, err := svc.GetCategory(ctx, saved.ID); !errors.Is(err, ErrCatalogNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestCatalogServiceIngredientAndTagValidation(t *testing.T) {
	svc := newCatalogServiceForTest(t, memory.NewCatalogRepository())
	ctx := context.Background()

	if _, err := svc.SaveIngredient(ctx, domain.Ingredient{Name: " "}); !errors.Is(err, ErrCatalogInvalidInput) {
		t.Fatalf("expected invalid input for blank ingredient, got %v", err)
	}
	if _, err := svc.SaveTag(ctx, domain.Tag{Name: ""}); !errors.Is(err, ErrCatalogInvalidInput) {
		t.Fatalf("expected invalid input for blank tag, got %v", err)
	}

	ingredient, err := svc.SaveIngredient(ctx, domain.Ingredient{Name: "Onion", IsActive: true})
	if err != nil {
		t.Fatalf("save ingredient: %v", err)
	}
	tag, err := svc.SaveTag(ctx, domain.Tag{Name: "Popular"})
	if err != nil {
		t.Fatalf("save tag: %v", err)
	}
	if ingredient.ID == "" || tag.ID == "" {
		t.Fatalf("expected minted ids, got %q and %q", ingredient.ID, tag.ID)
	}
}
