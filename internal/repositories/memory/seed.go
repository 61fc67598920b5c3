package memory

import (
	"context"
	"time"

	domain "github.com/fastbite/api/internal/domain"
)

// Seed loads the demo catalog and storefront content so a fresh instance
// shows activity immediately. It is used by local runs and tests.
func Seed(ctx context.Context, registry *Registry) error {
	now := time.Now().UTC()

	categories := []domain.Category{
		{ID: "1", Name: "Hamburguesas", Icon: "🍔"},
		{ID: "2", Name: "Pizzas", Icon: "🍕"},
		{ID: "3", Name: "Bebidas", Icon: "🥤"},
	}
	for _, category := range categories {
		if _, err := registry.catalog.UpsertCategory(ctx, category); err != nil {
			return err
		}
	}

	tags := []domain.Tag{
		{ID: "1", Name: "Popular"},
		{ID: "2", Name: "Nuevo"},
		{ID: "3", Name: "Promo"},
	}
	for _, tag := range tags {
		if _, err := registry.catalog.UpsertTag(ctx, tag); err != nil {
			return err
		}
	}

	ingredients := []domain.Ingredient{
		{ID: "1", Name: "Queso Extra", IsActive: true},
		{ID: "2", Name: "Tocino", IsActive: true},
		{ID: "3", Name: "Palta", IsActive: true},
		{ID: "4", Name: "Tomate", IsActive: true},
		{ID: "5", Name: "Cebolla", IsActive: true},
	}
	for _, ingredient := range ingredients {
		if _, err := registry.catalog.UpsertIngredient(ctx, ingredient); err != nil {
			return err
		}
	}

	assoc := func(id string, cost int64, def bool) domain.IngredientAssociation {
		name := ""
		for _, ingredient := range ingredients {
			if ingredient.ID == id {
				name = ingredient.Name
			}
		}
		return domain.IngredientAssociation{
			IngredientID:    id,
			IngredientName:  name,
			DefaultIncluded: def,
			ExtraCost:       cost,
			IsActive:        true,
		}
	}

	products := []domain.Product{
		{
			ID:           "1",
			Name:         "Burger Clásica",
			Description:  "Carne 120g, queso, tomate y lechuga.",
			Price:        4990,
			CategoryID:   "1",
			CategoryName: "Hamburguesas",
			CategoryIcon: "🍔",
			IsActive:     true,
			Tags:         []domain.Tag{tags[0]},
			Ingredients: []domain.IngredientAssociation{
				assoc("1", 800, true),
				assoc("2", 1200, false),
				assoc("4", 0, true),
				assoc("5", 0, true),
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:           "2",
			Name:         "Burger Tocino",
			Description:  "Carne doble, queso y tocino crujiente.",
			Price:        6990,
			CategoryID:   "1",
			CategoryName: "Hamburguesas",
			CategoryIcon: "🍔",
			IsActive:     true,
			Tags:         []domain.Tag{tags[0], tags[2]},
			Ingredients: []domain.IngredientAssociation{
				assoc("1", 800, true),
				assoc("2", 1200, true),
				assoc("4", 0, true),
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:           "3",
			Name:         "Pizza Margarita",
			Description:  "Mozzarella, tomate y albahaca.",
			Price:        8990,
			CategoryID:   "2",
			CategoryName: "Pizzas",
			CategoryIcon: "🍕",
			IsActive:     true,
			Tags:         []domain.Tag{tags[1]},
			Ingredients: []domain.IngredientAssociation{
				assoc("1", 1000, true),
				assoc("4", 0, true),
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:           "4",
			Name:         "Pizza Pepperoni",
			Description:  "La clásica favorita.",
			Price:        9990,
			CategoryID:   "2",
			CategoryName: "Pizzas",
			CategoryIcon: "🍕",
			IsActive:     true,
			Tags:         []domain.Tag{tags[0]},
			Ingredients: []domain.IngredientAssociation{
				assoc("1", 1000, true),
				assoc("4", 0, true),
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:           "5",
			Name:         "Bebida Cola 350ml",
			Description:  "Bien fría",
			Price:        1200,
			CategoryID:   "3",
			CategoryName: "Bebidas",
			CategoryIcon: "🥤",
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	for _, product := range products {
		if _, err := registry.catalog.UpsertProduct(ctx, product); err != nil {
			return err
		}
	}

	if _, err := registry.content.SetHero(ctx, domain.HeroSection{
		Title:              "Comida rápida que enamora",
		Subtitle:           "Hecha con ingredientes frescos y llena de sabor",
		ButtonText:         "Ordena ahora",
		ButtonURL:          "/#menu",
		BackgroundImageURL: "https://images.pexels.com/photos/2067428/pexels-photo-2067428.jpeg",
		IsActive:           true,
		UpdatedAt:          now,
	}); err != nil {
		return err
	}

	if _, err := registry.content.SetAbout(ctx, domain.AboutSection{
		Title:           "Sobre nosotros",
		Subtitle:        "Pasión por la comida rica",
		Description:     "Llevamos más de 5 años sirviendo las mejores hamburguesas y pizzas.",
		YearsExperience: 5,
		IsActive:        true,
		UpdatedAt:       now,
	}); err != nil {
		return err
	}

	if _, err := registry.content.SetContact(ctx, domain.ContactInfo{
		Phone:     "+56 9 1234 5678",
		Email:     "contacto@fastbite.demo",
		Address:   "Av. Demo 123, Santiago",
		WhatsApp:  "56912345678",
		Facebook:  "https://facebook.com/fastbitedemo",
		Instagram: "https://instagram.com/fastbitedemo",
		IsActive:  true,
		UpdatedAt: now,
	}); err != nil {
		return err
	}

	if _, err := registry.content.SetFeatured(ctx, domain.FeaturedPromo{
		Name:               "Burger Tocino",
		Description:        "Carne doble, queso y tocino crujiente.",
		Price:              6990,
		OriginalPrice:      8990,
		DiscountPercentage: 20,
		PreparationTime:    "15-20 min",
		Servings:           "1-2",
		Rating:             4.7,
		ReviewsCount:       124,
		IsActive:           true,
		UpdatedAt:          now,
	}); err != nil {
		return err
	}

	reviews := []domain.Review{
		{ID: "rev_seed_1", Username: "Camila", Rating: 5, Comment: "¡Exquisito!", IsVisible: true, CreatedAt: now},
		{ID: "rev_seed_2", Username: "Jorge", Rating: 4, Comment: "Muy bueno y rápido", IsVisible: true, CreatedAt: now},
	}
	for i := len(reviews) - 1; i >= 0; i-- {
		if err := registry.reviews.Insert(ctx, reviews[i]); err != nil {
			return err
		}
	}

	return nil
}
