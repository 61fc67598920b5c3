package firestore

import (
	"time"

	domain "github.com/fastbite/api/internal/domain"
)

// Document payloads mirror the domain aggregates with explicit field names so
// the stored shape stays stable if the domain structs are reorganised.

type orderDocument struct {
	ID              string              `firestore:"id"`
	OrderNumber     string              `firestore:"orderNumber"`
	CustomerName    string              `firestore:"customerName"`
	CustomerPhone   string              `firestore:"customerPhone"`
	CustomerEmail   string              `firestore:"customerEmail"`
	Street          string              `firestore:"street"`
	StreetNumber    string              `firestore:"streetNumber"`
	Apartment       string              `firestore:"apartment"`
	City            string              `firestore:"city"`
	Region          string              `firestore:"region"`
	DeliveryAddress string              `firestore:"deliveryAddress"`
	Notes           string              `firestore:"notes"`
	Status          string              `firestore:"status"`
	TotalAmount     int64               `firestore:"totalAmount"`
	Items           []orderItemDocument `firestore:"items"`
	CreatedAt       time.Time           `firestore:"createdAt"`
	UpdatedAt       time.Time           `firestore:"updatedAt"`
}

type orderItemDocument struct {
	ProductID          string                   `firestore:"productId"`
	ProductName        string                   `firestore:"productName"`
	ProductDescription string                   `firestore:"productDescription"`
	Quantity           int                      `firestore:"quantity"`
	UnitPrice          int64                    `firestore:"unitPrice"`
	TotalPrice         int64                    `firestore:"totalPrice"`
	Extras             []orderExtraDocument    `firestore:"extras"`
	Ingredients        []orderDecisionDocument `firestore:"ingredients"`
}

type orderExtraDocument struct {
	IngredientID   string `firestore:"ingredientId"`
	IngredientName string `firestore:"ingredientName"`
	Quantity       int    `firestore:"quantity"`
	UnitPrice      int64  `firestore:"unitPrice"`
	TotalPrice     int64  `firestore:"totalPrice"`
}

type orderDecisionDocument struct {
	IngredientID   string `firestore:"ingredientId"`
	IngredientName string `firestore:"ingredientName"`
	IsIncluded     bool   `firestore:"isIncluded"`
	WasDefault     bool   `firestore:"wasDefault"`
}

func encodeOrder(order domain.Order) orderDocument {
	doc := orderDocument{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerEmail:   order.CustomerEmail,
		Street:          order.Delivery.Street,
		StreetNumber:    order.Delivery.Number,
		Apartment:       order.Delivery.Apartment,
		City:            order.Delivery.City,
		Region:          order.Delivery.Region,
		DeliveryAddress: order.DeliveryAddress,
		Notes:           order.Notes,
		Status:          string(order.Status),
		TotalAmount:     order.TotalAmount,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
	for _, item := range order.Items {
		itemDoc := orderItemDocument{
			ProductID:          item.ProductID,
			ProductName:        item.ProductName,
			ProductDescription: item.ProductDescription,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			TotalPrice:         item.TotalPrice,
		}
		for _, extra := range item.Extras {
			itemDoc.Extras = append(itemDoc.Extras, orderExtraDocument(extra))
		}
		for _, decision := range item.Ingredients {
			itemDoc.Ingredients = append(itemDoc.Ingredients, orderDecisionDocument(decision))
		}
		doc.Items = append(doc.Items, itemDoc)
	}
	return doc
}

func decodeOrder(doc orderDocument) domain.Order {
	order := domain.Order{
		ID:            doc.ID,
		OrderNumber:   doc.OrderNumber,
		CustomerName:  doc.CustomerName,
		CustomerPhone: doc.CustomerPhone,
		CustomerEmail: doc.CustomerEmail,
		Delivery: domain.DeliveryAddress{
			Street:    doc.Street,
			Number:    doc.StreetNumber,
			Apartment: doc.Apartment,
			City:      doc.City,
			Region:    doc.Region,
		},
		DeliveryAddress: doc.DeliveryAddress,
		Notes:           doc.Notes,
		Status:          domain.OrderStatus(doc.Status),
		TotalAmount:     doc.TotalAmount,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
	for _, itemDoc := range doc.Items {
		item := domain.OrderItem{
			ProductID:          itemDoc.ProductID,
			ProductName:        itemDoc.ProductName,
			ProductDescription: itemDoc.ProductDescription,
			Quantity:           itemDoc.Quantity,
			UnitPrice:          itemDoc.UnitPrice,
			TotalPrice:         itemDoc.TotalPrice,
		}
		for _, extra := range itemDoc.Extras {
			item.Extras = append(item.Extras, domain.OrderItemExtra(extra))
		}
		for _, decision := range itemDoc.Ingredients {
			item.Ingredients = append(item.Ingredients, domain.IngredientDecision(decision))
		}
		order.Items = append(order.Items, item)
	}
	return order
}

type productDocument struct {
	ID           string                `firestore:"id"`
	Name         string                `firestore:"name"`
	Description  string                `firestore:"description"`
	Price        int64                 `firestore:"price"`
	CategoryID   string                `firestore:"categoryId"`
	CategoryName string                `firestore:"categoryName"`
	CategoryIcon string                `firestore:"categoryIcon"`
	ImageURL     string                `firestore:"imageUrl"`
	IsActive     bool                  `firestore:"isActive"`
	Tags         []tagDocument         `firestore:"tags"`
	Ingredients  []associationDocument `firestore:"ingredients"`
	CreatedAt    time.Time             `firestore:"createdAt"`
	UpdatedAt    time.Time             `firestore:"updatedAt"`
}

type tagDocument struct {
	ID   string `firestore:"id"`
	Name string `firestore:"name"`
}

type associationDocument struct {
	IngredientID    string `firestore:"ingredientId"`
	IngredientName  string `firestore:"ingredientName"`
	DefaultIncluded bool   `firestore:"defaultIncluded"`
	ExtraCost       int64  `firestore:"extraCost"`
	IsActive        bool   `firestore:"isActive"`
}

func encodeProduct(product domain.Product) productDocument {
	doc := productDocument{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		CategoryID:   product.CategoryID,
		CategoryName: product.CategoryName,
		CategoryIcon: product.CategoryIcon,
		ImageURL:     product.ImageURL,
		IsActive:     product.IsActive,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
	for _, tag := range product.Tags {
		doc.Tags = append(doc.Tags, tagDocument(tag))
	}
	for _, assoc := range product.Ingredients {
		doc.Ingredients = append(doc.Ingredients, associationDocument(assoc))
	}
	return doc
}

func decodeProduct(doc productDocument) domain.Product {
	product := domain.Product{
		ID:           doc.ID,
		Name:         doc.Name,
		Description:  doc.Description,
		Price:        doc.Price,
		CategoryID:   doc.CategoryID,
		CategoryName: doc.CategoryName,
		CategoryIcon: doc.CategoryIcon,
		ImageURL:     doc.ImageURL,
		IsActive:     doc.IsActive,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
	for _, tag := range doc.Tags {
		product.Tags = append(product.Tags, domain.Tag(tag))
	}
	for _, assoc := range doc.Ingredients {
		product.Ingredients = append(product.Ingredients, domain.IngredientAssociation(assoc))
	}
	return product
}

type categoryDocument struct {
	ID   string `firestore:"id"`
	Name string `firestore:"name"`
	Icon string `firestore:"icon"`
}

type ingredientDocument struct {
	ID       string `firestore:"id"`
	Name     string `firestore:"name"`
	IsActive bool   `firestore:"isActive"`
}

type reviewDocument struct {
	ID        string    `firestore:"id"`
	Username  string    `firestore:"username"`
	Rating    int       `firestore:"rating"`
	Comment   string    `firestore:"comment"`
	IsVisible bool      `firestore:"isVisible"`
	CreatedAt time.Time `firestore:"createdAt"`
}

type counterDocument struct {
	Value int64 `firestore:"value"`
}

type heroDocument struct {
	ID                 string    `firestore:"id"`
	Title              string    `firestore:"title"`
	Subtitle           string    `firestore:"subtitle"`
	ButtonText         string    `firestore:"buttonText"`
	ButtonURL          string    `firestore:"buttonUrl"`
	BackgroundImageURL string    `firestore:"backgroundImageUrl"`
	IsActive           bool      `firestore:"isActive"`
	UpdatedAt          time.Time `firestore:"updatedAt"`
}

type aboutDocument struct {
	ID              string    `firestore:"id"`
	Title           string    `firestore:"title"`
	Subtitle        string    `firestore:"subtitle"`
	Description     string    `firestore:"description"`
	ImageURL1       string    `firestore:"imageUrl1"`
	ImageURL2       string    `firestore:"imageUrl2"`
	YearsExperience int       `firestore:"yearsExperience"`
	IsActive        bool      `firestore:"isActive"`
	UpdatedAt       time.Time `firestore:"updatedAt"`
}

type contactDocument struct {
	ID        string    `firestore:"id"`
	Phone     string    `firestore:"phone"`
	Email     string    `firestore:"email"`
	Address   string    `firestore:"address"`
	WhatsApp  string    `firestore:"whatsapp"`
	Facebook  string    `firestore:"facebook"`
	Instagram string    `firestore:"instagram"`
	IsActive  bool      `firestore:"isActive"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

type featuredDocument struct {
	ID                 string    `firestore:"id"`
	Name               string    `firestore:"name"`
	Description        string    `firestore:"description"`
	Price              int64     `firestore:"price"`
	OriginalPrice      int64     `firestore:"originalPrice"`
	DiscountPercentage int       `firestore:"discountPercentage"`
	ImageURL           string    `firestore:"imageUrl"`
	PreparationTime    string    `firestore:"preparationTime"`
	Servings           string    `firestore:"servings"`
	Rating             float64   `firestore:"rating"`
	ReviewsCount       int       `firestore:"reviewsCount"`
	IsActive           bool      `firestore:"isActive"`
	UpdatedAt          time.Time `firestore:"updatedAt"`
}

type siteConfigDocument struct {
	ID          string    `firestore:"id"`
	ShowReviews bool      `firestore:"showReviews"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}
