package domain

import (
	"time"
)

// Category groups products for storefront navigation.
type Category struct {
	ID            string
	Name          string
	Icon          string
	ProductsCount int
}

// Tag labels products for storefront badges (popular, new, promo).
type Tag struct {
	ID   string
	Name string
}

// Ingredient is a catalog-level ingredient that products may reference.
type Ingredient struct {
	ID       string
	Name     string
	IsActive bool
}

// IngredientAssociation links a product to an ingredient. DefaultIncluded
// marks ingredients present unless the customer removes them; ExtraCost is
// charged only when the ingredient is ordered as a billed extra.
type IngredientAssociation struct {
	IngredientID    string
	IngredientName  string
	DefaultIncluded bool
	ExtraCost       int64
	IsActive        bool
}

// Product is a storefront catalog entry. Prices are in the smallest currency
// unit. The order assembler treats products as immutable snapshots.
type Product struct {
	ID           string
	Name         string
	Description  string
	Price        int64
	CategoryID   string
	CategoryName string
	CategoryIcon string
	ImageURL     string
	IsActive     bool
	Tags         []Tag
	Ingredients  []IngredientAssociation
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Association returns the ingredient association matching the given
// ingredient id, if any.
func (p Product) Association(ingredientID string) (IngredientAssociation, bool) {
	for _, assoc := range p.Ingredients {
		if assoc.IngredientID == ingredientID {
			return assoc, true
		}
	}
	return IngredientAssociation{}, false
}

// DeliveryAddress is the structured destination captured on an order.
type DeliveryAddress struct {
	Street    string
	Number    string
	Apartment string
	City      string
	Region    string
}

// OrderItemExtra is a billed ingredient add-on priced onto one order item.
type OrderItemExtra struct {
	IngredientID   string
	IngredientName string
	Quantity       int
	UnitPrice      int64
	TotalPrice     int64
}

// IngredientDecision records, per association on the ordered product,
// whether the ingredient ended up on the item and whether that matched the
// product default.
type IngredientDecision struct {
	IngredientID   string
	IngredientName string
	IsIncluded     bool
	WasDefault     bool
}

// OrderItem is one priced line of an order. Product name and description are
// snapshots taken at assembly time; later catalog edits never change them.
type OrderItem struct {
	ProductID          string
	ProductName        string
	ProductDescription string
	Quantity           int
	UnitPrice          int64
	TotalPrice         int64
	Extras             []OrderItemExtra
	Ingredients        []IngredientDecision
}

// Order is the fully assembled, priced aggregate. Items are immutable once
// assembled; only Status and UpdatedAt change afterwards.
type Order struct {
	ID              string
	OrderNumber     string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	Delivery        DeliveryAddress
	DeliveryAddress string
	Notes           string
	Status          OrderStatus
	TotalAmount     int64
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Review captures customer feedback shown on the storefront.
type Review struct {
	ID        string
	Username  string
	Rating    int
	Comment   string
	IsVisible bool
	CreatedAt time.Time
}

// HeroSection is the storefront landing banner managed from the admin panel.
type HeroSection struct {
	ID                 string
	Title              string
	Subtitle           string
	ButtonText         string
	ButtonURL          string
	BackgroundImageURL string
	IsActive           bool
	UpdatedAt          time.Time
}

// AboutSection is the storefront "about us" block.
type AboutSection struct {
	ID              string
	Title           string
	Subtitle        string
	Description     string
	ImageURL1       string
	ImageURL2       string
	YearsExperience int
	IsActive        bool
	UpdatedAt       time.Time
}

// ContactInfo holds the storefront contact channels.
type ContactInfo struct {
	ID        string
	Phone     string
	Email     string
	Address   string
	WhatsApp  string
	Facebook  string
	Instagram string
	IsActive  bool
	UpdatedAt time.Time
}

// FeaturedPromo is the highlighted product promotion on the landing page.
type FeaturedPromo struct {
	ID                 string
	Name               string
	Description        string
	Price              int64
	OriginalPrice      int64
	DiscountPercentage int
	ImageURL           string
	PreparationTime    string
	Servings           string
	Rating             float64
	ReviewsCount       int
	IsActive           bool
	UpdatedAt          time.Time
}

// SiteConfig holds storefront-wide toggles.
type SiteConfig struct {
	ID          string
	ShowReviews bool
	UpdatedAt   time.Time
}

// DayBucket is one calendar-day order count in the admin stats series.
type DayBucket struct {
	Date  string
	Count int
}

// RevenueBucket is one calendar-day revenue sum in the admin stats series.
type RevenueBucket struct {
	Date  string
	Total int64
}

// ProductQuantity pairs a product name with its summed ordered quantity.
type ProductQuantity struct {
	Product  string
	Quantity int
}

// StatsReport aggregates the order store for the admin dashboard.
type StatsReport struct {
	OrdersByDay        []DayBucket
	RevenueByDay       []RevenueBucket
	StatusDistribution map[OrderStatus]int
	TopProducts        []ProductQuantity
	RangeDays          int
}
