package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	domain "github.com/fastbite/api/internal/domain"
)

type tagPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type associationPayload struct {
	IngredientID    string `json:"ingredientId"`
	IngredientName  string `json:"ingredientName"`
	DefaultIncluded bool   `json:"defaultIncluded"`
	ExtraCost       int64  `json:"extraCost"`
	IsActive        bool   `json:"isActive"`
}

type productPayload struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Price        int64                `json:"price"`
	CategoryID   string               `json:"categoryId"`
	CategoryName string               `json:"categoryName"`
	CategoryIcon string               `json:"categoryIcon"`
	ImageURL     string               `json:"imageUrl,omitempty"`
	IsActive     bool                 `json:"isActive"`
	Tags         []tagPayload         `json:"tags"`
	Ingredients  []associationPayload `json:"ingredients"`
	CreatedAt    string               `json:"createdAt,omitempty"`
	UpdatedAt    string               `json:"updatedAt,omitempty"`
}

func buildProductPayload(product domain.Product) productPayload {
	payload := productPayload{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		CategoryID:   product.CategoryID,
		CategoryName: product.CategoryName,
		CategoryIcon: product.CategoryIcon,
		ImageURL:     product.ImageURL,
		IsActive:     product.IsActive,
		Tags:         make([]tagPayload, 0, len(product.Tags)),
		Ingredients:  make([]associationPayload, 0, len(product.Ingredients)),
		CreatedAt:    formatTimestamp(product.CreatedAt),
		UpdatedAt:    formatTimestamp(product.UpdatedAt),
	}
	for _, tag := range product.Tags {
		payload.Tags = append(payload.Tags, tagPayload(tag))
	}
	for _, assoc := range product.Ingredients {
		payload.Ingredients = append(payload.Ingredients, associationPayload(assoc))
	}
	return payload
}

type categoryPayload struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Icon          string `json:"icon"`
	ProductsCount int    `json:"productsCount"`
}

type ingredientPayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

type extraChargePayload struct {
	IngredientID   string `json:"ingredientId"`
	IngredientName string `json:"ingredientName"`
	UnitPrice      int64  `json:"unitPrice"`
}

type priceQuotePayload struct {
	ProductID   string               `json:"productId"`
	BasePrice   int64                `json:"basePrice"`
	ExtrasTotal int64                `json:"extrasTotal"`
	Total       int64                `json:"total"`
	ExtraIDs    []string             `json:"extraIds"`
	Extras      []extraChargePayload `json:"extras"`
}

func buildPriceQuotePayload(quote domain.PriceQuote) priceQuotePayload {
	payload := priceQuotePayload{
		ProductID:   quote.ProductID,
		BasePrice:   quote.BasePrice,
		ExtrasTotal: quote.ExtrasTotal,
		Total:       quote.Total,
		ExtraIDs:    quote.ExtraIDs,
		Extras:      make([]extraChargePayload, 0, len(quote.Extras)),
	}
	if payload.ExtraIDs == nil {
		payload.ExtraIDs = []string{}
	}
	for _, charge := range quote.Extras {
		payload.Extras = append(payload.Extras, extraChargePayload(charge))
	}
	return payload
}

type orderExtraPayload struct {
	IngredientID   string `json:"ingredientId"`
	IngredientName string `json:"ingredientName"`
	Quantity       int    `json:"quantity"`
	UnitPrice      int64  `json:"unitPrice"`
	TotalPrice     int64  `json:"totalPrice"`
}

type orderDecisionPayload struct {
	IngredientID   string `json:"ingredientId"`
	IngredientName string `json:"ingredientName"`
	IsIncluded     bool   `json:"isIncluded"`
	WasDefault     bool   `json:"wasDefault"`
}

type orderItemPayload struct {
	ProductID          string                 `json:"productId"`
	ProductName        string                 `json:"productName"`
	ProductDescription string                 `json:"productDescription"`
	Quantity           int                    `json:"quantity"`
	UnitPrice          int64                  `json:"unitPrice"`
	TotalPrice         int64                  `json:"totalPrice"`
	Extras             []orderExtraPayload    `json:"extras"`
	Ingredients        []orderDecisionPayload `json:"ingredients"`
}

type deliveryPayload struct {
	Street    string `json:"street"`
	Number    string `json:"number"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city"`
	Region    string `json:"region"`
}

type orderPayload struct {
	ID              string             `json:"id"`
	OrderNumber     string             `json:"orderNumber"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerEmail   string             `json:"customerEmail,omitempty"`
	Delivery        deliveryPayload    `json:"delivery"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Notes           string             `json:"notes,omitempty"`
	Status          string             `json:"status"`
	TotalAmount     int64              `json:"totalAmount"`
	Items           []orderItemPayload `json:"items"`
	CreatedAt       string             `json:"createdAt"`
	UpdatedAt       string             `json:"updatedAt"`
}

func buildOrderPayload(order domain.Order) orderPayload {
	payload := orderPayload{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		CustomerEmail: order.CustomerEmail,
		Delivery: deliveryPayload{
			Street:    order.Delivery.Street,
			Number:    order.Delivery.Number,
			Apartment: order.Delivery.Apartment,
			City:      order.Delivery.City,
			Region:    order.Delivery.Region,
		},
		DeliveryAddress: order.DeliveryAddress,
		Notes:           order.Notes,
		Status:          string(order.Status),
		TotalAmount:     order.TotalAmount,
		Items:           make([]orderItemPayload, 0, len(order.Items)),
		CreatedAt:       formatTimestamp(order.CreatedAt),
		UpdatedAt:       formatTimestamp(order.UpdatedAt),
	}
	for _, item := range order.Items {
		itemPayload := orderItemPayload{
			ProductID:          item.ProductID,
			ProductName:        item.ProductName,
			ProductDescription: item.ProductDescription,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			TotalPrice:         item.TotalPrice,
			Extras:             make([]orderExtraPayload, 0, len(item.Extras)),
			Ingredients:        make([]orderDecisionPayload, 0, len(item.Ingredients)),
		}
		for _, extra := range item.Extras {
			itemPayload.Extras = append(itemPayload.Extras, orderExtraPayload(extra))
		}
		for _, decision := range item.Ingredients {
			itemPayload.Ingredients = append(itemPayload.Ingredients, orderDecisionPayload(decision))
		}
		payload.Items = append(payload.Items, itemPayload)
	}
	return payload
}

type reviewPayload struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	IsVisible bool   `json:"isVisible"`
	CreatedAt string `json:"createdAt"`
}

func buildReviewPayload(review domain.Review) reviewPayload {
	return reviewPayload{
		ID:        review.ID,
		Username:  review.Username,
		Rating:    review.Rating,
		Comment:   review.Comment,
		IsVisible: review.IsVisible,
		CreatedAt: formatTimestamp(review.CreatedAt),
	}
}

type statsPayload struct {
	OrdersByDay        []dayBucketPayload     `json:"ordersByDay"`
	RevenueByDay       []revenueBucketPayload `json:"revenueByDay"`
	StatusDistribution map[string]int         `json:"statusDistribution"`
	TopProducts        []topProductPayload    `json:"topProducts"`
	RangeDays          int                    `json:"rangeDays"`
}

type dayBucketPayload struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type revenueBucketPayload struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
}

type topProductPayload struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

func buildStatsPayload(report domain.StatsReport) statsPayload {
	payload := statsPayload{
		OrdersByDay:        make([]dayBucketPayload, 0, len(report.OrdersByDay)),
		RevenueByDay:       make([]revenueBucketPayload, 0, len(report.RevenueByDay)),
		StatusDistribution: make(map[string]int, len(report.StatusDistribution)),
		TopProducts:        make([]topProductPayload, 0, len(report.TopProducts)),
		RangeDays:          report.RangeDays,
	}
	for _, bucket := range report.OrdersByDay {
		payload.OrdersByDay = append(payload.OrdersByDay, dayBucketPayload(bucket))
	}
	for _, bucket := range report.RevenueByDay {
		payload.RevenueByDay = append(payload.RevenueByDay, revenueBucketPayload(bucket))
	}
	for status, count := range report.StatusDistribution {
		payload.StatusDistribution[string(status)] = count
	}
	for _, top := range report.TopProducts {
		payload.TopProducts = append(payload.TopProducts, topProductPayload(top))
	}
	return payload
}

type heroPayload struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Subtitle           string `json:"subtitle"`
	ButtonText         string `json:"buttonText"`
	ButtonURL          string `json:"buttonUrl"`
	BackgroundImageURL string `json:"backgroundImageUrl,omitempty"`
	IsActive           bool   `json:"isActive"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
}

func buildHeroPayload(hero domain.HeroSection) heroPayload {
	return heroPayload{
		ID:                 hero.ID,
		Title:              hero.Title,
		Subtitle:           hero.Subtitle,
		ButtonText:         hero.ButtonText,
		ButtonURL:          hero.ButtonURL,
		BackgroundImageURL: hero.BackgroundImageURL,
		IsActive:           hero.IsActive,
		UpdatedAt:          formatTimestamp(hero.UpdatedAt),
	}
}

type aboutPayload struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	ImageURL1       string `json:"imageUrl1,omitempty"`
	ImageURL2       string `json:"imageUrl2,omitempty"`
	YearsExperience int    `json:"yearsExperience"`
	IsActive        bool   `json:"isActive"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}

func buildAboutPayload(about domain.AboutSection) aboutPayload {
	return aboutPayload{
		ID:              about.ID,
		Title:           about.Title,
		Subtitle:        about.Subtitle,
		Description:     about.Description,
		ImageURL1:       about.ImageURL1,
		ImageURL2:       about.ImageURL2,
		YearsExperience: about.YearsExperience,
		IsActive:        about.IsActive,
		UpdatedAt:       formatTimestamp(about.UpdatedAt),
	}
}

type contactPayload struct {
	ID        string `json:"id"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	IsActive  bool   `json:"isActive"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func buildContactPayload(contact domain.ContactInfo) contactPayload {
	return contactPayload{
		ID:        contact.ID,
		Phone:     contact.Phone,
		Email:     contact.Email,
		Address:   contact.Address,
		WhatsApp:  contact.WhatsApp,
		Facebook:  contact.Facebook,
		Instagram: contact.Instagram,
		IsActive:  contact.IsActive,
		UpdatedAt: formatTimestamp(contact.UpdatedAt),
	}
}

type featuredPromoPayload struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Price              int64   `json:"price"`
	OriginalPrice      int64   `json:"originalPrice"`
	DiscountPercentage int     `json:"discountPercentage"`
	ImageURL           string  `json:"imageUrl,omitempty"`
	PreparationTime    string  `json:"preparationTime,omitempty"`
	Servings           string  `json:"servings,omitempty"`
	Rating             float64 `json:"rating"`
	ReviewsCount       int     `json:"reviewsCount"`
	IsActive           bool    `json:"isActive"`
	UpdatedAt          string  `json:"updatedAt,omitempty"`
}

func buildFeaturedPromoPayload(promo domain.FeaturedPromo) featuredPromoPayload {
	return featuredPromoPayload{
		ID:                 promo.ID,
		Name:               promo.Name,
		Description:        promo.Description,
		Price:              promo.Price,
		OriginalPrice:      promo.OriginalPrice,
		DiscountPercentage: promo.DiscountPercentage,
		ImageURL:           promo.ImageURL,
		PreparationTime:    promo.PreparationTime,
		Servings:           promo.Servings,
		Rating:             promo.Rating,
		ReviewsCount:       promo.ReviewsCount,
		IsActive:           promo.IsActive,
		UpdatedAt:          formatTimestamp(promo.UpdatedAt),
	}
}

type siteConfigPayload struct {
	ID          string `json:"id"`
	ShowReviews bool   `json:"showReviews"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

func buildSiteConfigPayload(cfg domain.SiteConfig) siteConfigPayload {
	return siteConfigPayload{
		ID:          cfg.ID,
		ShowReviews: cfg.ShowReviews,
		UpdatedAt:   formatTimestamp(cfg.UpdatedAt),
	}
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}

func writeJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
