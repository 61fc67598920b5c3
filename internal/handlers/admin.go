package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/platform/httpx"
	"github.com/fastbite/api/internal/services"
)

// AdminHandlers exposes the management surface: dashboard stats, order
// lifecycle control, catalog CRUD, content editing and review moderation.
type AdminHandlers struct {
	orders  services.OrderService
	stats   services.StatsService
	catalog services.CatalogService
	content services.ContentService
	reviews services.ReviewService
}

// NewAdminHandlers constructs a new AdminHandlers instance.
func NewAdminHandlers(orders services.OrderService, stats services.StatsService, catalog services.CatalogService, content services.ContentService, reviews services.ReviewService) *AdminHandlers {
	return &AdminHandlers{
		orders:  orders,
		stats:   stats,
		catalog: catalog,
		content: content,
		reviews: reviews,
	}
}

// Routes registers the /admin endpoints.
func (h *AdminHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/stats", h.getStats)

	r.Patch("/orders/{orderID}/status", h.updateOrderStatus)
	r.Delete("/orders/{orderID}", h.deleteOrder)

	r.Get("/products", h.listProducts)
	r.Post("/products", h.createProduct)
	r.Put("/products/{productID}", h.updateProduct)
	r.Delete("/products/{productID}", h.deleteProduct)

	r.Post("/categories", h.createCategory)
	r.Put("/categories/{categoryID}", h.updateCategory)
	r.Delete("/categories/{categoryID}", h.deleteCategory)

	r.Post("/ingredients", h.createIngredient)
	r.Put("/ingredients/{ingredientID}", h.updateIngredient)
	r.Delete("/ingredients/{ingredientID}", h.deleteIngredient)

	r.Post("/tags", h.createTag)
	r.Put("/tags/{tagID}", h.updateTag)
	r.Delete("/tags/{tagID}", h.deleteTag)

	r.Put("/content/hero", h.updateHero)
	r.Put("/content/about", h.updateAbout)
	r.Put("/content/contact", h.updateContact)
	r.Put("/content/featured", h.updateFeatured)
	r.Put("/content/site-config", h.updateSiteConfig)

	r.Get("/reviews", h.listReviews)
	r.Patch("/reviews/{reviewID}/visibility", h.setReviewVisibility)
}

func (h *AdminHandlers) getStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.stats == nil {
		writeServiceUnavailable(ctx, w, "stats")
		return
	}

	report, err := h.stats.Aggregate(ctx, r.URL.Query().Get("range"))
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("stats_error", "failed to aggregate stats", http.StatusInternalServerError))
		return
	}
	writeJSONResponse(w, http.StatusOK, buildStatsPayload(report))
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandlers) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.orders == nil {
		writeServiceUnavailable(ctx, w, "order")
		return
	}

	var req updateOrderStatusRequest
	if !decodeJSONBody(ctx, w, r, &req) {
		return
	}

	order, err := h.orders.UpdateStatus(ctx, chi.URLParam(r, "orderID"), domain.OrderStatus(strings.TrimSpace(req.Status)))
	if err != nil {
		writeOrderError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildOrderPayload(order))
}

func (h *AdminHandlers) deleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.orders == nil {
		writeServiceUnavailable(ctx, w, "order")
		return
	}

	if err := h.orders.Delete(ctx, chi.URLParam(r, "orderID")); err != nil {
		writeOrderError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type productRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Price       int64                `json:"price"`
	CategoryID  string               `json:"categoryId"`
	ImageURL    string               `json:"imageUrl"`
	IsActive    bool                 `json:"isActive"`
	Tags        []tagPayload         `json:"tags"`
	Ingredients []associationPayload `json:"ingredients"`
}

func (req productRequest) toDomain(id string) domain.Product {
	product := domain.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	}
	for _, tag := range req.Tags {
		product.Tags = append(product.Tags, domain.Tag(tag))
	}
	for _, assoc := range req.Ingredients {
		product.Ingredients = append(product.Ingredients, domain.IngredientAssociation(assoc))
	}
	return product
}

func (h *AdminHandlers) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		writeServiceUnavailable(ctx, w, "catalog")
		return
	}

	query := r.URL.Query()
	products, err := h.catalog.ListProducts(ctx, services.ProductQuery{
		CategoryID: query.Get("category"),
		Search:     query.Get("q"),
		IncludeAll: true,
	})
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildProductList(products))
}

func (h *AdminHandlers) createProduct(w http.ResponseWriter, r *http.Request) {
	h.saveProduct(w, r, "")
}

func (h *AdminHandlers) updateProduct(w http.ResponseWriter, r *http.Request) {
	h.saveProduct(w, r, chi.URLParam(r, "productID"))
}

func (h *AdminHandlers) saveProduct(w http.ResponseWriter, r *http.Request, productID string) {
	ctx := r.Context()
	if h.catalog == nil {
		writeServiceUnavailable(ctx, w, "catalog")
		return
	}

	var req productRequest
	if !decodeJSONBody(ctx, w, r, &req) {
		return
	}

	product, err := h.catalog.SaveProduct(ctx, req.toDomain(productID))
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if productID == "" {
		status = http.StatusCreated
	}
	writeJSONResponse(w, status, buildProductPayload(product))
}

func (h *AdminHandlers) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		writeServiceUnavailable(ctx, w, "catalog")
		return
	}
	if err := h.catalog.DeleteProduct(ctx, chi.URLParam(r, "productID")); err != nil {
		writeCatalogError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type categoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (h *AdminHandlers) createCategory(w http.ResponseWriter, r *http.Request) {
	h.saveCategory(w, r, "")
}

func (h *AdminHandlers) updateCategory(w http.ResponseWriter, r *http.Request) {
	h.saveCategory(w, r, chi.URLParam(r, "categoryID"))
}

func (h *AdminHandlers) saveCategory(w http.ResponseWriter, r *http.Request, categoryID string) {
	ctx := r.Context()
	if h.catalog == nil {
		writeServiceUnavailable(ctx, w, "catalog")
		return
	}

	var req categoryRequest
	if !decodeJSONBody(ctx, w, r, &req) {
		return
	}

	category, err := h.catalog.SaveCategory(ctx, domain.Category{
		ID:   categoryID,
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if categoryID == "" {
		status = http.StatusCreated
	}
	writeJSONResponse(w, status, categoryPayload(category))
}

func (h *AdminHandlers) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		writeServiceUnavailable(ctx, w, "catalog")
		return
	}
	if err := h.catalog.DeleteCategory(ctx, chi.URLParam(r, "categoryID")); err != nil {
		writeCatalogError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type ingredientRequest struct {
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

func (h *AdminHandlers) createIngredient(w http.ResponseWriter, r *http.Request) {
	h.saveIngredient(w, r, "")
}

func (h *AdminHandlers) updateIngredient(w http.ResponseWriter, r *http.Request) {
	h.saveIngredient(w, r, chi.URLParam(r, "ingredientID"))
}

func (h *AdminHandlers) saveIngredient(w http.ResponseWriter, r *http.Request, ingredientID string) {
	ctx := r.Context()
	if h.catalog == nil {
		writeServiceUnavailable(ctx, w, "catalog")
		return
	}

	var req ingredientRequest
	if !decodeJSONBody(ctx, w, r, &req) {
		return
	}

	ingredient, err := h.catalog.SaveIngredient(ctx, domain.Ingredient{
		ID:       ingredientID,
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if ingredientID == "" {
		status = http.StatusCreated
	}
	writeJSONResponse(w, status, ingredientPayload(ingredient))
}

func (h *AdminHandlers) deleteIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		writeServiceUnavailable(ctx, w, "catalog")
		return
	}
	if err := h.catalog.DeleteIngredient(ctx, chi.URLParam(r, "ingredientID")); err != nil {
		writeCatalogError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type tagRequest struct {
	Name string `json:"name"`
}

func (h *AdminHandlers) createTag(w http.ResponseWriter, r *http.Request) {
	h.saveTag(w, r, "")
}

func (h *AdminHandlers) updateTag(w http.ResponseWriter, r *http.Request) {
	h.saveTag(w, r, chi.URLParam(r, "tagID"))
}

func (h *AdminHandlers) saveTag(w http.ResponseWriter, r *http.Request, tagID string) {
	ctx := r.Context()
	if h.catalog == nil {
		writeServiceUnavailable(ctx, w, "catalog")
		return
	}

	var req tagRequest
	if !decodeJSONBody(ctx, w, r, &req) {
		return
	}

	tag, err := h.catalog.SaveTag(ctx, domain.Tag{ID: tagID, Name: req.Name})
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if tagID == "" {
		status = http.StatusCreated
	}
	writeJSONResponse(w, status, tagPayload(tag))
}

func (h *AdminHandlers) deleteTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		writeServiceUnavailable(ctx, w, "catalog")
		return
	}
	if err := h.catalog.DeleteTag(ctx, chi.URLParam(r, "tagID")); err != nil {
		writeCatalogError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandlers) updateHero(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.content == nil {
		writeServiceUnavailable(ctx, w, "content")
		return
	}

	var req heroPayload
	if !decodeJSONBody(ctx, w, r, &req) {
		return
	}

	hero, err := h.content.UpdateHero(ctx, domain.HeroSection{
		Title:              req.Title,
		Subtitle:           req.Subtitle,
		ButtonText:         req.ButtonText,
		ButtonURL:          req.ButtonURL,
		BackgroundImageURL: req.BackgroundImageURL,
		IsActive:           req.IsActive,
	})
	if err != nil {
		writeContentError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildHeroPayload(hero))
}

func (h *AdminHandlers) updateAbout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.content == nil {
		writeServiceUnavailable(ctx, w, "content")
		return
	}

	var req aboutPayload
	if !decodeJSONBody(ctx, w, r, &req) {
		return
	}

	about, err := h.content.UpdateAbout(ctx, domain.AboutSection{
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		Description:     req.Description,
		ImageURL1:       req.ImageURL1,
		ImageURL2:       req.ImageURL2,
		YearsExperience: req.YearsExperience,
		IsActive:        req.IsActive,
	})
	if err != nil {
		writeContentError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildAboutPayload(about))
}

func (h *AdminHandlers) updateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.content == nil {
		writeServiceUnavailable(ctx, w, "content")
		return
	}

	var req contactPayload
	if !decodeJSONBody(ctx, w, r, &req) {
		return
	}

	contact, err := h.content.UpdateContact(ctx, domain.ContactInfo{
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		WhatsApp:  req.WhatsApp,
		Facebook:  req.Facebook,
		Instagram: req.Instagram,
		IsActive:  req.IsActive,
	})
	if err != nil {
		writeContentError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildContactPayload(contact))
}

func (h *AdminHandlers) updateFeatured(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.content == nil {
		writeServiceUnavailable(ctx, w, "content")
		return
	}

	var req featuredPromoPayload
	if !decodeJSONBody(ctx, w, r, &req) {
		return
	}

	promo, err := h.content.UpdateFeatured(ctx, domain.FeaturedPromo{
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		OriginalPrice:      req.OriginalPrice,
		DiscountPercentage: req.DiscountPercentage,
		ImageURL:           req.ImageURL,
		PreparationTime:    req.PreparationTime,
		Servings:           req.Servings,
		Rating:             req.Rating,
		ReviewsCount:       req.ReviewsCount,
		IsActive:           req.IsActive,
	})
	if err != nil {
		writeContentError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildFeaturedPromoPayload(promo))
}

func (h *AdminHandlers) updateSiteConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.content == nil {
		writeServiceUnavailable(ctx, w, "content")
		return
	}

	var req siteConfigPayload
	if !decodeJSONBody(ctx, w, r, &req) {
		return
	}

	cfg, err := h.content.UpdateSiteConfig(ctx, domain.SiteConfig{ShowReviews: req.ShowReviews})
	if err != nil {
		writeContentError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildSiteConfigPayload(cfg))
}

func (h *AdminHandlers) listReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.reviews == nil {
		writeServiceUnavailable(ctx, w, "reviews")
		return
	}

	reviews, err := h.reviews.List(ctx, true)
	if err != nil {
		writeReviewError(ctx, w, err)
		return
	}

	payload := make([]reviewPayload, 0, len(reviews))
	for _, review := range reviews {
		payload = append(payload, buildReviewPayload(review))
	}
	writeJSONResponse(w, http.StatusOK, payload)
}

type reviewVisibilityRequest struct {
	IsVisible bool `json:"isVisible"`
}

func (h *AdminHandlers) setReviewVisibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.reviews == nil {
		writeServiceUnavailable(ctx, w, "reviews")
		return
	}

	var req reviewVisibilityRequest
	if !decodeJSONBody(ctx, w, r, &req) {
		return
	}

	review, err := h.reviews.SetVisibility(ctx, chi.URLParam(r, "reviewID"), req.IsVisible)
	if err != nil {
		writeReviewError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildReviewPayload(review))
}
