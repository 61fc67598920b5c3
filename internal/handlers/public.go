package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/platform/httpx"
	"github.com/fastbite/api/internal/services"
)

const maxPublicBodySize = 64 * 1024

// PublicHandlers exposes the storefront read surface plus review and pricing
// preview submissions.
type PublicHandlers struct {
	catalog services.CatalogService
	content services.ContentService
	reviews services.ReviewService
	pricing services.PricingEngine
}

// NewPublicHandlers constructs a new PublicHandlers instance.
func NewPublicHandlers(catalog services.CatalogService, content services.ContentService, reviews services.ReviewService, pricing services.PricingEngine) *PublicHandlers {
	return &PublicHandlers{
		catalog: catalog,
		content: content,
		reviews: reviews,
		pricing: pricing,
	}
}

// Routes registers the /public endpoints.
func (h *PublicHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/products", h.listProducts)
	r.Get("/products/featured", h.featuredProducts)
	r.Get("/products/{productID}", h.getProduct)
	r.Post("/products/{productID}/price", h.priceProduct)
	r.Get("/categories", h.listCategories)
	r.Get("/ingredients", h.listIngredients)
	r.Get("/tags", h.listTags)
	r.Get("/content/hero", h.getHero)
	r.Get("/content/about", h.getAbout)
	r.Get("/content/contact", h.getContact)
	r.Get("/content/featured", h.getFeatured)
	r.Get("/content/site-config", h.getSiteConfig)
	r.Get("/reviews", h.listReviews)
	r.Post("/reviews", h.createReview)
}

func (h *PublicHandlers) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		writeServiceUnavailable(ctx, w, "catalog")
		return
	}

	query := r.URL.Query()
	limit := 0
	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "limit must be a non-negative integer", http.StatusBadRequest))
			return
		}
		limit = parsed
	}

	products, err := h.catalog.ListProducts(ctx, services.ProductQuery{
		CategoryID: query.Get("category"),
		Search:     query.Get("q"),
		Limit:      limit,
	})
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildProductList(products))
}

func (h *PublicHandlers) featuredProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		writeServiceUnavailable(ctx, w, "catalog")
		return
	}

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	products, err := h.catalog.FeaturedProducts(ctx, limit)
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildProductList(products))
}

func (h *PublicHandlers) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		writeServiceUnavailable(ctx, w, "catalog")
		return
	}

	product, err := h.catalog.GetProduct(ctx, chi.URLParam(r, "productID"))
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildProductPayload(product))
}

type priceRequest struct {
	ExtraIDs []string `json:"extraIds"`
}

func (h *PublicHandlers) priceProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil || h.pricing == nil {
		writeServiceUnavailable(ctx, w, "pricing")
		return
	}

	var req priceRequest
	if !decodeJSONBody(ctx, w, r, &req) {
		return
	}

	product, err := h.catalog.GetProduct(ctx, chi.URLParam(r, "productID"))
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}

	quote := h.pricing.Quote(product, req.ExtraIDs)
	writeJSONResponse(w, http.StatusOK, buildPriceQuotePayload(quote))
}

func (h *PublicHandlers) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		writeServiceUnavailable(ctx, w, "catalog")
		return
	}

	categories, err := h.catalog.ListCategories(ctx)
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}

	payload := make([]categoryPayload, 0, len(categories))
	for _, category := range categories {
		payload = append(payload, categoryPayload(category))
	}
	writeJSONResponse(w, http.StatusOK, payload)
}

func (h *PublicHandlers) listIngredients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		writeServiceUnavailable(ctx, w, "catalog")
		return
	}

	ingredients, err := h.catalog.ListIngredients(ctx)
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}

	payload := make([]ingredientPayload, 0, len(ingredients))
	for _, ingredient := range ingredients {
		payload = append(payload, ingredientPayload(ingredient))
	}
	writeJSONResponse(w, http.StatusOK, payload)
}

func (h *PublicHandlers) listTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		writeServiceUnavailable(ctx, w, "catalog")
		return
	}

	tags, err := h.catalog.ListTags(ctx)
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}

	payload := make([]tagPayload, 0, len(tags))
	for _, tag := range tags {
		payload = append(payload, tagPayload(tag))
	}
	writeJSONResponse(w, http.StatusOK, payload)
}

func (h *PublicHandlers) getHero(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.content == nil {
		writeServiceUnavailable(ctx, w, "content")
		return
	}
	hero, err := h.content.Hero(ctx)
	if err != nil {
		writeContentError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildHeroPayload(hero))
}

func (h *PublicHandlers) getAbout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.content == nil {
		writeServiceUnavailable(ctx, w, "content")
		return
	}
	about, err := h.content.About(ctx)
	if err != nil {
		writeContentError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildAboutPayload(about))
}

func (h *PublicHandlers) getContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.content == nil {
		writeServiceUnavailable(ctx, w, "content")
		return
	}
	contact, err := h.content.Contact(ctx)
	if err != nil {
		writeContentError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildContactPayload(contact))
}

func (h *PublicHandlers) getFeatured(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.content == nil {
		writeServiceUnavailable(ctx, w, "content")
		return
	}
	promo, err := h.content.Featured(ctx)
	if err != nil {
		writeContentError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildFeaturedPromoPayload(promo))
}

func (h *PublicHandlers) getSiteConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.content == nil {
		writeServiceUnavailable(ctx, w, "content")
		return
	}
	cfg, err := h.content.SiteConfig(ctx)
	if err != nil {
		writeContentError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildSiteConfigPayload(cfg))
}

func (h *PublicHandlers) listReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.reviews == nil {
		writeServiceUnavailable(ctx, w, "reviews")
		return
	}

	reviews, err := h.reviews.List(ctx, false)
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

type createReviewRequest struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func (h *PublicHandlers) createReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.reviews == nil {
		writeServiceUnavailable(ctx, w, "reviews")
		return
	}

	var req createReviewRequest
	if !decodeJSONBody(ctx, w, r, &req) {
		return
	}

	review, err := h.reviews.Create(ctx, services.ReviewSubmission{
		Username: req.Username,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		writeReviewError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusCreated, buildReviewPayload(review))
}

func buildProductList(products []domain.Product) []productPayload {
	payload := make([]productPayload, 0, len(products))
	for _, product := range products {
		payload = append(payload, buildProductPayload(product))
	}
	return payload
}

func decodeJSONBody(ctx context.Context, w http.ResponseWriter, r *http.Request, target any) bool {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxPublicBodySize))
	if err := decoder.Decode(target); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body must be valid JSON", http.StatusBadRequest))
		return false
	}
	return true
}

func writeServiceUnavailable(ctx context.Context, w http.ResponseWriter, name string) {
	httpx.WriteError(ctx, w, httpx.NewError(name+"_service_unavailable", name+" service unavailable", http.StatusServiceUnavailable))
}

func writeCatalogError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, services.ErrCatalogInvalidInput):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrCatalogNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("catalog_not_found", "catalog entry not found", http.StatusNotFound))
	case errors.Is(err, services.ErrCatalogConflict):
		httpx.WriteError(ctx, w, httpx.NewError("catalog_conflict", err.Error(), http.StatusConflict))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("catalog_error", "failed to process catalog request", http.StatusInternalServerError))
	}
}

func writeContentError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, services.ErrContentInvalidInput) {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
		return
	}
	httpx.WriteError(ctx, w, httpx.NewError("content_error", "failed to process content request", http.StatusInternalServerError))
}

func writeReviewError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, services.ErrReviewInvalidInput):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrReviewNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("review_not_found", "review not found", http.StatusNotFound))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("review_error", "failed to process review request", http.StatusInternalServerError))
	}
}
