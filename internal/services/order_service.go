package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/repositories"
)

const (
	orderEventCreated       = "order.created"
	orderEventStatusChanged = "order.status.changed"

	orderNumberPrefix = "FF-"
	orderCounterID    = "orders"
	orderEventPrefix  = "evt_"
)

var (
	// ErrOrderInvalidInput signals the caller provided invalid data.
	ErrOrderInvalidInput = errors.New("order: invalid input")
	// ErrOrderNotFound indicates the order could not be located.
	ErrOrderNotFound = errors.New("order: not found")
	// ErrOrderInvalidState indicates an invalid status transition was attempted.
	ErrOrderInvalidState = errors.New("order: invalid status transition")
	// ErrOrderConflict indicates duplicate inserts or concurrent updates.
	ErrOrderConflict = errors.New("order: conflict")
	// ErrOrderUnresolvedProduct indicates a cart line referenced a product
	// the catalog does not carry.
	ErrOrderUnresolvedProduct = errors.New("order: unresolved product")
)

// OrderServiceDeps bundles collaborators required to construct the order service.
type OrderServiceDeps struct {
	Orders      repositories.OrderRepository
	Catalog     repositories.CatalogRepository
	Counters    repositories.CounterRepository
	Pricing     PricingEngine
	Clock       func() time.Time
	IDGenerator func() string
	Events      OrderEventPublisher
	Logger      func(ctx context.Context, event string, fields map[string]any)
}

type orderService struct {
	orders   repositories.OrderRepository
	catalog  repositories.CatalogRepository
	counters repositories.CounterRepository
	pricing  PricingEngine
	clock    func() time.Time
	newID    func() string
	events   OrderEventPublisher
	logger   func(context.Context, string, map[string]any)
}

// NewOrderService wires dependencies into a concrete OrderService implementation.
func NewOrderService(deps OrderServiceDeps) (OrderService, error) {
	if deps.Orders == nil {
		return nil, errors.New("order service: order repository is required")
	}
	if deps.Catalog == nil {
		return nil, errors.New("order service: catalog repository is required")
	}
	if deps.Counters == nil {
		return nil, errors.New("order service: counter repository is required")
	}

	pricing := deps.Pricing
	if pricing == nil {
		pricing = NewPricingEngine()
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = func() string {
			return ulid.Make().String()
		}
	}

	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}

	return &orderService{
		orders:   deps.Orders,
		catalog:  deps.Catalog,
		counters: deps.Counters,
		pricing:  pricing,
		clock: func() time.Time {
			return clock().UTC()
		},
		newID:  idGen,
		events: deps.Events,
		logger: logger,
	}, nil
}

// Create assembles, prices and stores a new order. The whole submission is
// priced before anything is inserted, so a failing line leaves the store
// untouched.
func (s *orderService) Create(ctx context.Context, submission OrderSubmission) (domain.Order, error) {
	if len(submission.Items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: order must contain at least one item", ErrOrderInvalidInput)
	}
	customerName := strings.TrimSpace(submission.CustomerName)
	if customerName == "" {
		return domain.Order{}, fmt.Errorf("%w: customer name is required", ErrOrderInvalidInput)
	}
	customerPhone := strings.TrimSpace(submission.CustomerPhone)
	if customerPhone == "" {
		return domain.Order{}, fmt.Errorf("%w: customer phone is required", ErrOrderInvalidInput)
	}

	items := make([]domain.OrderItem, 0, len(submission.Items))
	var total int64
	for _, line := range submission.Items {
		item, err := s.assembleItem(ctx, line)
		if err != nil {
			return domain.Order{}, err
		}
		items = append(items, item)
		total += item.TotalPrice
	}

	seq, err := s.counters.Next(ctx, orderCounterID, 1)
	if err != nil {
		return domain.Order{}, s.mapRepositoryError(err)
	}

	now := s.clock()
	order := domain.Order{
		ID:            strconv.FormatInt(seq, 10),
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		CustomerEmail: strings.TrimSpace(submission.CustomerEmail),
		Delivery: domain.DeliveryAddress{
			Street:    strings.TrimSpace(submission.Street),
			Number:    strings.TrimSpace(submission.Number),
			Apartment: strings.TrimSpace(submission.Apartment),
			City:      strings.TrimSpace(submission.City),
			Region:    strings.TrimSpace(submission.Region),
		},
		Notes:       sanitizeText(submission.Notes),
		Status:      domain.OrderStatusPending,
		TotalAmount: total,
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	order.OrderNumber = orderNumberPrefix + order.ID
	order.DeliveryAddress = buildAddress(order.Delivery.Street, order.Delivery.Number, order.Delivery.Apartment, order.Delivery.City, order.Delivery.Region)

	if err := s.orders.Insert(ctx, order); err != nil {
		return domain.Order{}, s.mapRepositoryError(err)
	}

	s.logger(ctx, "order.created", map[string]any{
		"order":  order.ID,
		"number": order.OrderNumber,
		"total":  order.TotalAmount,
		"items":  len(order.Items),
	})
	s.publishEvent(ctx, OrderEventMessage{
		EventID:     s.nextEventID(),
		Type:        orderEventCreated,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		OccurredAt:  now,
	})

	return order, nil
}

// assembleItem resolves, normalizes and prices one cart line.
func (s *orderService) assembleItem(ctx context.Context, line OrderItemSubmission) (domain.OrderItem, error) {
	productID := strings.TrimSpace(line.ProductID)
	if productID == "" {
		return domain.OrderItem{}, fmt.Errorf("%w: product id is required", ErrOrderInvalidInput)
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		var repoErr repositories.RepositoryError
		if errors.As(err, &repoErr) && repoErr.IsNotFound() {
			return domain.OrderItem{}, fmt.Errorf("%w: %s", ErrOrderUnresolvedProduct, productID)
		}
		return domain.OrderItem{}, s.mapRepositoryError(err)
	}

	quantity := normalizeQuantity(line.Quantity)
	quote := s.pricing.Quote(product, sortedExtraIDs(line.Extras))

	item := domain.OrderItem{
		ProductID:          product.ID,
		ProductName:        product.Name,
		ProductDescription: product.Description,
		Quantity:           quantity,
		UnitPrice:          quote.Total,
	}
	item.TotalPrice = item.UnitPrice * int64(quantity)

	for _, charge := range quote.Extras {
		extraQty := normalizeExtraQuantity(line.Extras[charge.IngredientID])
		item.Extras = append(item.Extras, domain.OrderItemExtra{
			IngredientID:   charge.IngredientID,
			IngredientName: charge.IngredientName,
			Quantity:       extraQty,
			UnitPrice:      charge.UnitPrice,
			TotalPrice:     charge.UnitPrice * int64(extraQty),
		})
	}

	included := make(map[string]bool, len(line.IncludedIngredientIDs))
	for _, id := range line.IncludedIngredientIDs {
		included[strings.TrimSpace(id)] = true
	}
	for _, assoc := range product.Ingredients {
		item.Ingredients = append(item.Ingredients, domain.IngredientDecision{
			IngredientID:   assoc.IngredientID,
			IngredientName: assoc.IngredientName,
			IsIncluded:     included[assoc.IngredientID],
			WasDefault:     assoc.DefaultIncluded,
		})
	}

	return item, nil
}

// List returns orders most-recent-first, optionally narrowed by status.
func (s *orderService) List(ctx context.Context, query OrderListQuery) ([]domain.Order, error) {
	filter := repositories.OrderListFilter{}
	if raw := strings.TrimSpace(query.Status); raw != "" {
		status := domain.OrderStatus(raw)
		if !domain.ValidOrderStatus(status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrOrderInvalidInput, raw)
		}
		filter.Status = &status
	}

	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, s.mapRepositoryError(err)
	}
	return orders, nil
}

// Get fetches one order by id.
func (s *orderService) Get(ctx context.Context, orderID string) (domain.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return domain.Order{}, fmt.Errorf("%w: order id is required", ErrOrderInvalidInput)
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, s.mapRepositoryError(err)
	}
	return order, nil
}

// UpdateStatus moves an order through its lifecycle, rejecting transitions
// the status machine does not allow.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, target domain.OrderStatus) (domain.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return domain.Order{}, fmt.Errorf("%w: order id is required", ErrOrderInvalidInput)
	}
	if !domain.ValidOrderStatus(target) {
		return domain.Order{}, fmt.Errorf("%w: unknown status %q", ErrOrderInvalidInput, target)
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, s.mapRepositoryError(err)
	}

	if order.Status == target {
		return order, nil
	}
	if !domain.CanTransition(order.Status, target) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", ErrOrderInvalidState, order.Status, target)
	}

	prev := order.Status
	now := s.clock()
	if !now.After(order.UpdatedAt) {
		now = order.UpdatedAt.Add(time.Nanosecond)
	}
	order.Status = target
	order.UpdatedAt = now

	if err := s.orders.Update(ctx, order); err != nil {
		return domain.Order{}, s.mapRepositoryError(err)
	}

	s.logger(ctx, "order.status.changed", map[string]any{
		"order": order.ID,
		"from":  string(prev),
		"to":    string(target),
	})
	s.publishEvent(ctx, OrderEventMessage{
		EventID:        s.nextEventID(),
		Type:           orderEventStatusChanged,
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		Status:         string(order.Status),
		PreviousStatus: string(prev),
		TotalAmount:    order.TotalAmount,
		OccurredAt:     now,
	})

	return order, nil
}

// Delete removes an order from the store.
func (s *orderService) Delete(ctx context.Context, orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return fmt.Errorf("%w: order id is required", ErrOrderInvalidInput)
	}
	if err := s.orders.Delete(ctx, orderID); err != nil {
		return s.mapRepositoryError(err)
	}
	return nil
}

func (s *orderService) mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var repoErr repositories.RepositoryError
	if errors.As(err, &repoErr) {
		switch {
		case repoErr.IsNotFound():
			return fmt.Errorf("%w: %v", ErrOrderNotFound, err)
		case repoErr.IsConflict():
			return fmt.Errorf("%w: %v", ErrOrderConflict, err)
		case repoErr.IsUnavailable():
			return fmt.Errorf("order: repository unavailable: %w", err)
		}
	}
	return err
}

func (s *orderService) nextEventID() string {
	return orderEventPrefix + s.newID()
}

func (s *orderService) publishEvent(ctx context.Context, event OrderEventMessage) {
	if s.events == nil {
		return
	}
	if _, err := s.events.PublishOrderEvent(ctx, event); err != nil {
		s.logger(ctx, "order.event.publish.failed", map[string]any{
			"type":  event.Type,
			"order": event.OrderID,
			"error": err.Error(),
		})
	}
}

// sortedExtraIDs returns the extras map keys in a stable order, numeric ids
// first in numeric order.
func sortedExtraIDs(extras map[string]string) []string {
	if len(extras) == 0 {
		return nil
	}
	ids := make([]string, 0, len(extras))
	for id := range extras {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		ni, errI := strconv.ParseInt(ids[i], 10, 64)
		nj, errJ := strconv.ParseInt(ids[j], 10, 64)
		if errI == nil && errJ == nil {
			return ni < nj
		}
		if (errI == nil) != (errJ == nil) {
			return errI == nil
		}
		return ids[i] < ids[j]
	})
	return ids
}
