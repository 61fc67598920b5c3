package services

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/repositories"
	"github.com/fastbite/api/internal/repositories/memory"
)

type captureOrderEvents struct {
	events []OrderEventMessage
}

func (c *captureOrderEvents) PublishOrderEvent(_ context.Context, event OrderEventMessage) (string, error) {
	c.events = append(c.events, event)
	return "msg-1", nil
}

func seedBurgerCatalog(t *testing.T) *memory.CatalogRepository {
	t.Helper()
	catalog := memory.NewCatalogRepository()
	_, err := catalog.UpsertProduct(context.Background(), domain.Product{
		ID:          "10",
		Name:        "Double Burger",
		Description: "Two patties",
		Price:       4990,
		CategoryID:  "1",
		IsActive:    true,
		Ingredients: []domain.IngredientAssociation{
			{IngredientID: "1", IngredientName: "Bacon", ExtraCost: 800, IsActive: true},
			{IngredientID: "2", IngredientName: "Cheese", ExtraCost: 1200, IsActive: true},
			{IngredientID: "3", IngredientName: "Lettuce", DefaultIncluded: true, IsActive: true},
		},
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return catalog
}

func newOrderServiceForTest(t *testing.T, orders *memory.OrderRepository, catalog *memory.CatalogRepository, now time.Time, events OrderEventPublisher) OrderService {
	t.Helper()
	svc, err := NewOrderService(OrderServiceDeps{
		Orders:      orders,
		Catalog:     catalog,
		Counters:    memory.NewCounterRepository(),
		Clock:       func() time.Time { return now },
		IDGenerator: func() string { return "test" },
		Events:      events,
	})
	if err != nil {
		t.Fatalf("new order service: %v", err)
	}
	return svc
}

func TestOrderServiceCreateAssemblesAndPrices(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	orders := memory.NewOrderRepository()
	events := &captureOrderEvents{}
	svc := newOrderServiceForTest(t, orders, seedBurgerCatalog(t), now, events)

	order, err := svc.Create(context.Background(), OrderSubmission{
		CustomerName:  "  Maria Lopez ",
		CustomerPhone: "555-0101",
		Street:        "Main St",
		Number:        "42",
		Apartment:     "3B",
		City:          "Springfield",
		Region:        "Centro",
		Items: []OrderItemSubmission{
			{
				ProductID:             "10",
				Quantity:              "2",
				Extras:                map[string]string{"1": "2"},
				IncludedIngredientIDs: []string{"3"},
			},
		},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if order.ID != "1" {
		t.Fatalf("expected order id 1, got %s", order.ID)
	}
	if order.OrderNumber != "FF-1" {
		t.Fatalf("expected order number FF-1, got %s", order.OrderNumber)
	}
	if order.CustomerName != "Maria Lopez" {
		t.Fatalf("expected trimmed customer name, got %q", order.CustomerName)
	}
	if order.Status != domain.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if order.DeliveryAddress != "Main St 42, 3B, Springfield, Centro" {
		t.Fatalf("unexpected delivery address %q", order.DeliveryAddress)
	}

	if len(order.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(order.Items))
	}
	item := order.Items[0]
	if item.UnitPrice != 4990+800 {
		t.Fatalf("expected unit price 5790, got %d", item.UnitPrice)
	}
	if item.TotalPrice != 5790*2 {
		t.Fatalf("expected item total 11580, got %d", item.TotalPrice)
	}
	if order.TotalAmount != 11580 {
		t.Fatalf("expected order total 11580, got %d", order.TotalAmount)
	}

	if len(item.Extras) != 1 {
		t.Fatalf("expected 1 extra, got %d", len(item.Extras))
	}
	extra := item.Extras[0]
	if extra.Quantity != 2 || extra.UnitPrice != 800 || extra.TotalPrice != 1600 {
		t.Fatalf("unexpected extra line %+v", extra)
	}

	if len(item.Ingredients) != 3 {
		t.Fatalf("expected a decision per association, got %d", len(item.Ingredients))
	}
	decisions := map[string]domain.IngredientDecision{}
	for _, decision := range item.Ingredients {
		decisions[decision.IngredientID] = decision
	}
	if decisions["3"].IsIncluded != true || decisions["3"].WasDefault != true {
		t.Fatalf("expected lettuce kept, got %+v", decisions["3"])
	}
	if decisions["1"].IsIncluded {
		t.Fatalf("billed extra must not mark the decision included, got %+v", decisions["1"])
	}

	if len(events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.events))
	}
	event := events.events[0]
	if event.Type != orderEventCreated {
		t.Fatalf("expected event type %s, got %s", orderEventCreated, event.Type)
	}
	if event.EventID != "evt_test" {
		t.Fatalf("expected event id evt_test, got %s", event.EventID)
	}
	if event.OccurredAt != now {
		t.Fatalf("expected occurred at %s, got %s", now, event.OccurredAt)
	}
}

func TestOrderServiceCreateMultiLinePreservesOrderAndSumsTotals(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	catalog := seedBurgerCatalog(t)
	if _, err := catalog.UpsertProduct(context.Background(), domain.Product{
		ID:       "20",
		Name:     "Cola",
		Price:    1200,
		IsActive: true,
	}); err != nil {
		t.Fatalf("seed drink: %v", err)
	}
	svc := newOrderServiceForTest(t, memory.NewOrderRepository(), catalog, now, nil)

	order, err := svc.Create(context.Background(), OrderSubmission{
		CustomerName:  "Ana",
		CustomerPhone: "555-0102",
		Items: []OrderItemSubmission{
			{ProductID: "10", Quantity: "2", Extras: map[string]string{"1": "1"}},
			{ProductID: "20", Quantity: "2"},
		},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items))
	}
	if order.Items[0].ProductID != "10" || order.Items[1].ProductID != "20" {
		t.Fatalf("cart line order not preserved: %s, %s", order.Items[0].ProductID, order.Items[1].ProductID)
	}
	if order.Items[1].ProductName != "Cola" {
		t.Fatalf("expected snapshotted product name Cola, got %q", order.Items[1].ProductName)
	}
	if order.Items[0].UnitPrice != 4990+800 || order.Items[0].TotalPrice != 11580 {
		t.Fatalf("unexpected burger line pricing %+v", order.Items[0])
	}
	if order.Items[1].UnitPrice != 1200 || order.Items[1].TotalPrice != 2400 {
		t.Fatalf("unexpected drink line pricing %+v", order.Items[1])
	}
	if order.TotalAmount != 11580+2400 {
		t.Fatalf("expected order total 13980, got %d", order.TotalAmount)
	}
}

func TestOrderServiceCreateEachDistinctExtraChargedOnce(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newOrderServiceForTest(t, memory.NewOrderRepository(), seedBurgerCatalog(t), now, nil)

	order, err := svc.Create(context.Background(), OrderSubmission{
		CustomerName:  "Ana",
		CustomerPhone: "555-0102",
		Items: []OrderItemSubmission{
			{
				ProductID: "10",
				Quantity:  "2",
				Extras:    map[string]string{"1": "2", "2": "1"},
			},
		},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	item := order.Items[0]
	if item.UnitPrice != 4990+800+1200 {
		t.Fatalf("expected unit price 6990, got %d", item.UnitPrice)
	}
	if order.TotalAmount != 6990*2 {
		t.Fatalf("expected order total 13980, got %d", order.TotalAmount)
	}
}

func TestOrderServiceCreateUnknownExtraChargesNothing(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newOrderServiceForTest(t, memory.NewOrderRepository(), seedBurgerCatalog(t), now, nil)

	order, err := svc.Create(context.Background(), OrderSubmission{
		CustomerName:  "Ana",
		CustomerPhone: "555-0102",
		Items: []OrderItemSubmission{
			{ProductID: "10", Quantity: "1", Extras: map[string]string{"99": "1"}},
		},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	item := order.Items[0]
	if item.UnitPrice != 4990 {
		t.Fatalf("unknown extra must not change the unit price, got %d", item.UnitPrice)
	}
	if len(item.Extras) != 1 {
		t.Fatalf("expected the unknown extra to be echoed, got %d lines", len(item.Extras))
	}
	extra := item.Extras[0]
	if extra.IngredientName != "Extra" || extra.UnitPrice != 0 || extra.TotalPrice != 0 {
		t.Fatalf("unexpected unknown extra line %+v", extra)
	}
}

func TestOrderServiceCreateNormalizesGarbageQuantities(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newOrderServiceForTest(t, memory.NewOrderRepository(), seedBurgerCatalog(t), now, nil)

	order, err := svc.Create(context.Background(), OrderSubmission{
		CustomerName:  "Ana",
		CustomerPhone: "555-0102",
		Items: []OrderItemSubmission{
			{ProductID: "10", Quantity: "zero", Extras: map[string]string{"1": "-3"}},
		},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	item := order.Items[0]
	if item.Quantity != 1 {
		t.Fatalf("expected quantity fallback 1, got %d", item.Quantity)
	}
	if item.Extras[0].Quantity != 0 || item.Extras[0].TotalPrice != 0 {
		t.Fatalf("expected extra quantity fallback 0, got %+v", item.Extras[0])
	}
	// The extra still prices into the unit regardless of its own quantity.
	if item.UnitPrice != 4990+800 {
		t.Fatalf("expected unit price 5790, got %d", item.UnitPrice)
	}
}

func TestOrderServiceCreateUnresolvedProductLeavesStoreUntouched(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	orders := memory.NewOrderRepository()
	svc := newOrderServiceForTest(t, orders, seedBurgerCatalog(t), now, nil)

	_, err := svc.Create(context.Background(), OrderSubmission{
		CustomerName:  "Ana",
		CustomerPhone: "555-0102",
		Items: []OrderItemSubmission{
			{ProductID: "10", Quantity: "1"},
			{ProductID: "999", Quantity: "1"},
		},
	})
	if !errors.Is(err, ErrOrderUnresolvedProduct) {
		t.Fatalf("expected unresolved product error, got %v", err)
	}

	stored, err := orders.List(context.Background(), repositories.OrderListFilter{})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected no order stored, got %d", len(stored))
	}
}

func TestOrderServiceCreateValidatesSubmission(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newOrderServiceForTest(t, memory.NewOrderRepository(), seedBurgerCatalog(t), now, nil)
	ctx := context.Background()

	cases := []struct {
		name       string
		submission OrderSubmission
	}{
		{"no items", OrderSubmission{CustomerName: "Ana", CustomerPhone: "555"}},
		{"blank name", OrderSubmission{CustomerPhone: "555", Items: []OrderItemSubmission{{ProductID: "10"}}}},
		{"blank phone", OrderSubmission{CustomerName: "Ana", Items: []OrderItemSubmission{{ProductID: "10"}}}},
		{"blank product id", OrderSubmission{CustomerName: "Ana", CustomerPhone: "555", Items: []OrderItemSubmission{{ProductID: "  "}}}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, tc.submission); !errors.Is(err, ErrOrderInvalidInput) {
			t.Fatalf("%s: expected invalid input error, got %v", tc.name, err)
		}
	}
}

func TestOrderServiceUpdateStatusFollowsLifecycle(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	orders := memory.NewOrderRepository()
	events := &captureOrderEvents{}
	svc := newOrderServiceForTest(t, orders, seedBurgerCatalog(t), now, events)

	created, err := svc.Create(context.Background(), OrderSubmission{
		CustomerName:  "Ana",
		CustomerPhone: "555-0102",
		Items:         []OrderItemSubmission{{ProductID: "10", Quantity: "1"}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), created.ID, domain.OrderStatusReady); !errors.Is(err, ErrOrderInvalidState) {
		t.Fatalf("expected invalid state for pending -> ready, got %v", err)
	}

	confirmed, err := svc.UpdateStatus(context.Background(), created.ID, domain.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("confirm order: %v", err)
	}
	if confirmed.Status != domain.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", confirmed.Status)
	}

	cancelled, err := svc.UpdateStatus(context.Background(), created.ID, domain.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("cancel order: %v", err)
	}
	if cancelled.Status != domain.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), created.ID, domain.OrderStatusDelivered); !errors.Is(err, ErrOrderInvalidState) {
		t.Fatalf("expected invalid state for cancelled -> delivered, got %v", err)
	}

	statusEvents := 0
	for _, event := range events.events {
		if event.Type == orderEventStatusChanged {
			statusEvents++
		}
	}
	if statusEvents != 2 {
		t.Fatalf("expected 2 status change events, got %d", statusEvents)
	}
}

func TestOrderServiceUpdateStatusSameStatusIsNoOp(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	events := &captureOrderEvents{}
	svc := newOrderServiceForTest(t, memory.NewOrderRepository(), seedBurgerCatalog(t), now, events)

	created, err := svc.Create(context.Background(), OrderSubmission{
		CustomerName:  "Ana",
		CustomerPhone: "555-0102",
		Items:         []OrderItemSubmission{{ProductID: "10", Quantity: "1"}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	published := len(events.events)

	same, err := svc.UpdateStatus(context.Background(), created.ID, domain.OrderStatusPending)
	if err != nil {
		t.Fatalf("same status update: %v", err)
	}
	if !same.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("same status update must not touch UpdatedAt: %s vs %s", same.UpdatedAt, created.UpdatedAt)
	}
	if len(events.events) != published {
		t.Fatalf("same status update must not publish an event")
	}
}

func TestOrderServiceUpdateStatusAlwaysAdvancesUpdatedAt(t *testing.T) {
	// The clock is frozen at the creation instant, so the service has to
	// nudge UpdatedAt forward itself.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newOrderServiceForTest(t, memory.NewOrderRepository(), seedBurgerCatalog(t), now, nil)

	created, err := svc.Create(context.Background(), OrderSubmission{
		CustomerName:  "Ana",
		CustomerPhone: "555-0102",
		Items:         []OrderItemSubmission{{ProductID: "10", Quantity: "1"}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	confirmed, err := svc.UpdateStatus(context.Background(), created.ID, domain.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("confirm order: %v", err)
	}
	if !confirmed.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("expected UpdatedAt to advance, got %s vs %s", confirmed.UpdatedAt, created.UpdatedAt)
	}
}

func TestOrderServiceListValidatesStatusKeyword(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newOrderServiceForTest(t, memory.NewOrderRepository(), seedBurgerCatalog(t), now, nil)

	if _, err := svc.List(context.Background(), OrderListQuery{Status: "shipped"}); !errors.Is(err, ErrOrderInvalidInput) {
		t.Fatalf("expected invalid input for unknown status, got %v", err)
	}
}

func TestOrderServiceListFiltersByStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newOrderServiceForTest(t, memory.NewOrderRepository(), seedBurgerCatalog(t), now, nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, OrderSubmission{
		CustomerName:  "Ana",
		CustomerPhone: "555-0102",
		Items:         []OrderItemSubmission{{ProductID: "10", Quantity: "1"}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := svc.Create(ctx, OrderSubmission{
		CustomerName:  "Luis",
		CustomerPhone: "555-0103",
		Items:         []OrderItemSubmission{{ProductID: "10", Quantity: "1"}},
	}); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, first.ID, domain.OrderStatusConfirmed); err != nil {
		t.Fatalf("confirm order: %v", err)
	}

	confirmed, err := svc.List(ctx, OrderListQuery{Status: "confirmed"})
	if err != nil {
		t.Fatalf("list confirmed: %v", err)
	}
	if len(confirmed) != 1 || confirmed[0].ID != first.ID {
		t.Fatalf("expected only the confirmed order, got %+v", confirmed)
	}

	all, err := svc.List(ctx, OrderListQuery{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(all))
	}
}

func TestOrderServiceGetAndDeleteMissingOrder(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newOrderServiceForTest(t, memory.NewOrderRepository(), seedBurgerCatalog(t), now, nil)

	if _, err := svc.Get(context.Background(), "999"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected not found on get, got %v", err)
	}
	if err := svc.Delete(context.Background(), "999"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected not found on delete, got %v", err)
	}
}
