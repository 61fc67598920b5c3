package services

import (
	"context"
	"testing"
	"time"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/repositories/memory"
)

func seedStatsOrders(t *testing.T) *memory.OrderRepository {
	t.Helper()
	orders := memory.NewOrderRepository()
	ctx := context.Background()

	insert := func(id string, created time.Time, status domain.OrderStatus, total int64, items ...domain.OrderItem) {
		t.Helper()
		err := orders.Insert(ctx, domain.Order{
			ID:          id,
			Status:      status,
			TotalAmount: total,
			Items:       items,
			CreatedAt:   created,
			UpdatedAt:   created,
		})
		if err != nil {
			t.Fatalf("seed order %s: %v", id, err)
		}
	}

	// Frozen "now" for these tests is 2026-03-10 12:00 UTC.
	insert("1", time.Date(2026, 3, 9, 18, 30, 0, 0, time.UTC), domain.OrderStatusDelivered, 5000,
		domain.OrderItem{ProductName: "Burger", Quantity: 2})
	insert("2", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), domain.OrderStatusPending, 3000,
		domain.OrderItem{ProductName: "Burger", Quantity: 1},
		domain.OrderItem{ProductName: "Fries", Quantity: 3})
	insert("3", time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), domain.OrderStatusCancelled, 9000,
		domain.OrderItem{ProductName: "Pizza", Quantity: 5})
	insert("4", time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), domain.OrderStatusDelivered, 7777,
		domain.OrderItem{ProductName: "Salad", Quantity: 9})
	return orders
}

func newStatsServiceForTest(t *testing.T, orders *memory.OrderRepository) StatsService {
	t.Helper()
	svc, err := NewStatsService(StatsServiceDeps{
		Orders: orders,
		Clock: func() time.Time {
			return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		},
	})
	if err != nil {
		t.Fatalf("new stats service: %v", err)
	}
	return svc
}

func TestStatsServiceAggregateWeek(t *testing.T) {
	svc := newStatsServiceForTest(t, seedStatsOrders(t))

	report, err := svc.Aggregate(context.Background(), "week")
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	if report.RangeDays != 7 {
		t.Fatalf("expected 7 range days, got %d", report.RangeDays)
	}
	if len(report.OrdersByDay) != 7 || len(report.RevenueByDay) != 7 {
		t.Fatalf("expected 7 buckets, got %d/%d", len(report.OrdersByDay), len(report.RevenueByDay))
	}
	if report.OrdersByDay[0].Date != "2026-03-04" {
		t.Fatalf("expected window to start 2026-03-04, got %s", report.OrdersByDay[0].Date)
	}
	if report.OrdersByDay[6].Date != "2026-03-10" {
		t.Fatalf("expected window to end today, got %s", report.OrdersByDay[6].Date)
	}

	if report.OrdersByDay[5].Count != 1 {
		t.Fatalf("expected 1 order on 2026-03-09, got %d", report.OrdersByDay[5].Count)
	}
	if report.OrdersByDay[6].Count != 2 {
		t.Fatalf("expected 2 orders on 2026-03-10, got %d", report.OrdersByDay[6].Count)
	}
	if report.OrdersByDay[0].Count != 0 {
		t.Fatalf("expected empty leading bucket, got %d", report.OrdersByDay[0].Count)
	}

	// Cancelled orders count toward volume but never revenue.
	if report.RevenueByDay[6].Total != 3000 {
		t.Fatalf("expected 3000 revenue on 2026-03-10, got %d", report.RevenueByDay[6].Total)
	}
	if report.RevenueByDay[5].Total != 5000 {
		t.Fatalf("expected 5000 revenue on 2026-03-09, got %d", report.RevenueByDay[5].Total)
	}
}

func TestStatsServiceStatusDistributionCoversAllOrders(t *testing.T) {
	svc := newStatsServiceForTest(t, seedStatsOrders(t))

	report, err := svc.Aggregate(context.Background(), "week")
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	// The out-of-window 2026-02-01 order still shows up here.
	if report.StatusDistribution[domain.OrderStatusDelivered] != 2 {
		t.Fatalf("expected 2 delivered, got %d", report.StatusDistribution[domain.OrderStatusDelivered])
	}
	if report.StatusDistribution[domain.OrderStatusPending] != 1 {
		t.Fatalf("expected 1 pending, got %d", report.StatusDistribution[domain.OrderStatusPending])
	}
	if report.StatusDistribution[domain.OrderStatusCancelled] != 1 {
		t.Fatalf("expected 1 cancelled, got %d", report.StatusDistribution[domain.OrderStatusCancelled])
	}
}

func TestStatsServiceTopProductsRankedWithinWindow(t *testing.T) {
	svc := newStatsServiceForTest(t, seedStatsOrders(t))

	report, err := svc.Aggregate(context.Background(), "week")
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	// Salad (quantity 9) falls outside the window and must not appear.
	want := []domain.ProductQuantity{
		{Product: "Pizza", Quantity: 5},
		{Product: "Burger", Quantity: 3},
		{Product: "Fries", Quantity: 3},
	}
	if len(report.TopProducts) != len(want) {
		t.Fatalf("expected %d top products, got %+v", len(want), report.TopProducts)
	}
	for i, expected := range want {
		if report.TopProducts[i] != expected {
			t.Fatalf("top product %d: expected %+v, got %+v", i, expected, report.TopProducts[i])
		}
	}
}

func TestStatsServiceRangeKeywords(t *testing.T) {
	svc := newStatsServiceForTest(t, memory.NewOrderRepository())

	cases := []struct {
		keyword string
		want    int
	}{
		{"day", 1},
		{"week", 7},
		{"month", 30},
		{"", 30},
		{"fortnight", 30},
		{" WEEK ", 7},
	}
	for _, tc := range cases {
		report, err := svc.Aggregate(context.Background(), tc.keyword)
		if err != nil {
			t.Fatalf("aggregate %q: %v", tc.keyword, err)
		}
		if report.RangeDays != tc.want {
			t.Fatalf("range %q: expected %d days, got %d", tc.keyword, tc.want, report.RangeDays)
		}
	}
}
