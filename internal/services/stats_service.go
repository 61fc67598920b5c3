package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	domain "github.com/fastbite/api/internal/domain"
	"github.com/fastbite/api/internal/repositories"
)

const (
	statsRangeDay   = "day"
	statsRangeWeek  = "week"
	statsRangeMonth = "month"

	statsTopProductsLimit = 5
	statsDefaultRangeDays = 30
)

const statsDateLayout = "2006-01-02"

// StatsServiceDeps bundles collaborators required to construct the stats service.
type StatsServiceDeps struct {
	Orders repositories.OrderRepository
	Clock  func() time.Time
}

type statsService struct {
	orders repositories.OrderRepository
	clock  func() time.Time
}

// NewStatsService wires dependencies into a concrete StatsService implementation.
func NewStatsService(deps StatsServiceDeps) (StatsService, error) {
	if deps.Orders == nil {
		return nil, errors.New("stats service: order repository is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &statsService{
		orders: deps.Orders,
		clock: func() time.Time {
			return clock().UTC()
		},
	}, nil
}

// Aggregate scans the order store and builds the admin dashboard report for
// the requested range keyword (day, week or month).
func (s *statsService) Aggregate(ctx context.Context, rangeKeyword string) (domain.StatsReport, error) {
	rangeDays := rangeToDays(rangeKeyword)

	orders, err := s.orders.List(ctx, repositories.OrderListFilter{})
	if err != nil {
		return domain.StatsReport{}, fmt.Errorf("stats: list orders: %w", err)
	}

	now := s.clock()
	today := now.Truncate(24 * time.Hour)
	windowStart := today.AddDate(0, 0, -(rangeDays - 1))

	report := domain.StatsReport{
		OrdersByDay:        make([]domain.DayBucket, rangeDays),
		RevenueByDay:       make([]domain.RevenueBucket, rangeDays),
		StatusDistribution: make(map[domain.OrderStatus]int),
		RangeDays:          rangeDays,
	}

	bucketIndex := make(map[string]int, rangeDays)
	for i := 0; i < rangeDays; i++ {
		date := windowStart.AddDate(0, 0, i).Format(statsDateLayout)
		report.OrdersByDay[i] = domain.DayBucket{Date: date}
		report.RevenueByDay[i] = domain.RevenueBucket{Date: date}
		bucketIndex[date] = i
	}

	quantities := make(map[string]int)
	for _, order := range orders {
		report.StatusDistribution[order.Status]++

		date := order.CreatedAt.UTC().Format(statsDateLayout)
		idx, inWindow := bucketIndex[date]
		if !inWindow {
			continue
		}

		report.OrdersByDay[idx].Count++
		if order.Status != domain.OrderStatusCancelled {
			report.RevenueByDay[idx].Total += order.TotalAmount
		}
		for _, item := range order.Items {
			quantities[item.ProductName] += item.Quantity
		}
	}

	report.TopProducts = topProducts(quantities, statsTopProductsLimit)
	return report, nil
}

func rangeToDays(keyword string) int {
	switch strings.ToLower(strings.TrimSpace(keyword)) {
	case statsRangeDay:
		return 1
	case statsRangeWeek:
		return 7
	case statsRangeMonth:
		return 30
	default:
		return statsDefaultRangeDays
	}
}

// topProducts ranks summed quantities descending, product name ascending on
// ties, truncated to limit.
func topProducts(quantities map[string]int, limit int) []domain.ProductQuantity {
	ranked := make([]domain.ProductQuantity, 0, len(quantities))
	for product, quantity := range quantities {
		ranked = append(ranked, domain.ProductQuantity{Product: product, Quantity: quantity})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].Product < ranked[j].Product
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
