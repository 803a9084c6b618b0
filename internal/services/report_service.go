package services

import (
	"context"
	"fmt"
	"time"

	"aura/internal/domain"
	applog "aura/internal/log"
	"aura/internal/repos"
	"aura/internal/sheets"
)

type ReportService struct {
	Orders *repos.OrderRepo
	Sheets *sheets.Client
}

func NewReportService(orders *repos.OrderRepo, sh *sheets.Client) *ReportService {
	return &ReportService{Orders: orders, Sheets: sh}
}

// Generate builds a sales report over the order history and mirrors it to
// the remote store best-effort.
func (s *ReportService) Generate(ctx context.Context) (domain.SalesReport, error) {
	orders, err := s.Orders.ListAll()
	if err != nil {
		return domain.SalesReport{}, err
	}
	report := BuildSalesReport(orders, time.Now())
	if err := s.Sheets.Sync(ctx, sheets.ActionReport, report); err != nil {
		applog.Error(nil, "report.sync", err, nil)
	}
	return report, nil
}

// BuildSalesReport reduces the order history into dashboard aggregates:
// total revenue, item volume, order count, the first five distinct product
// names sold, and revenue per category.
func BuildSalesReport(orders []domain.Order, now time.Time) domain.SalesReport {
	report := domain.SalesReport{
		ReportID:    fmt.Sprintf("REP-%d", now.UnixMilli()),
		Timestamp:   now.UTC().Format(time.RFC3339),
		OrdersCount: len(orders),
		TopProducts: []string{},
		ByCategory:  map[string]float64{},
	}

	seen := map[string]bool{}
	for _, o := range orders {
		report.Revenue += o.Total
		for _, it := range o.Items {
			report.Volume += it.CartQuantity
			report.ByCategory[it.Category] += it.Price * float64(it.CartQuantity)
			if !seen[it.Name] && len(report.TopProducts) < 5 {
				seen[it.Name] = true
				report.TopProducts = append(report.TopProducts, it.Name)
			}
		}
	}
	return report
}
