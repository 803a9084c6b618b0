package services_test

import (
	"testing"
	"time"

	"aura/internal/domain"
	"aura/internal/services"
)

func item(id, name, category string, price float64, qty int) domain.CartItem {
	return domain.CartItem{
		Product:      domain.Product{ID: id, SKU: id, Name: name, Category: category, Price: price},
		CartQuantity: qty,
	}
}

func TestBuildSalesReport(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		{ID: "ORD-AAAAAAAAA", Total: 2500, Items: []domain.CartItem{
			item("r1", "Eternal Solitaire Ring", "Rings", 1250, 2),
		}},
		{ID: "ORD-BBBBBBBBB", Total: 2150, Items: []domain.CartItem{
			item("e1", "Pearl Drop Earrings", "Earrings", 450, 1),
			item("r2", "Vintage Rose Band", "Rings", 850, 2),
		}},
	}

	r := services.BuildSalesReport(orders, now)

	if r.ReportID != "REP-1788264000000" {
		t.Fatalf("bad report id %q", r.ReportID)
	}
	if r.Timestamp != "2026-09-01T12:00:00Z" {
		t.Fatalf("bad timestamp %q", r.Timestamp)
	}
	if r.OrdersCount != 2 {
		t.Fatalf("want 2 orders, got %d", r.OrdersCount)
	}
	if r.Revenue != 4650 {
		t.Fatalf("want revenue 4650, got %v", r.Revenue)
	}
	if r.Volume != 5 {
		t.Fatalf("want volume 5, got %d", r.Volume)
	}
	if r.ByCategory["Rings"] != 4200 || r.ByCategory["Earrings"] != 450 {
		t.Fatalf("bad category split: %+v", r.ByCategory)
	}
	want := []string{"Eternal Solitaire Ring", "Pearl Drop Earrings", "Vintage Rose Band"}
	if len(r.TopProducts) != len(want) {
		t.Fatalf("bad top products: %+v", r.TopProducts)
	}
	for i := range want {
		if r.TopProducts[i] != want[i] {
			t.Fatalf("position %d: want %q, got %q", i, want[i], r.TopProducts[i])
		}
	}
}

func TestBuildSalesReportCapsTopProducts(t *testing.T) {
	o := domain.Order{ID: "ORD-CCCCCCCCC", Total: 70}
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for _, n := range names {
		o.Items = append(o.Items, item(n, n, "Rings", 10, 1))
	}
	r := services.BuildSalesReport([]domain.Order{o}, time.Now())
	if len(r.TopProducts) != 5 {
		t.Fatalf("want 5 names, got %d", len(r.TopProducts))
	}
}

func TestBuildSalesReportEmptyHistory(t *testing.T) {
	r := services.BuildSalesReport(nil, time.Now())
	if r.Revenue != 0 || r.Volume != 0 || r.OrdersCount != 0 {
		t.Fatalf("want zero aggregates, got %+v", r)
	}
	if r.TopProducts == nil || r.ByCategory == nil {
		t.Fatal("aggregates must serialize as empty, not null")
	}
}
