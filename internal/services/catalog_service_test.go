package services_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"aura/internal/domain"
	"aura/internal/repos"
	"aura/internal/services"
	"aura/internal/sheets"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE products(id TEXT PRIMARY KEY, sku TEXT, name TEXT, category TEXT,
	  description TEXT, price NUMERIC, quantity INTEGER, image_url TEXT,
	  additional_images TEXT, video_url TEXT, status TEXT,
	  created_at TEXT DEFAULT CURRENT_TIMESTAMP, updated_at TEXT);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestFilterProducts(t *testing.T) {
	catalog := []domain.Product{
		{ID: "r1", SKU: "AURA-R-001", Name: "Eternal Solitaire Ring", Category: "Rings", Price: 1250, Quantity: 8},
		{ID: "r2", SKU: "AURA-R-002", Name: "Vintage Rose Band", Category: "Rings", Price: 890, Quantity: 3},
		{ID: "e1", SKU: "AURA-E-001", Name: "Pearl Drop Earrings", Category: "Earrings", Price: 450, Quantity: 12},
		{ID: "bad", SKU: "", Name: "", Category: "Rings", Price: 10, Quantity: 1}, // malformed, always dropped
	}

	cases := []struct {
		name     string
		query    string
		category string
		wantIDs  []string
	}{
		{"all", "", "All", []string{"r1", "r2", "e1"}},
		{"empty category means all", "", "", []string{"r1", "r2", "e1"}},
		{"by category", "", "Rings", []string{"r1", "r2"}},
		{"query matches name", "rose", "All", []string{"r2"}},
		{"query matches sku", "aura-e", "All", []string{"e1"}},
		{"query and category", "ring", "Earrings", []string{}},
		{"no match", "tiara", "All", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := services.FilterProducts(catalog, tc.query, tc.category)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("want %d products, got %+v", len(tc.wantIDs), got)
			}
			for i, p := range got {
				if p.ID != tc.wantIDs[i] {
					t.Fatalf("position %d: want %s, got %s", i, tc.wantIDs[i], p.ID)
				}
			}
		})
	}
}

func TestCatalogAddDerivesStatus(t *testing.T) {
	db := memdb(t)
	svc := services.NewCatalogService(repos.NewProductRepo(db), sheets.New(""))
	ctx := context.Background()

	added, err := svc.Add(ctx, domain.Product{SKU: "AURA-N-009", Name: "Moonlight Pendant", Category: "Pendants", Price: 700, Quantity: 2})
	if err != nil {
		t.Fatal(err)
	}
	if added.ID == "" {
		t.Fatal("expected a generated id")
	}
	if added.Status != domain.StatusLimited {
		t.Fatalf("want %q, got %q", domain.StatusLimited, added.Status)
	}

	stored, err := svc.Get(added.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != domain.StatusLimited || stored.Quantity != 2 {
		t.Fatalf("bad stored product: %+v", stored)
	}
}

func TestCatalogUpdateRederivesStatus(t *testing.T) {
	db := memdb(t)
	svc := services.NewCatalogService(repos.NewProductRepo(db), sheets.New(""))
	ctx := context.Background()

	p, err := svc.Add(ctx, domain.Product{SKU: "AURA-B-004", Name: "Temple Bangle", Category: "Bangles", Price: 1500, Quantity: 10})
	if err != nil {
		t.Fatal(err)
	}
	if p.Status != domain.StatusInStock {
		t.Fatalf("want in stock, got %q", p.Status)
	}

	p.Quantity = 0
	updated, err := svc.Update(ctx, p)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != domain.StatusOutOfStock {
		t.Fatalf("want %q after sellout, got %q", domain.StatusOutOfStock, updated.Status)
	}

	// Updating an unknown id fails rather than inserting.
	if _, err := svc.Update(ctx, domain.Product{ID: "ghost", SKU: "X", Name: "X"}); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestCatalogRemove(t *testing.T) {
	db := memdb(t)
	svc := services.NewCatalogService(repos.NewProductRepo(db), sheets.New(""))
	ctx := context.Background()

	p, err := svc.Add(ctx, domain.Product{SKU: "AURA-R-010", Name: "Classic Gold Band", Category: "Rings", Price: 650, Quantity: 20})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Remove(ctx, p.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(p.ID); err == nil {
		t.Fatal("expected lookup to fail after remove")
	}
}

func TestCatalogBootstrapKeepsCacheWhenRemoteUnavailable(t *testing.T) {
	db := memdb(t)
	repo := repos.NewProductRepo(db)
	svc := services.NewCatalogService(repo, sheets.New(""))
	ctx := context.Background()

	if _, err := svc.Add(ctx, domain.Product{SKU: "AURA-E-007", Name: "Jhumka Earrings", Category: "Earrings", Price: 950, Quantity: 6}); err != nil {
		t.Fatal(err)
	}

	svc.Bootstrap(ctx) // unconfigured endpoint: no-op

	all, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("cache should survive bootstrap, got %d products", len(all))
	}
}
