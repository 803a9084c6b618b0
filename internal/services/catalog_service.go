package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"aura/internal/domain"
	applog "aura/internal/log"
	"aura/internal/repos"
	"aura/internal/sheets"
)

// CatalogService owns the product list for the running session. The remote
// sheet (when configured) is authoritative; SQLite is the local mirror. Every
// admin mutation pushes the whole list back to the sheet. The backend
// rewrites its Products tab from scratch, so there is no delta sync and
// concurrent edits are last-write-wins.
type CatalogService struct {
	Products *repos.ProductRepo
	Sheets   *sheets.Client
}

func NewCatalogService(products *repos.ProductRepo, sh *sheets.Client) *CatalogService {
	return &CatalogService{Products: products, Sheets: sh}
}

// Bootstrap replaces the local mirror with the remote snapshot when one is
// available. Any failure leaves the cached/fixture catalog in place.
func (s *CatalogService) Bootstrap(ctx context.Context) {
	if !s.Sheets.Configured() {
		return
	}
	remote, err := s.Sheets.FetchProducts(ctx)
	if err != nil || remote == nil {
		applog.Warn(nil, "catalog.bootstrap.fallback", map[string]any{"reason": "remote unavailable"})
		return
	}
	if err := s.Products.ReplaceAll(remote); err != nil {
		applog.Error(nil, "catalog.bootstrap.cache", err, nil)
		return
	}
	applog.Info(nil, "catalog.bootstrap.remote", map[string]any{"count": len(remote)})
}

func (s *CatalogService) List() ([]domain.Product, error) {
	return s.Products.All()
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	return s.Products.Get(id)
}

// Filter applies the storefront search: case-insensitive substring match on
// name or sku, and category equality ("All" bypasses the category check).
// Malformed records are dropped, never errored on.
func (s *CatalogService) Filter(query, category string) ([]domain.Product, error) {
	all, err := s.Products.All()
	if err != nil {
		return nil, err
	}
	return FilterProducts(all, query, category), nil
}

func FilterProducts(products []domain.Product, query, category string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !p.Valid() {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.SKU), q) {
			continue
		}
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Add assigns a fresh id, derives status from quantity, persists, and pushes
// the full catalog to the remote store.
func (s *CatalogService) Add(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.ID = uuid.NewString()
	p.Status = domain.DeriveStatus(p.Quantity)
	if err := s.Products.Insert(p); err != nil {
		return domain.Product{}, err
	}
	s.pushList(ctx)
	return p, nil
}

// Update replaces the record matching p.ID wholesale and re-derives status
// from the submitted quantity.
func (s *CatalogService) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	if _, err := s.Products.Get(p.ID); err != nil {
		return domain.Product{}, err
	}
	p.Status = domain.DeriveStatus(p.Quantity)
	if err := s.Products.Update(p); err != nil {
		return domain.Product{}, err
	}
	s.pushList(ctx)
	return p, nil
}

func (s *CatalogService) Remove(ctx context.Context, id string) error {
	if err := s.Products.Delete(id); err != nil {
		return err
	}
	s.pushList(ctx)
	return nil
}

// pushList mirrors the catalog to the sheet, whole-list replace semantics.
// Best-effort: a failed push leaves the local mirror as the working copy.
func (s *CatalogService) pushList(ctx context.Context) {
	all, err := s.Products.All()
	if err != nil {
		applog.Error(nil, "catalog.push.load", err, nil)
		return
	}
	if err := s.Sheets.Sync(ctx, sheets.ActionProduct, all); err != nil {
		applog.Error(nil, "catalog.push.sync", err, map[string]any{"count": len(all)})
	}
}
