package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"aura/internal/domain"
	applog "aura/internal/log"
	"aura/internal/repos"
	"aura/internal/sheets"
)

var ErrEmptyCart = errors.New("cart is empty")

type OrderService struct {
	Carts    *repos.CartRepo
	Orders   *repos.OrderRepo
	Products *repos.ProductRepo
	Sheets   *sheets.Client
}

func NewOrderService(carts *repos.CartRepo, orders *repos.OrderRepo, products *repos.ProductRepo, sh *sheets.Client) *OrderService {
	return &OrderService{Carts: carts, Orders: orders, Products: products, Sheets: sh}
}

func newOrderID() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:9])
	return "ORD-" + token
}

// Checkout freezes the bag into an immutable order: total is the sum of
// price x cartQuantity at this moment, stock is decremented (clamped at
// zero), the order is appended to history, the bag is cleared, and the order
// is synced best-effort. The sync result never blocks the confirmation.
func (s *OrderService) Checkout(ctx context.Context, sessionID, userEmail string) (domain.Order, error) {
	items, err := s.Carts.Items(sessionID)
	if err != nil {
		return domain.Order{}, err
	}
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	order := domain.Order{
		ID:        newOrderID(),
		UserEmail: userEmail,
		Items:     items,
		Total:     CartTotal(items),
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.Orders.Append(order); err != nil {
		return domain.Order{}, err
	}

	// Sold stock comes off the shelf. Items whose product has since been
	// removed from the catalog are simply skipped.
	for _, it := range items {
		p, err := s.Products.Get(it.ID)
		if err != nil {
			continue
		}
		if err := s.Products.SetQuantity(p.ID, p.Quantity-it.CartQuantity); err != nil {
			applog.Error(nil, "order.stock.decrement", err, map[string]any{"product": p.ID})
		}
	}
	// Mirror the new quantities so the authoritative sheet does not resurrect
	// pre-sale stock at the next bootstrap.
	if all, err := s.Products.All(); err == nil {
		if err := s.Sheets.Sync(ctx, sheets.ActionProduct, all); err != nil {
			applog.Error(nil, "order.stock.push", err, map[string]any{"order": order.ID})
		}
	}

	if err := s.Carts.Clear(sessionID); err != nil {
		applog.Error(nil, "order.cart.clear", err, map[string]any{"order": order.ID})
	}

	if err := s.Sheets.Sync(ctx, sheets.ActionOrder, order); err != nil {
		applog.Error(nil, "order.sync", err, map[string]any{"order": order.ID})
	}
	return order, nil
}

func (s *OrderService) History(email string) ([]domain.Order, error) {
	return s.Orders.ListByEmail(email)
}

func (s *OrderService) All() ([]domain.Order, error) {
	return s.Orders.ListAll()
}
