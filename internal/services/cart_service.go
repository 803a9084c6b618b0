package services

import (
	"aura/internal/domain"
	"aura/internal/repos"
)

type CartService struct {
	Carts    *repos.CartRepo
	Products *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, products *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Products: products}
}

// Add puts a live catalog product into the session's bag. The cart does not
// check stock; quantity limits are only applied at checkout.
func (s *CartService) Add(sessionID, productID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	p, err := s.Products.Get(productID)
	if err != nil {
		return err
	}
	return s.Carts.Upsert(sessionID, p, qty)
}

type CartView struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
}

func (s *CartService) View(sessionID string) (CartView, error) {
	items, err := s.Carts.Items(sessionID)
	if err != nil {
		return CartView{}, err
	}
	return CartView{Items: items, Total: CartTotal(items)}, nil
}

func CartTotal(items []domain.CartItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.CartQuantity)
	}
	return total
}

func (s *CartService) Remove(sessionID, productID string) error {
	return s.Carts.Remove(sessionID, productID)
}

func (s *CartService) Clear(sessionID string) error {
	return s.Carts.Clear(sessionID)
}
