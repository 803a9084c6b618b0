package repos

import (
	"github.com/jmoiron/sqlx"

	"aura/internal/domain"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

type cartItemRow struct {
	ProductID string  `db:"product_id"`
	SKU       string  `db:"sku"`
	Name      string  `db:"name"`
	Category  string  `db:"category"`
	Price     float64 `db:"price"`
	ImageURL  string  `db:"image_url"`
	CartQty   int     `db:"cart_qty"`
}

func (r cartItemRow) toDomain() domain.CartItem {
	return domain.CartItem{
		Product: domain.Product{
			ID: r.ProductID, SKU: r.SKU, Name: r.Name, Category: r.Category,
			Price: r.Price, ImageURL: r.ImageURL,
		},
		CartQuantity: r.CartQty,
	}
}

// Upsert adds a product to the session's bag. A repeated add of the same
// product id bumps cart_qty instead of creating a second line. Price and
// display fields are frozen at add time, not re-read later.
func (r *CartRepo) Upsert(sessionID string, p domain.Product, qty int) error {
	_, err := r.db.Exec(`
	  INSERT INTO cart_items(session_id, product_id, sku, name, category, price, image_url, cart_qty)
	  VALUES(?,?,?,?,?,?,?,?)
	  ON CONFLICT(session_id, product_id) DO UPDATE
	  SET cart_qty = cart_items.cart_qty + excluded.cart_qty, updated_at = CURRENT_TIMESTAMP
	`, sessionID, p.ID, p.SKU, p.Name, p.Category, p.Price, p.ImageURL, qty)
	return err
}

func (r *CartRepo) Items(sessionID string) ([]domain.CartItem, error) {
	rows := []cartItemRow{}
	if err := r.db.Select(&rows, `
	  SELECT product_id, sku, name, category, price, COALESCE(image_url,'') AS image_url, cart_qty
	  FROM cart_items
	  WHERE session_id = ?
	  ORDER BY created_at, product_id
	`, sessionID); err != nil {
		return nil, err
	}
	out := make([]domain.CartItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CartRepo) Remove(sessionID, productID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE session_id = ? AND product_id = ?`, sessionID, productID)
	return err
}

func (r *CartRepo) Clear(sessionID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE session_id = ?`, sessionID)
	return err
}
