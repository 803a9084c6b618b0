package repos

import (
	"github.com/jmoiron/sqlx"

	"aura/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// Append writes an order and its lines in one transaction. Orders are
// immutable once created; there is no update path.
func (r *OrderRepo) Append(o domain.Order) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO orders(id, user_email, total, created_at_ms)
	  VALUES(?,?,?,?)
	`, o.ID, o.UserEmail, o.Total, o.Timestamp); err != nil {
		return err
	}
	for _, it := range o.Items {
		if _, err := tx.Exec(`
		  INSERT INTO order_items(order_id, product_id, sku, name, category, price, cart_qty)
		  VALUES(?,?,?,?,?,?,?)
		`, o.ID, it.ID, it.SKU, it.Name, it.Category, it.Price, it.CartQuantity); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type orderRow struct {
	ID        string  `db:"id"`
	UserEmail string  `db:"user_email"`
	Total     float64 `db:"total"`
	CreatedMs int64   `db:"created_at_ms"`
}

func (r *OrderRepo) list(where string, args ...any) ([]domain.Order, error) {
	var rows []orderRow
	q := `SELECT id, user_email, total, created_at_ms FROM orders ` + where + ` ORDER BY created_at_ms DESC`
	if err := r.db.Select(&rows, q, args...); err != nil {
		return nil, err
	}

	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		o := domain.Order{ID: row.ID, UserEmail: row.UserEmail, Total: row.Total, Timestamp: row.CreatedMs}
		items := []cartItemRow{}
		if err := r.db.Select(&items, `
		  SELECT product_id, sku, name, category, price, '' AS image_url, cart_qty
		  FROM order_items WHERE order_id = ?
		`, row.ID); err != nil {
			return nil, err
		}
		for _, it := range items {
			o.Items = append(o.Items, it.toDomain())
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *OrderRepo) ListAll() ([]domain.Order, error) {
	return r.list(``)
}

func (r *OrderRepo) ListByEmail(email string) ([]domain.Order, error) {
	return r.list(`WHERE LOWER(user_email) = LOWER(?)`, email)
}
