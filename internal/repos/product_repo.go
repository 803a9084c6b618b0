package repos

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"aura/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

type productRow struct {
	ID               string  `db:"id"`
	SKU              string  `db:"sku"`
	Name             string  `db:"name"`
	Category         string  `db:"category"`
	Description      string  `db:"description"`
	Price            float64 `db:"price"`
	Quantity         int     `db:"quantity"`
	ImageURL         string  `db:"image_url"`
	AdditionalImages string  `db:"additional_images"`
	VideoURL         string  `db:"video_url"`
	Status           string  `db:"status"`
}

const productCols = `
  id, sku, name, category, COALESCE(description,'') AS description, price, quantity,
  COALESCE(image_url,'') AS image_url, COALESCE(additional_images,'') AS additional_images,
  COALESCE(video_url,'') AS video_url, status`

func (r productRow) toDomain() domain.Product {
	p := domain.Product{
		ID: r.ID, SKU: r.SKU, Name: r.Name, Category: r.Category,
		Description: r.Description, Price: r.Price, Quantity: r.Quantity,
		ImageURL: r.ImageURL, VideoURL: r.VideoURL, Status: r.Status,
	}
	if r.AdditionalImages != "" {
		_ = json.Unmarshal([]byte(r.AdditionalImages), &p.AdditionalImages)
	}
	return p
}

func encodeImages(imgs []string) string {
	if len(imgs) == 0 {
		return ""
	}
	b, _ := json.Marshal(imgs)
	return string(b)
}

func (r *ProductRepo) All() ([]domain.Product, error) {
	var rows []productRow
	if err := r.db.Select(&rows, `SELECT `+productCols+` FROM products ORDER BY created_at, id`); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var row productRow
	if err := r.db.Get(&row, `SELECT `+productCols+` FROM products WHERE id = ?`, id); err != nil {
		return domain.Product{}, err
	}
	return row.toDomain(), nil
}

func (r *ProductRepo) Insert(p domain.Product) error {
	tx := r.db.MustBegin()
	defer func() { _ = tx.Rollback() }()
	if err := insertProductTx(tx, p); err != nil {
		return err
	}
	return tx.Commit()
}

func insertProductTx(tx *sqlx.Tx, p domain.Product) error {
	_, err := tx.Exec(`
	  INSERT INTO products(id, sku, name, category, description, price, quantity,
	                       image_url, additional_images, video_url, status)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?)
	`, p.ID, p.SKU, p.Name, p.Category, p.Description, p.Price, p.Quantity,
		p.ImageURL, encodeImages(p.AdditionalImages), p.VideoURL, domain.DeriveStatus(p.Quantity))
	return err
}

// Update replaces the whole record matching the id.
func (r *ProductRepo) Update(p domain.Product) error {
	_, err := r.db.Exec(`
	  UPDATE products
	  SET sku=?, name=?, category=?, description=?, price=?, quantity=?,
	      image_url=?, additional_images=?, video_url=?, status=?, updated_at=CURRENT_TIMESTAMP
	  WHERE id=?
	`, p.SKU, p.Name, p.Category, p.Description, p.Price, p.Quantity,
		p.ImageURL, encodeImages(p.AdditionalImages), p.VideoURL, domain.DeriveStatus(p.Quantity), p.ID)
	return err
}

func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	return err
}

// ReplaceAll swaps in a full remote snapshot. Used when the sheet endpoint
// answers at startup; the sheet is authoritative for the catalog.
func (r *ProductRepo) ReplaceAll(products []domain.Product) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		return err
	}
	for _, p := range products {
		if err := insertProductTx(tx, p); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SetQuantity adjusts stock and re-derives the status label.
func (r *ProductRepo) SetQuantity(id string, qty int) error {
	if qty < 0 {
		qty = 0
	}
	_, err := r.db.Exec(`
	  UPDATE products SET quantity=?, status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?
	`, qty, domain.DeriveStatus(qty), id)
	return err
}
