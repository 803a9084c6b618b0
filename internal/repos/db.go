package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the local SQLite cache, applies the schema, and seeds the
// bundled fixture catalog and community stories when empty. SQLite mirrors
// application state for session continuance; the sheet endpoint (when
// configured) stays authoritative for products and roles.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedCatalogIfEmpty(db); err != nil {
		return nil, err
	}
	if err := seedCommunityIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Catalog snapshot (cache of the remote Products sheet)
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  sku TEXT NOT NULL,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL CHECK (price >= 0),
  quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
  image_url TEXT,
  additional_images TEXT,
  video_url TEXT,
  status TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));
CREATE UNIQUE INDEX IF NOT EXISTS idx_products_sku ON products(sku);

-- Session-scoped shopping bags. Product fields are copied at add time.
CREATE TABLE IF NOT EXISTS cart_items(
  session_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  sku TEXT NOT NULL,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  price NUMERIC NOT NULL,
  image_url TEXT,
  cart_qty INTEGER NOT NULL CHECK (cart_qty >= 1),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT,
  PRIMARY KEY (session_id, product_id)
);

-- Order history. Append-only; rows are never updated or deleted.
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  user_email TEXT NOT NULL,
  total NUMERIC NOT NULL,
  created_at_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at_ms);

CREATE TABLE IF NOT EXISTS order_items(
  order_id TEXT NOT NULL REFERENCES orders(id),
  product_id TEXT NOT NULL,
  sku TEXT NOT NULL,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  price NUMERIC NOT NULL,
  cart_qty INTEGER NOT NULL,
  PRIMARY KEY (order_id, product_id)
);

-- Signed-up users. The password hash is stored but never checked at login;
-- identity is by email and this table is not a security boundary.
CREATE TABLE IF NOT EXISTS users(
  email TEXT PRIMARY KEY,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  password_hash TEXT,
  created_at_ms INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,              -- same value as the 'sid' cookie
  email TEXT,
  role TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen TEXT
);

-- One bespoke-request draft per session while the wizard is in flight.
-- Submitted requests live only in the remote registry.
CREATE TABLE IF NOT EXISTS request_drafts(
  session_id TEXT PRIMARY KEY,
  step INTEGER NOT NULL DEFAULT 1,
  description TEXT NOT NULL DEFAULT '',
  style TEXT NOT NULL DEFAULT 'Traditional',
  quantity INTEGER NOT NULL DEFAULT 1,
  due_date TEXT NOT NULL DEFAULT '',
  image TEXT NOT NULL DEFAULT '',
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS community_posts(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  story TEXT NOT NULL,
  category TEXT NOT NULL,
  created_at_ms INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS messages(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  message TEXT NOT NULL,
  created_at_ms INTEGER NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

func seedCatalogIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting bundled fixture catalog")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()
	for _, p := range FixtureCatalog() {
		if err := insertProductTx(tx, p); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func seedCommunityIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM community_posts`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()
	for _, s := range fixtureStories() {
		if _, err := tx.Exec(`
			INSERT INTO community_posts(id, name, story, category, created_at_ms)
			VALUES(?,?,?,?,?)
		`, s.ID, s.Name, s.Story, s.Category, s.Timestamp); err != nil {
			return err
		}
	}
	return tx.Commit()
}
