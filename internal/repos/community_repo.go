package repos

import (
	"github.com/jmoiron/sqlx"

	"aura/internal/domain"
)

type CommunityRepo struct{ db *sqlx.DB }

func NewCommunityRepo(db *sqlx.DB) *CommunityRepo { return &CommunityRepo{db: db} }

type postRow struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Story     string `db:"story"`
	Category  string `db:"category"`
	CreatedMs int64  `db:"created_at_ms"`
}

func (r *CommunityRepo) ListPosts() ([]domain.CommunityPost, error) {
	rows := []postRow{}
	if err := r.db.Select(&rows, `
	  SELECT id, name, story, category, created_at_ms
	  FROM community_posts ORDER BY created_at_ms DESC, id
	`); err != nil {
		return nil, err
	}
	out := make([]domain.CommunityPost, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CommunityPost{
			ID: row.ID, Name: row.Name, Story: row.Story,
			Category: row.Category, Timestamp: row.CreatedMs,
		})
	}
	return out, nil
}

func (r *CommunityRepo) InsertPost(p domain.CommunityPost) error {
	_, err := r.db.Exec(`
	  INSERT INTO community_posts(id, name, story, category, created_at_ms)
	  VALUES(?,?,?,?,?)
	`, p.ID, p.Name, p.Story, p.Category, p.Timestamp)
	return err
}

func (r *CommunityRepo) InsertMessage(id string, m domain.ContactMessage) error {
	_, err := r.db.Exec(`
	  INSERT INTO messages(id, name, email, message, created_at_ms)
	  VALUES(?,?,?,?,?)
	`, id, m.Name, m.Email, m.Message, m.Timestamp)
	return err
}
