package repos

import (
	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

// UpsertUser records a signup. Role is fixed at signup; re-signup with the
// same email refreshes role and hash rather than erroring.
func (r *UserRepo) UpsertUser(email, role, passwordHash string, tsMillis int64) error {
	_, err := r.DB.Exec(`
	  INSERT INTO users(email, role, password_hash, created_at_ms)
	  VALUES(LOWER(?),?,?,?)
	  ON CONFLICT(email) DO UPDATE SET role=excluded.role, password_hash=excluded.password_hash
	`, email, role, passwordHash, tsMillis)
	return err
}

type SessionUser struct {
	Email string `db:"email"`
	Role  string `db:"role"`
}

func (r *UserRepo) BindSession(sid, email, role string) error {
	_, err := r.DB.Exec(`
	  INSERT INTO sessions(id, email, role, last_seen)
	  VALUES(?,?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET email=excluded.email, role=excluded.role, last_seen=CURRENT_TIMESTAMP
	`, sid, email, role)
	return err
}

func (r *UserRepo) SessionUser(sid string) (*SessionUser, error) {
	var u SessionUser
	err := r.DB.Get(&u, `
	  SELECT email, role FROM sessions
	  WHERE id = ? AND email IS NOT NULL AND email != ''
	`, sid)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET email=NULL, role=NULL, last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
