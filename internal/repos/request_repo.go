package repos

import (
	"github.com/jmoiron/sqlx"
)

// RequestRepo stores one bespoke-request draft per session while the wizard
// is in flight. Submitted requests are transmitted once and never kept here.
type RequestRepo struct{ db *sqlx.DB }

func NewRequestRepo(db *sqlx.DB) *RequestRepo { return &RequestRepo{db: db} }

type RequestDraft struct {
	SessionID   string `db:"session_id" json:"-"`
	Step        int    `db:"step" json:"step"`
	Description string `db:"description" json:"description"`
	Style       string `db:"style" json:"style"`
	Quantity    int    `db:"quantity" json:"quantity"`
	DueDate     string `db:"due_date" json:"dueDate"`
	Image       string `db:"image" json:"image,omitempty"`
}

// Get returns the session's draft, creating a fresh step-1 draft on first use.
func (r *RequestRepo) Get(sessionID string) (RequestDraft, error) {
	var d RequestDraft
	err := r.db.Get(&d, `
	  SELECT session_id, step, description, style, quantity, due_date, image
	  FROM request_drafts WHERE session_id = ?
	`, sessionID)
	if err == nil {
		return d, nil
	}
	d = RequestDraft{SessionID: sessionID, Step: 1, Style: "Traditional", Quantity: 1}
	if err := r.Save(d); err != nil {
		return RequestDraft{}, err
	}
	return d, nil
}

func (r *RequestRepo) Save(d RequestDraft) error {
	_, err := r.db.Exec(`
	  INSERT INTO request_drafts(session_id, step, description, style, quantity, due_date, image, updated_at)
	  VALUES(?,?,?,?,?,?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(session_id) DO UPDATE SET
	    step=excluded.step, description=excluded.description, style=excluded.style,
	    quantity=excluded.quantity, due_date=excluded.due_date, image=excluded.image,
	    updated_at=CURRENT_TIMESTAMP
	`, d.SessionID, d.Step, d.Description, d.Style, d.Quantity, d.DueDate, d.Image)
	return err
}

func (r *RequestRepo) Reset(sessionID string) error {
	_, err := r.db.Exec(`DELETE FROM request_drafts WHERE session_id = ?`, sessionID)
	return err
}
