package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"aura/internal/domain"
	"aura/internal/repos"
	"aura/internal/services"
	"aura/internal/sheets"
)

func memdbAuth(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE users(email TEXT PRIMARY KEY, role TEXT, password_hash TEXT, created_at_ms INTEGER);
	CREATE TABLE sessions(id TEXT PRIMARY KEY, email TEXT, role TEXT,
	  created_at TEXT DEFAULT CURRENT_TIMESTAMP, last_seen TEXT);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func newAuthSvc(t *testing.T) (*services.AuthService, *sqlx.DB) {
	t.Helper()
	db := memdbAuth(t)
	return services.NewAuthService(repos.NewUserRepo(db), sheets.New(""), "AURA2024"), db
}

func TestResolveRoleHeuristic(t *testing.T) {
	svc, _ := newAuthSvc(t)
	ctx := context.Background()

	// No remote registry: "admin" anywhere in the address wins ADMIN.
	cases := map[string]string{
		"admin@aura.example":      domain.RoleAdmin,
		"store.ADMIN@x.example":   domain.RoleAdmin,
		"priya@example.com":       domain.RoleUser,
		"administrator@y.example": domain.RoleAdmin,
	}
	for email, want := range cases {
		if got := svc.ResolveRole(ctx, email); got != want {
			t.Errorf("%s: want %s, got %s", email, want, got)
		}
	}
}

func TestLoginBindsSessionAndLogoutClearsIt(t *testing.T) {
	svc, _ := newAuthSvc(t)
	ctx := context.Background()

	role, err := svc.Login(ctx, "sid-1", "Priya@Example.com")
	if err != nil {
		t.Fatal(err)
	}
	if role != domain.RoleUser {
		t.Fatalf("want USER, got %s", role)
	}

	u, err := svc.Current("sid-1")
	if err != nil {
		t.Fatal(err)
	}
	if u.Email != "priya@example.com" || u.Role != domain.RoleUser {
		t.Fatalf("bad session user: %+v", u)
	}

	if err := svc.Logout("sid-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Current("sid-1"); err == nil {
		t.Fatal("expected no session user after logout")
	}
}

func TestSignupAdminKey(t *testing.T) {
	svc, _ := newAuthSvc(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "sid-a", "boss@aura.example", domain.RoleAdmin, "wrong-key", "pw"); !errors.Is(err, services.ErrBadAdminKey) {
		t.Fatalf("want ErrBadAdminKey, got %v", err)
	}

	role, err := svc.Signup(ctx, "sid-a", "boss@aura.example", domain.RoleAdmin, "AURA2024", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if role != domain.RoleAdmin {
		t.Fatalf("want ADMIN, got %s", role)
	}

	// USER signups never need the key; unknown roles collapse to USER.
	role, err = svc.Signup(ctx, "sid-b", "guest@example.com", "SUPERUSER", "", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if role != domain.RoleUser {
		t.Fatalf("want USER, got %s", role)
	}
}

func TestSignupStoresHashedPassword(t *testing.T) {
	svc, db := newAuthSvc(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "sid-h", "mira@example.com", domain.RoleUser, "", "opensesame"); err != nil {
		t.Fatal(err)
	}

	var hash string
	if err := db.Get(&hash, `SELECT password_hash FROM users WHERE email='mira@example.com'`); err != nil {
		t.Fatal(err)
	}
	if hash == "opensesame" || hash == "" {
		t.Fatal("password must be stored hashed")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}
}
