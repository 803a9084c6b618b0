package services_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"aura/internal/domain"
	"aura/internal/repos"
	"aura/internal/services"
	"aura/internal/sheets"
)

func newCommunitySvc(t *testing.T) *services.CommunityService {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE community_posts(id TEXT PRIMARY KEY, name TEXT, story TEXT,
	  category TEXT, created_at_ms INTEGER);
	CREATE TABLE messages(id TEXT PRIMARY KEY, name TEXT, email TEXT,
	  message TEXT, created_at_ms INTEGER);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return services.NewCommunityService(repos.NewCommunityRepo(db), sheets.New(""))
}

func TestCommunityAddAndList(t *testing.T) {
	svc := newCommunitySvc(t)
	ctx := context.Background()

	post, err := svc.AddPost(ctx, "Arjun S.", "The bespoke bangle exceeded every expectation.", "Bangles", "arjun@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if post.ID == "" || post.Timestamp == 0 {
		t.Fatalf("bad post: %+v", post)
	}

	posts, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 || posts[0].Story != post.Story {
		t.Fatalf("bad list: %+v", posts)
	}
}

func TestContactMessageStamped(t *testing.T) {
	svc := newCommunitySvc(t)

	err := svc.SendMessage(context.Background(), domain.ContactMessage{
		Name: "Sarah L.", Email: "sarah@example.com", Message: "Do you resize rings?",
	})
	if err != nil {
		t.Fatal(err)
	}
}
