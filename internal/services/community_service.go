package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"aura/internal/domain"
	applog "aura/internal/log"
	"aura/internal/repos"
	"aura/internal/sheets"
)

type CommunityService struct {
	Posts  *repos.CommunityRepo
	Sheets *sheets.Client
}

func NewCommunityService(posts *repos.CommunityRepo, sh *sheets.Client) *CommunityService {
	return &CommunityService{Posts: posts, Sheets: sh}
}

func (s *CommunityService) List() ([]domain.CommunityPost, error) {
	return s.Posts.ListPosts()
}

// AddPost publishes a customer story: stored locally, mirrored remotely
// best-effort.
func (s *CommunityService) AddPost(ctx context.Context, name, story, category, userEmail string) (domain.CommunityPost, error) {
	post := domain.CommunityPost{
		ID:        uuid.NewString(),
		Name:      name,
		Story:     story,
		Category:  category,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.Posts.InsertPost(post); err != nil {
		return domain.CommunityPost{}, err
	}
	payload := map[string]any{
		"name": post.Name, "story": post.Story, "category": post.Category,
		"timestamp": post.Timestamp, "userEmail": userEmail,
	}
	if err := s.Sheets.Sync(ctx, sheets.ActionCommunityPost, payload); err != nil {
		applog.Error(nil, "community.sync", err, map[string]any{"post": post.ID})
	}
	return post, nil
}

// SendMessage records a concierge inquiry and forwards it remotely.
func (s *CommunityService) SendMessage(ctx context.Context, m domain.ContactMessage) error {
	m.Timestamp = time.Now().UnixMilli()
	if err := s.Posts.InsertMessage(uuid.NewString(), m); err != nil {
		return err
	}
	if err := s.Sheets.Sync(ctx, sheets.ActionMessage, m); err != nil {
		applog.Error(nil, "contact.sync", err, map[string]any{"email": m.Email})
	}
	return nil
}
