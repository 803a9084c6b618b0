package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"aura/internal/domain"
	applog "aura/internal/log"
	"aura/internal/repos"
	"aura/internal/sheets"
)

var ErrBadAdminKey = errors.New("invalid staff access key")

// AuthService resolves identity by email. The remote Users sheet is the role
// authority; without it, role falls back to a substring heuristic. The
// password collected at signup is stored hashed but never verified; this is
// not a security boundary and the admin surfaces treat it accordingly.
type AuthService struct {
	Users          *repos.UserRepo
	Sheets         *sheets.Client
	AdminSignupKey string
}

func NewAuthService(users *repos.UserRepo, sh *sheets.Client, adminKey string) *AuthService {
	return &AuthService{Users: users, Sheets: sh, AdminSignupKey: adminKey}
}

// ResolveRole asks the remote registry first and falls back to the email
// heuristic: an address containing "admin" gets ADMIN.
func (s *AuthService) ResolveRole(ctx context.Context, email string) string {
	role, err := s.Sheets.FetchRole(ctx, email)
	if err == nil && (role == domain.RoleAdmin || role == domain.RoleUser) {
		return role
	}
	if strings.Contains(strings.ToLower(email), "admin") {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}

func (s *AuthService) Login(ctx context.Context, sid, email string) (string, error) {
	role := s.ResolveRole(ctx, email)
	if err := s.Users.BindSession(sid, strings.ToLower(email), role); err != nil {
		return "", err
	}
	return role, nil
}

// Signup registers an account. ADMIN signups must present the staff access
// key. The user record is synced remotely; a failed sync is logged but never
// blocks authentication.
func (s *AuthService) Signup(ctx context.Context, sid, email, role, adminKey, password string) (string, error) {
	if role != domain.RoleAdmin {
		role = domain.RoleUser
	}
	if role == domain.RoleAdmin && adminKey != s.AdminSignupKey {
		return "", ErrBadAdminKey
	}

	hash := ""
	if password != "" {
		if h, err := bcrypt.GenerateFromPassword([]byte(password), 12); err == nil {
			hash = string(h)
		}
	}

	now := time.Now().UnixMilli()
	if err := s.Users.UpsertUser(email, role, hash, now); err != nil {
		return "", err
	}
	record := domain.UserRecord{Email: strings.ToLower(email), Role: role, Timestamp: now}
	if err := s.Sheets.Sync(ctx, sheets.ActionUser, record); err != nil {
		applog.Error(nil, "auth.signup.sync", err, map[string]any{"email": record.Email})
	}

	if err := s.Users.BindSession(sid, record.Email, role); err != nil {
		return "", err
	}
	return role, nil
}

func (s *AuthService) Current(sid string) (*repos.SessionUser, error) {
	return s.Users.SessionUser(sid)
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}
