package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	pkgerrors "github.com/yungbote/educraft-backend/internal/pkg/errors"
	"github.com/yungbote/educraft-backend/internal/repos"
	"github.com/yungbote/educraft-backend/internal/types"
)

type stubUserRepo struct {
	repos.UserRepo
	users  []*types.User
	exists bool
}

func (s *stubUserRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error) {
	s.users = append(s.users, users...)
	return users, nil
}

func (s *stubUserRepo) GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*types.User, error) {
	var matched []*types.User
	for _, u := range s.users {
		for _, email := range emails {
			if u.Email == email {
				matched = append(matched, u)
			}
		}
	}
	return matched, nil
}

func (s *stubUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	return s.exists, nil
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(testLogger(), repo, "test-secret", time.Hour)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Teacher@Example.com", "correct horse", "Pat")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "teacher@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "correct horse" {
		t.Fatalf("password stored in the clear")
	}
	if token == "" {
		t.Fatalf("register returned no token")
	}

	loggedIn, loginToken, err := svc.Login(ctx, "teacher@example.com", "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.ID != user.ID || loginToken == "" {
		t.Fatalf("login returned wrong user or empty token")
	}

	parsedID, err := svc.ParseToken(loginToken)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if parsedID != user.ID {
		t.Fatalf("token subject mismatch: got %s, want %s", parsedID, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{exists: true}
	svc := NewAuthService(testLogger(), repo, "test-secret", time.Hour)

	_, _, err := svc.Register(context.Background(), "teacher@example.com", "correct horse", "Pat")
	if !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for duplicate email, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("duplicate registration created a user")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(testLogger(), repo, "test-secret", time.Hour)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "teacher@example.com", "correct horse", "Pat"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "teacher@example.com", "wrong horse"); !errors.Is(err, pkgerrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "correct horse"); !errors.Is(err, pkgerrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown email, got %v", err)
	}
}

func TestParseTokenRejectsForgedToken(t *testing.T) {
	repo := &stubUserRepo{}
	issuer := NewAuthService(testLogger(), repo, "secret-a", time.Hour)
	verifier := NewAuthService(testLogger(), &stubUserRepo{}, "secret-b", time.Hour)
	ctx := context.Background()

	_, token, err := issuer.Register(ctx, "teacher@example.com", "correct horse", "Pat")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := verifier.ParseToken(token); !errors.Is(err, pkgerrors.ErrUnauthorized) {
		t.Fatalf("token signed with another secret must be rejected, got %v", err)
	}
	if _, err := issuer.ParseToken("not.a.token"); !errors.Is(err, pkgerrors.ErrUnauthorized) {
		t.Fatalf("garbage token must be rejected, got %v", err)
	}

	expired := NewAuthService(testLogger(), &stubUserRepo{}, "secret-a", -time.Hour)
	_, expiredToken, err := expired.Register(ctx, "old@example.com", "correct horse", "Pat")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := expired.ParseToken(expiredToken); !errors.Is(err, pkgerrors.ErrUnauthorized) {
		t.Fatalf("expired token must be rejected, got %v", err)
	}
}
