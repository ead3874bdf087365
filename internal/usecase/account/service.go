package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pressroom/internal/domain/entity"
	"pressroom/internal/observability/metrics"
	"pressroom/internal/repository"
	"pressroom/internal/service/auth"
	"pressroom/internal/token"
)

// RegisterInput carries the registration form for either principal kind.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Session is the result of a successful login: the issued bearer token and
// the resolved principal.
type Session struct {
	Token     string
	ExpiresIn time.Duration
	Principal entity.Principal
}

// Service provides registration, login and profile use cases over the two
// disjoint principal stores.
type Service struct {
	Admins repository.AdminRepository
	Users  repository.UserRepository
	Tokens *token.Service
	Hasher PasswordHasher
	Policy auth.PasswordPolicy
}

// RegisterUser creates an author account. Email uniqueness is enforced by
// the store; a collision surfaces as entity.ErrDuplicate.
func (s *Service) RegisterUser(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := s.validateRegistration(in); err != nil {
		return nil, err
	}
	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(in.Username),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		CreatedAt:    now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// RegisterAdmin creates a moderator account. Exposed to existing admins and
// to the bootstrap seeding path, never to the public surface.
func (s *Service) RegisterAdmin(ctx context.Context, in RegisterInput) (*entity.Admin, error) {
	if err := s.validateRegistration(in); err != nil {
		return nil, err
	}
	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	admin := &entity.Admin{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(in.Username),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		CreatedAt:    now,
	}
	if err := s.Admins.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

// BootstrapAdmin seeds the first moderator account at startup so a fresh
// deployment has a reachable admin surface. It is idempotent: when the
// account already exists the seed is a no-op, so restarts do not fail.
func (s *Service) BootstrapAdmin(ctx context.Context, in RegisterInput) error {
	_, err := s.RegisterAdmin(ctx, in)
	if errors.Is(err, entity.ErrDuplicate) {
		return nil
	}
	return err
}

// LoginUser authenticates an author by email and password and issues a token.
// An unknown email and a wrong password both map to ErrInvalidCredentials so
// the response does not reveal which accounts exist.
func (s *Service) LoginUser(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.Users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		metrics.RecordAuthRequest("user", "error")
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil || s.Hasher.Compare(user.PasswordHash, password) != nil {
		metrics.RecordAuthRequest("user", "denied")
		return nil, entity.ErrInvalidCredentials
	}

	tok, err := s.Tokens.Issue(user.ID)
	if err != nil {
		metrics.RecordAuthRequest("user", "error")
		return nil, fmt.Errorf("issue token: %w", err)
	}
	metrics.RecordAuthRequest("user", "ok")
	return &Session{
		Token:     tok,
		ExpiresIn: s.Tokens.TTL(),
		Principal: entity.UserPrincipal(user),
	}, nil
}

// LoginAdmin authenticates a moderator by email and password and issues a
// token. Failure semantics match LoginUser.
func (s *Service) LoginAdmin(ctx context.Context, email, password string) (*Session, error) {
	admin, err := s.Admins.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		metrics.RecordAuthRequest("admin", "error")
		return nil, fmt.Errorf("lookup admin: %w", err)
	}
	if admin == nil || s.Hasher.Compare(admin.PasswordHash, password) != nil {
		metrics.RecordAuthRequest("admin", "denied")
		return nil, entity.ErrInvalidCredentials
	}

	tok, err := s.Tokens.Issue(admin.ID)
	if err != nil {
		metrics.RecordAuthRequest("admin", "error")
		return nil, fmt.Errorf("issue token: %w", err)
	}
	metrics.RecordAuthRequest("admin", "ok")
	return &Session{
		Token:     tok,
		ExpiresIn: s.Tokens.TTL(),
		Principal: entity.AdminPrincipal(admin),
	}, nil
}

// Profile reloads the account behind an authenticated principal so the
// handler returns current data rather than whatever the token was minted
// against.
func (s *Service) Profile(ctx context.Context, p entity.Principal) (entity.Principal, error) {
	switch p.Role {
	case entity.RoleAdmin:
		admin, err := s.Admins.GetByID(ctx, p.ID())
		if err != nil {
			return entity.Principal{}, fmt.Errorf("lookup admin: %w", err)
		}
		if admin == nil {
			return entity.Principal{}, ErrAccountNotFound
		}
		return entity.AdminPrincipal(admin), nil
	case entity.RoleUser:
		user, err := s.Users.GetByID(ctx, p.ID())
		if err != nil {
			return entity.Principal{}, fmt.Errorf("lookup user: %w", err)
		}
		if user == nil {
			return entity.Principal{}, ErrAccountNotFound
		}
		return entity.UserPrincipal(user), nil
	default:
		return entity.Principal{}, ErrAccountNotFound
	}
}

func (s *Service) validateRegistration(in RegisterInput) error {
	if err := entity.ValidateUsername(strings.TrimSpace(in.Username)); err != nil {
		return err
	}
	if err := entity.ValidateEmail(normalizeEmail(in.Email)); err != nil {
		return err
	}
	return s.Policy.Validate(in.Password)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
