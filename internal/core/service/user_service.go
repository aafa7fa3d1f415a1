package service

import (
	"context"
	"errors"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/saiketsystems/user-management-api/internal/core/domain"
	"github.com/saiketsystems/user-management-api/internal/core/ports"
	"github.com/saiketsystems/user-management-api/internal/pkg/password"
	"github.com/saiketsystems/user-management-api/internal/pkg/token"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService implements registration, login, and account lifecycle on top
// of the user repository. Uniqueness races are resolved by the storage
// layer's unique indexes, not by check-then-insert.
type UserService struct {
	repo    ports.UserRepository
	hasher  *password.Hasher
	tokens  *token.Manager
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher *password.Hasher, tokens *token.Manager, limiter ports.LoginLimiter, logger zerolog.Logger) *UserService {
	return &UserService{
		repo:    repo,
		hasher:  hasher,
		tokens:  tokens,
		limiter: limiter,
		logger:  logger,
	}
}

func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" || input.FullName == "" {
		return "", nil, domain.NewValidationError("username, email, password, and full name are required")
	}
	if n := utf8.RuneCountInString(input.Username); n < domain.MinUsernameLen || n > domain.MaxUsernameLen {
		return "", nil, domain.NewValidationError("username must be between 3 and 50 characters")
	}
	if !emailRegex.MatchString(input.Email) {
		return "", nil, domain.NewValidationError("invalid email format")
	}
	if len(input.Password) < domain.MinPasswordLen {
		return "", nil, domain.NewValidationError("password must be at least 6 characters")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Age:          input.Age,
		Bio:          input.Bio,
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return "", nil, err
	}

	tok, err := s.tokens.Issue(created)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return tok, created, nil
}

// Login authenticates by username or email. An unknown identifier and a
// wrong password both return ErrInvalidCredentials so callers cannot tell
// which factor failed.
func (s *UserService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	if identifier == "" || password == "" {
		return "", nil, domain.NewValidationError("username and password are required")
	}

	if s.limiter != nil {
		blocked, err := s.limiter.Blocked(ctx, identifier)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login limiter check failed")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, identifier)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.IsActive {
		return "", nil, domain.ErrAccountDisabled
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		s.recordFailure(ctx, identifier)
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, identifier); err != nil {
			s.logger.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	tok, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user logged in")
	return tok, user, nil
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, input ports.UpdateProfileInput) (*domain.User, error) {
	if input.FullName == "" || input.Email == "" {
		return nil, domain.NewValidationError("full name and email are required")
	}
	if !emailRegex.MatchString(input.Email) {
		return nil, domain.NewValidationError("invalid email format")
	}

	// Field-scoped write: a read-modify-write here could carry a stale
	// role or is_active past a concurrent admin change.
	updated, err := s.repo.UpdateProfile(ctx, id, input)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *UserService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return domain.NewValidationError("current password and new password are required")
	}
	if len(newPassword) < domain.MinPasswordLen {
		return domain.NewValidationError("new password must be at least 6 characters")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	ok, err := s.hasher.Verify(currentPassword, user.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("password changed")
	return nil
}

// DeleteAccount removes the caller's own account after re-confirming the
// current password.
func (s *UserService) DeleteAccount(ctx context.Context, id, password string) error {
	if password == "" {
		return domain.NewValidationError("password is required to delete account")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidCredentials
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Str("username", user.Username).Msg("account deleted")
	return nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) AdminUpdateUser(ctx context.Context, id string, input ports.AdminUpdateInput) (*domain.User, error) {
	if input.FullName == "" || input.Email == "" {
		return nil, domain.NewValidationError("full name and email are required")
	}
	if !emailRegex.MatchString(input.Email) {
		return nil, domain.NewValidationError("invalid email format")
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleAdmin && role != domain.RoleUser {
		return nil, domain.NewValidationError("role must be user or admin")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FullName = input.FullName
	user.Email = input.Email
	user.Age = input.Age
	user.Bio = input.Bio
	user.Role = role
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	} else {
		user.IsActive = true
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Str("role", updated.Role).Bool("is_active", updated.IsActive).Msg("user updated by admin")
	return updated, nil
}

// AdminDeleteUser removes another user's account. Admins cannot delete
// themselves through this path.
func (s *UserService) AdminDeleteUser(ctx context.Context, actorID, targetID string) (*domain.User, error) {
	if actorID == targetID {
		return nil, domain.ErrSelfDeletion
	}

	user, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", targetID).Str("actor_id", actorID).Msg("user deleted by admin")
	return user, nil
}

func (s *UserService) Stats(ctx context.Context) (*domain.UserStats, error) {
	return s.repo.Stats(ctx)
}

func (s *UserService) recordFailure(ctx context.Context, identifier string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, identifier); err != nil {
		s.logger.Warn().Err(err).Msg("login limiter record failed")
	}
}
