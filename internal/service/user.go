package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck-go/internal/crypto"
	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/repository"
	"github.com/taskdeck/taskdeck-go/internal/validate"
)

var (
	ErrUserIDTaken    = errors.New("user id is already in use")
	ErrBadCredentials = errors.New("password does not match")
)

// UserStore is the persistence surface the account service needs.
// *repository.UserRepository satisfies it; tests substitute an in-memory fake.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUserID(ctx context.Context, userID string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, userID string) error
}

// UserService handles account business logic: registration, login, profile
// reads and mutations. All mutations require the caller's current password.
type UserService struct {
	repo          UserStore
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService creates a new UserService. The secret is the immutable
// token signing key shared with the auth middleware.
func NewUserService(repo UserStore, secret []byte, validity time.Duration) *UserService {
	return &UserService{
		repo:          repo,
		jwtSecret:     secret,
		tokenValidity: validity,
	}
}

// Register creates a new account. A taken user id is a client error, never
// silently ignored. The password is hashed before persisting and the hash
// never leaves this service.
func (s *UserService) Register(ctx context.Context, req model.SignupRequest) (*model.User, error) {
	if _, err := s.repo.GetByUserID(ctx, req.UserID); err == nil {
		return nil, ErrUserIDTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	if err := validate.Signup(req); err != nil {
		return nil, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:       req.UserID,
		Username:     req.Username,
		PasswordHash: hash,
		PhoneNo:      req.PhoneNo,
		Email:        req.Email,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// Lost the race against a concurrent signup with the same id.
		if errors.Is(err, repository.ErrDuplicateUserID) {
			return nil, ErrUserIDTaken
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues an identity token whose subject is
// the user id. An unknown user id is reported as not-found, distinct from a
// password mismatch.
func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.repo.GetByUserID(ctx, req.UserID)
	if err != nil {
		return "", err
	}
	slog.Debug("login attempt", "userId", req.UserID)

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return "", ErrBadCredentials
	}

	return crypto.GenerateToken(user.UserID, s.jwtSecret, s.tokenValidity)
}

// Me retrieves the caller's account. The identity was valid at token
// issuance but the account may have been deleted since, so not-found is a
// normal outcome here.
func (s *UserService) Me(ctx context.Context, userID string) (*model.User, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Modify updates the caller's profile. The current password must match
// before anything changes. Each optional field is overwritten only when
// present and non-blank; the others keep their stored values. Two racing
// modifies of the same account are last-writer-wins at field granularity.
func (s *UserService) Modify(ctx context.Context, userID string, req model.ModifyUserRequest) (*model.User, error) {
	user, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrBadCredentials
	}

	if err := validate.Modify(req); err != nil {
		return nil, err
	}

	if hasText(req.NewPassword) {
		hash, err := crypto.HashPassword(req.NewPassword)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if hasText(req.Username) {
		user.Username = req.Username
	}
	if hasText(req.PhoneNo) {
		user.PhoneNo = req.PhoneNo
	}
	if hasText(req.Email) {
		user.Email = req.Email
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes the caller's account after a password check and returns the
// pre-delete snapshot for display. Todos owned by the account are not
// cascade-deleted: they stay in storage, unreachable through the API. That
// inconsistency is a preserved behavior, not an oversight to fix here.
func (s *UserService) Delete(ctx context.Context, userID, password string) (*model.User, error) {
	user, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrBadCredentials
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return nil, err
	}

	return user, nil
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}
