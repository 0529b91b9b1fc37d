package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/socialive/event-catalog/internal/model"
	"github.com/socialive/event-catalog/internal/repository"
)

// ErrInvalidCredentials is returned when a login password does not match the
// stored hash.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService implements the account lifecycle. Names are unique because
// they address accounts at login.
type UserService struct {
	users repository.UserRepository
}

// NewUserService constructs a UserService.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates an account, rejecting duplicate names and storing only a
// bcrypt hash of the password.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	name := strings.TrimSpace(req.Name)

	if req.Password == "" {
		return nil, &model.ValidationError{Field: "password", Reason: "is required"}
	}

	_, err := s.users.GetByName(ctx, name)
	if err == nil {
		return nil, repository.ErrDuplicate
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hash),
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login compares the supplied password against the stored hash and returns
// the account on success. The hash itself never reaches the response body.
func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (*model.User, error) {
	u, err := s.users.GetByName(ctx, strings.TrimSpace(req.Name))
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// List returns all accounts.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Get returns one account by its identifier.
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// Update applies a partial patch to an account. A supplied password is
// re-hashed before storage.
func (s *UserService) Update(ctx context.Context, id string, upd model.UserUpdate) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		u.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Email != nil {
		u.Email = strings.TrimSpace(*upd.Email)
	}
	if upd.Password != nil {
		if *upd.Password == "" {
			return nil, &model.ValidationError{Field: "password", Reason: "must not be empty"}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}
	return s.users.Update(ctx, u)
}

// Delete removes an account and returns the removed record so callers can
// report which one is gone.
func (s *UserService) Delete(ctx context.Context, id string) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return nil, err
	}
	return u, nil
}
