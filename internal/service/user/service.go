package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/intempo-hq/timesheet-backend-go/internal/domain/user"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/usercache"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	Get(ctx context.Context, id string) (user.UserResponse, error)
	List(ctx context.Context) ([]user.UserResponse, error)
	Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo  user.UserRepository
	cache *usercache.Cache
}

func NewService(repo user.UserRepository, cache *usercache.Cache) Service {
	return &ServiceImpl{
		repo:  repo,
		cache: cache,
	}
}

func hashPassword(password string) (*string, error) {
	if password == "" {
		return nil, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashed := string(hash)
	return &hashed, nil
}

// Create implements Service. Machine accounts carry no password and
// cannot log in directly.
func (s *ServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Draft: user.Draft{
			Username:    req.Username,
			Name:        req.Name,
			Surname:     req.Surname,
			Role:        user.Role(req.Role),
			Machine:     req.Machine,
			HoursPerDay: req.HoursPerDay,
			CostPerKm:   req.CostPerKm,
			Active:      true,
		},
		ID:           uuid.NewString(),
		PasswordHash: passwordHash,
	}

	created, err := s.repo.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, err
	}

	s.cache.Invalidate()

	return user.ToResponse(created), nil
}

// Get implements Service.
func (s *ServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.cache.Get(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// List implements Service.
func (s *ServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.cache.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, user.ToResponse(u))
	}
	return out, nil
}

// Update implements Service. Only the fields present in the request
// change; the username is immutable.
func (s *ServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Surname != nil {
		u.Surname = *req.Surname
	}
	if req.Role != nil {
		u.Role = user.Role(*req.Role)
	}
	if req.HoursPerDay != nil {
		u.HoursPerDay = *req.HoursPerDay
	}
	if req.CostPerKm != nil {
		u.CostPerKm = req.CostPerKm
	}
	if req.Active != nil {
		u.Active = *req.Active
	}
	if req.Password != nil {
		passwordHash, err := hashPassword(*req.Password)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = passwordHash
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return user.UserResponse{}, err
	}

	s.cache.Invalidate()

	return user.ToResponse(u), nil
}

// Delete implements Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate()

	return nil
}
