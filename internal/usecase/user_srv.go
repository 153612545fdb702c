package usecase

import (
	"context"
	"fmt"

	"pet-grooming/internal/data/repository"
	"pet-grooming/internal/dto/request"
	"pet-grooming/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)

	// Admin endpoints
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		us.log.Warn("Invalid user ID", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: malformed user ID", ErrInvalidInput)
	}

	user, err := us.repo.User.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}

	users, err := us.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		us.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := us.repo.User.CountAll(ctx)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	list := make([]response.UserResponse, 0, len(users))
	for _, u := range users {
		list = append(list, response.UserToResponse(u))
	}

	resp := response.NewPaginatedResponse(list, req.Page, req.Limit(), int(total))
	return &resp, nil
}

func (us *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%w: malformed user ID", ErrInvalidInput)
	}

	user, err := us.repo.User.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrNotFound
	}

	// Deleting the account invalidates every live session for it
	if err := us.repo.Session.RevokeAllUserSessions(ctx, id); err != nil {
		us.log.Error("Failed to revoke user sessions", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("revoke user sessions: %w", err)
	}

	if err := us.repo.User.Delete(ctx, id); err != nil {
		us.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("delete user: %w", err)
	}

	us.log.Info("User deleted", zap.String("user_id", userID))
	return nil
}
