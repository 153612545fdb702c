package usecase

import (
	"context"
	"fmt"
	"time"

	"pet-grooming/internal/data/entity"
	"pet-grooming/internal/data/repository"
	"pet-grooming/internal/dto/request"
	"pet-grooming/internal/dto/response"
	"pet-grooming/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository // grouping userRepo & sessionRepo
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	// 2. Check email already registered
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, ErrEmailTaken
	}

	// 3. Check username already taken
	existingUser, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUsernameTaken
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 5. Create user entity
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		PetName:      req.PetName,
		PetType:      entity.PetType(req.PetType),
		PetBreed:     req.PetBreed,
		Address:      req.Address,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	// 6. Save user
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create account: %w", err)
	}

	// 7. Auto login after register
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		// Continue without session; the user can still log in
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return s.convertAuthResponse(user, session), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email, fall back to username
	user, err := s.repo.User.FindByEmail(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("identifier", req.Username))
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil {
		user, err = s.repo.User.FindByUsername(ctx, req.Username)
		if err != nil {
			s.log.Error("Failed to find user by username", zap.Error(err), zap.String("identifier", req.Username))
			return nil, fmt.Errorf("find user: %w", err)
		}
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("identifier", req.Username))
		return nil, ErrUnauthorized
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrUnauthorized
	}

	// 4. Check if user is active
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, ErrUnauthorized
	}

	// 5. Create session
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return s.convertAuthResponse(user, session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return fmt.Errorf("%w: malformed token", ErrInvalidInput)
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("User logged out")
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(expiry),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *authService) convertAuthResponse(user *entity.User, session *entity.Session) *response.AuthResponse {
	resp := &response.AuthResponse{
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}

	if session != nil {
		resp.Token = session.Token.String()
		expiresAt := session.ExpiresAt
		resp.ExpiresAt = &expiresAt
	}

	return resp
}
