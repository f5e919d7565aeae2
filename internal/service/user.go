package service

import (
	"context"
	"strings"

	"movie-rental-backend/internal/domain"
	"movie-rental-backend/internal/repository"
	"movie-rental-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo repository.UserRepository
	tokenMgr security.TokenManager
}

func NewUserService(userRepo repository.UserRepository, tokenMgr security.TokenManager) UserService {
	return &userService{userRepo: userRepo, tokenMgr: tokenMgr}
}

func validateRegistration(name, email, password string) error {
	name = strings.TrimSpace(name)
	if len(name) < 3 || len(name) > 30 {
		return domain.NewValidationError("name must be between 3 and 30 characters")
	}
	if email == "" || !strings.Contains(email, "@") {
		return domain.NewValidationError("a valid email is required")
	}
	if len(password) < 6 || len(password) > 255 {
		return domain.NewValidationError("password must be between 6 and 255 characters")
	}
	return nil
}

func (s *userService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if err := validateRegistration(name, email, password); err != nil {
		return nil, "", err
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", domain.NewConflictError("user already registered")
	} else if domain.KindOf(err) != domain.ErrKindNotFound {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokenMgr.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}
