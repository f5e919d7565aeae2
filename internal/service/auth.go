package service

import (
	"context"

	"movie-rental-backend/internal/domain"
	"movie-rental-backend/internal/repository"
	"movie-rental-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	tokenMgr security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokenMgr security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokenMgr: tokenMgr}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.NewValidationError("email and password are required")
	}

	// Both unknown email and wrong password collapse to the same rejection.
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if domain.KindOf(err) == domain.ErrKindNotFound {
			return "", domain.NewValidationError("invalid email or password")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.NewValidationError("invalid email or password")
	}

	return s.tokenMgr.GenerateToken(user.ID, user.IsAdmin)
}
