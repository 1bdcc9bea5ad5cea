package service

import (
	"context"
	"errors"
	"strings"

	"github.com/beyondborder/backend/internal/middleware"
	"github.com/beyondborder/backend/internal/model"
	"github.com/beyondborder/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	// Login verifies credentials and returns a signed session token plus
	// the admin record. Wrong email and wrong password are both reported
	// as ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *model.Admin, error)
	GetAdmin(ctx context.Context, id uint64) (*model.Admin, error)
}

type authService struct {
	repo   repository.AdminRepository
	secret string
}

func NewAuthService(repo repository.AdminRepository, jwtSecret string) AuthService {
	return &authService{repo: repo, secret: jwtSecret}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *model.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}
	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := middleware.GenerateToken(s.secret, admin.ID, admin.Email)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

func (s *authService) GetAdmin(ctx context.Context, id uint64) (*model.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return admin, nil
}
