package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authpkg "github.com/mikios34/kpopshop-backend/auth"
	"github.com/mikios34/kpopshop-backend/entity"
)

const tokenTTL = 24 * time.Hour

type authService struct {
	repo   authpkg.Repository
	secret string
}

func NewAuthService(repo authpkg.Repository, secret string) authpkg.Service {
	return &authService{repo: repo, secret: secret}
}

func (s *authService) Register(ctx context.Context, req authpkg.RegisterRequest) (*authpkg.Principal, error) {
	taken, err := s.repo.PhoneExists(ctx, req.Phone)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, authpkg.ErrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         "customer",
	}
	customer, err := s.repo.CreateCustomerAccount(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.principalFor(user, customer)
}

func (s *authService) Login(ctx context.Context, req authpkg.LoginRequest) (*authpkg.Principal, error) {
	user, err := s.repo.GetUserByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authpkg.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, authpkg.ErrInvalidCredentials
	}

	customer, err := s.repo.GetCustomerByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.principalFor(user, customer)
}

func (s *authService) principalFor(user *entity.User, customer *entity.Customer) (*authpkg.Principal, error) {
	p := &authpkg.Principal{
		UserID:     user.ID,
		CustomerID: customer.ID,
		Role:       user.Role,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Phone:      user.Phone,
	}
	token, err := authpkg.SignJWT(s.secret, p, tokenTTL)
	if err != nil {
		return nil, err
	}
	p.Token = token
	return p, nil
}
