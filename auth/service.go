package auth

import (
	"context"
	"errors"
)

var (
	ErrPhoneTaken         = errors.New("phone already registered")
	ErrInvalidCredentials = errors.New("invalid phone or password")
)

type RegisterRequest struct {
	FirstName string
	LastName  string
	Phone     string
	Password  string
}

type LoginRequest struct {
	Phone    string
	Password string
}

// Principal identifies the authenticated customer account.
type Principal struct {
	UserID     uint
	CustomerID uint
	Role       string
	FirstName  string
	LastName   string
	Phone      string
	Token      string
}

// Service provides customer registration and phone + password login.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Principal, error)
	Login(ctx context.Context, req LoginRequest) (*Principal, error)
}
