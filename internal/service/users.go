package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("no active account found with the given credentials")

// UserService reads accounts for authentication.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService.
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// Authenticate returns the active user matching the credentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*db.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var user db.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive || !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// Get fetches a user by id.
func (s *UserService) Get(ctx context.Context, id uint) (*db.User, error) {
	var user db.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
