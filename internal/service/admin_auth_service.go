package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/tehnoshop/storefront-api/internal/models"
	"github.com/tehnoshop/storefront-api/internal/repository"
	"github.com/tehnoshop/storefront-api/internal/utils"
)

// AdminAuthService verifies admin credentials server-side and issues JWTs.
type AdminAuthService struct {
	adminRepo     *repository.AdminUserRepository
	notifications *NotificationService
}

// NewAdminAuthService constructs an AdminAuthService. notifications may be
// nil, in which case logins are not recorded as notifications.
func NewAdminAuthService(adminRepo *repository.AdminUserRepository, notifications *NotificationService) *AdminAuthService {
	return &AdminAuthService{adminRepo: adminRepo, notifications: notifications}
}

// Login checks the password against the stored bcrypt hash and returns a
// signed token. A successful login writes an info notification; that write is
// best-effort and never fails the login.
func (s *AdminAuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Warn().Err(err).Str("email", email).Msg("login lookup failed")
		return "", utils.ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Warn().Str("email", email).Msg("login attempt on inactive account")
		return "", utils.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("password verification failed")
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", err
	}

	log.Info().Str("email", email).Msg("admin login")
	if s.notifications != nil {
		_, err := s.notifications.Create(ctx, &models.Notification{
			Title:   "Admin login",
			Message: fmt.Sprintf("%s signed in to the admin panel", user.Email),
			Type:    models.NotificationInfo,
		})
		if err != nil {
			log.Warn().Err(err).Msg("login notification write failed")
		}
	}

	return token, nil
}

// CreateAdmin registers a new administrator with a bcrypt-hashed password.
func (s *AdminAuthService) CreateAdmin(ctx context.Context, email, password, name string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.AdminUser{
		Email:        email,
		PasswordHash: string(hashed),
		Name:         name,
		IsActive:     true,
	}
	return s.adminRepo.Create(ctx, user)
}
