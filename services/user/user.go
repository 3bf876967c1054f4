package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "seminarhall/database/repository/user"
	"seminarhall/models"
	"seminarhall/utils"
)

const tokenLifetime = 24 * time.Hour

// UserService handles department and admin accounts.
type UserService interface {
	Register(email, password, role, department string) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	GetByID(id string) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates an account and returns it with a signed token.
func (svc *DefaultUserService) Register(email, password, role, department string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("email and password are required")
	}
	if role != models.RoleAdmin {
		role = models.RoleDepartment
	}

	existing, err := svc.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check for existing account: %w", err)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("an account with email %q already exists", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		Department:   department,
		CreatedAt:    time.Now(),
	}
	if err := svc.Repo.Create(u); err != nil {
		return nil, "", fmt.Errorf("failed to create account: %w", err)
	}

	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	utils.GetLogger().Info("account registered", zap.String("email", email), zap.String("role", role))
	return u, token, nil
}

// Login verifies credentials and returns the account with a fresh token.
func (svc *DefaultUserService) Login(email, password string) (*models.User, string, error) {
	u, err := svc.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up account: %w", err)
	}
	if u == nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return u, token, nil
}

func (svc *DefaultUserService) GetByID(id string) (*models.User, error) {
	return svc.Repo.GetByID(id)
}
