package user

import (
	"context"
	"fmt"
	"regexp"
	"time"

	bookingRepo "salonora/database/repository/booking"
	userRepo "salonora/database/repository/user"
	"salonora/models"
	"salonora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthResponse contains the user's ID, token, and profile details.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	SalonID  string `json:"salon_id,omitempty"`
}

// UserService handles accounts, credentials and session tokens.
type UserService interface {
	Register(user models.User, password string) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeToken(userID string) error
	GetProfile(userID string) (*models.User, error)
	UpdateProfile(user *models.User) error
	SetFCMToken(userID, token string) error
	BookingHistory(userID string) ([]models.Booking, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
}

// verifyPasswordComplexity checks that the password contains at least one
// lowercase letter, one uppercase letter, one digit, and one symbol.
func verifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
		hasSymbol = regexp.MustCompile(`[\W_]`).MatchString(pw)
	)
	if !hasMinLen {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !hasUpper {
		return fmt.Errorf("password must include at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must include at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must include at least one number")
	}
	if !hasSymbol {
		return fmt.Errorf("password must include at least one symbol")
	}
	return nil
}

func validRole(role string) bool {
	switch role {
	case models.RoleCustomer, models.RoleStaff, models.RoleOwner:
		return true
	}
	return false
}

// Register creates a new account, issues a token and stores its hash.
func (s *DefaultUserService) Register(user models.User, password string) (*AuthResponse, error) {
	if user.Email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if user.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	if !validRole(user.Role) {
		return nil, fmt.Errorf("unknown role %q", user.Role)
	}

	if err := verifyPasswordComplexity(password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(user.Email)
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	user.PasswordHash = string(hashedPassword)

	user.ID = uuid.New().String()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.Repo.Create(&user); err != nil {
		utils.GetLogger().Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{
		ID:       user.ID,
		Token:    token,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
		SalonID:  user.SalonID,
	}, nil
}

// Authenticate verifies credentials and rotates the session token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user for authentication", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if user == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:       user.ID,
		Token:    token,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
		SalonID:  user.SalonID,
	}, nil
}

// issueToken signs a fresh JWT, persists its hash on the user record and
// clears the stale auth cache entry.
func (s *DefaultUserService) issueToken(user *models.User) (string, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, 24*time.Hour)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return "", err
	}

	user.TokenHash = utils.HashToken(token)
	user.UpdatedAt = time.Now()
	if err := s.Repo.Update(user); err != nil {
		utils.GetLogger().Error("Failed to update user with token hash", zap.Error(err))
		return "", err
	}

	cacheKey := utils.AuthCachePrefix + user.ID
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("Failed to clear auth cache", zap.Error(err))
	}
	return token, nil
}

// RevokeToken clears the token hash and the auth cache entry.
func (s *DefaultUserService) RevokeToken(userID string) error {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to retrieve user", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to logout, please try again")
	}

	user.TokenHash = ""
	user.UpdatedAt = time.Now()
	if err := s.Repo.Update(user); err != nil {
		utils.GetLogger().Error("Failed to revoke auth token", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to logout, please try again")
	}

	cacheKey := utils.AuthCachePrefix + userID
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("Failed to clear auth cache on logout", zap.Error(err))
	}
	return nil
}

func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

func (s *DefaultUserService) UpdateProfile(user *models.User) error {
	user.UpdatedAt = time.Now()
	return s.Repo.Update(user)
}

func (s *DefaultUserService) SetFCMToken(userID, token string) error {
	return s.Repo.UpdateFCMToken(userID, token)
}

func (s *DefaultUserService) BookingHistory(userID string) ([]models.Booking, error) {
	return s.Bookings.GetByUser(userID)
}
