package userRepo

import "salonora/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by their unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by their email; nil when absent.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// UpdateFCMToken stores the user's current push token.
	UpdateFCMToken(id, token string) error
}
