package salonRepo

import "salonora/models"

// SalonRepository defines methods for salon data access.
type SalonRepository interface {
	// GetByID retrieves a salon by its unique ID.
	GetByID(id string) (*models.Salon, error)
	// GetAll retrieves all active salons.
	GetAll() ([]models.Salon, error)
	// Create inserts a new salon record.
	Create(salon *models.Salon) error
	// Update modifies an existing salon record.
	Update(salon *models.Salon) error
	// Delete removes a salon record by its ID.
	Delete(id string) error
}
