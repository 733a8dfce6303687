package catalogRepo

import "salonora/models"

// CatalogRepository defines data access for salon services and retail products.
type CatalogRepository interface {
	// GetServiceByID retrieves a single service.
	GetServiceByID(id string) (*models.SalonService, error)
	// GetServicesBySalon lists active services for one salon.
	GetServicesBySalon(salonID string) ([]models.SalonService, error)
	// GetServicesByIDs fetches services by ID, preserving the given order.
	GetServicesByIDs(ids []string) ([]models.SalonService, error)
	// CreateService inserts a new service record.
	CreateService(svc *models.SalonService) error
	// UpdateService modifies an existing service record.
	UpdateService(svc *models.SalonService) error
	// DeleteService removes a service record.
	DeleteService(id string) error

	// GetProductsBySalon lists active products for one salon.
	GetProductsBySalon(salonID string) ([]models.Product, error)
	// CreateProduct inserts a new product record.
	CreateProduct(p *models.Product) error
	// UpdateProduct modifies an existing product record.
	UpdateProduct(p *models.Product) error
	// DeleteProduct removes a product record.
	DeleteProduct(id string) error
}
