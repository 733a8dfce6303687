package catalog

import (
	catalogRepo "salonora/database/repository/catalog"
	salonRepo "salonora/database/repository/salon"
	"salonora/models"

	"github.com/google/uuid"
)

// CatalogService exposes the browsable salon/service/product catalog and
// the owner-side CRUD over it.
type CatalogService interface {
	ListSalons() ([]models.Salon, error)
	GetSalon(id string) (*models.Salon, error)
	ServicesBySalon(salonID string) ([]models.SalonService, error)
	ProductsBySalon(salonID string) ([]models.Product, error)

	CreateService(svc *models.SalonService) (*models.SalonService, error)
	UpdateService(svc *models.SalonService) error
	DeleteService(id string) error
	CreateProduct(p *models.Product) (*models.Product, error)
	UpdateProduct(p *models.Product) error
	DeleteProduct(id string) error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Salons  salonRepo.SalonRepository
	Catalog catalogRepo.CatalogRepository
}

func (s *DefaultCatalogService) ListSalons() ([]models.Salon, error) {
	return s.Salons.GetAll()
}

func (s *DefaultCatalogService) GetSalon(id string) (*models.Salon, error) {
	return s.Salons.GetByID(id)
}

func (s *DefaultCatalogService) ServicesBySalon(salonID string) ([]models.SalonService, error) {
	return s.Catalog.GetServicesBySalon(salonID)
}

func (s *DefaultCatalogService) ProductsBySalon(salonID string) ([]models.Product, error) {
	return s.Catalog.GetProductsBySalon(salonID)
}

func (s *DefaultCatalogService) CreateService(svc *models.SalonService) (*models.SalonService, error) {
	svc.ID = uuid.New().String()
	svc.Active = true
	if err := s.Catalog.CreateService(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) UpdateService(svc *models.SalonService) error {
	return s.Catalog.UpdateService(svc)
}

func (s *DefaultCatalogService) DeleteService(id string) error {
	return s.Catalog.DeleteService(id)
}

func (s *DefaultCatalogService) CreateProduct(p *models.Product) (*models.Product, error) {
	p.ID = uuid.New().String()
	p.Active = true
	if err := s.Catalog.CreateProduct(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *DefaultCatalogService) UpdateProduct(p *models.Product) error {
	return s.Catalog.UpdateProduct(p)
}

func (s *DefaultCatalogService) DeleteProduct(id string) error {
	return s.Catalog.DeleteProduct(id)
}
