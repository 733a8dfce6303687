package invoiceRepo

import "salonora/models"

// InvoiceRepository defines methods for invoice data access.
type InvoiceRepository interface {
	// GetByID retrieves an invoice by its unique ID.
	GetByID(id string) (*models.Invoice, error)
	// GetByBookingGroup retrieves the invoice for a booking group, nil when
	// none exists yet.
	GetByBookingGroup(groupID string) (*models.Invoice, error)
	// GetBySalonBetween lists invoices for a salon created in [from, to].
	GetBySalonBetween(salonID string, from, to string) ([]models.Invoice, error)
	// Create inserts a new invoice record.
	Create(inv *models.Invoice) error
	// Update modifies an existing invoice record.
	Update(inv *models.Invoice) error
}
