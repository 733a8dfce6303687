package billing

import (
	bookingRepo "salonora/database/repository/booking"
	catalogRepo "salonora/database/repository/catalog"
	inventoryRepo "salonora/database/repository/inventory"
	invoiceRepo "salonora/database/repository/invoice"
	staffRepo "salonora/database/repository/staff"
	"salonora/models"

	"github.com/go-redis/redis/v8"
)

// BillingService covers invoices, payments, revenue reports and the owner
// dashboard snapshot.
type BillingService interface {
	// RecordGroup derives an invoice from a persisted booking group. It is
	// idempotent: a group that already has an invoice is left untouched.
	RecordGroup(groupID string) error
	// GetInvoice retrieves one invoice by ID.
	GetInvoice(id string) (*models.Invoice, error)
	// InvoiceForGroup returns the invoice for a booking group, nil when
	// none has been recorded.
	InvoiceForGroup(groupID string) (*models.Invoice, error)
	// ListInvoices lists a salon's invoices created in [from, to].
	ListInvoices(salonID, from, to string) ([]models.Invoice, error)

	// CreatePaymentIntent opens a Stripe payment intent for an unpaid
	// invoice and returns its client secret.
	CreatePaymentIntent(invoiceID string) (string, error)
	// MarkPaid settles an invoice with the given payment method.
	MarkPaid(invoiceID, method string) error

	// RevenueReport buckets a salon's completed-booking revenue by month.
	RevenueReport(salonID string, year int) (*models.RevenueReport, error)

	// DashboardStats returns the cached dashboard snapshot, computing one
	// on a cache miss.
	DashboardStats(salonID string) (*models.DashboardStats, error)
	// RefreshStats recomputes and caches the dashboard snapshot.
	RefreshStats(salonID string) (*models.DashboardStats, error)
}

// DefaultBillingService implements BillingService.
type DefaultBillingService struct {
	Invoices  invoiceRepo.InvoiceRepository
	Bookings  bookingRepo.BookingRepository
	Catalog   catalogRepo.CatalogRepository
	Inventory inventoryRepo.InventoryRepository
	Staff     staffRepo.StaffRepository

	// Cache holds dashboard snapshots; stats fall back to direct
	// computation when it is nil.
	Cache *redis.Client
}
