package billing

import (
	"fmt"
	"time"

	"salonora/models"
	"salonora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// holdLineName labels the invoice line of a "decide later" reservation hold.
const holdLineName = "Reservation hold"

func (s *DefaultBillingService) RecordGroup(groupID string) error {
	existing, err := s.Invoices.GetByBookingGroup(groupID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	rows, err := s.Bookings.GetByGroup(groupID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no bookings found for group %s", groupID)
	}

	inv := &models.Invoice{
		ID:           uuid.New().String(),
		SalonID:      rows[0].SalonID,
		BookingGroup: groupID,
		CustomerName: rows[0].GuestName,
		Status:       models.InvoiceStatusUnpaid,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	for _, b := range rows {
		name := holdLineName
		if b.ServiceID != nil {
			svc, err := s.Catalog.GetServiceByID(*b.ServiceID)
			if err != nil {
				utils.GetLogger().Warn("invoice line missing service record",
					zap.String("serviceID", *b.ServiceID), zap.Error(err))
				name = "Service"
			} else {
				name = svc.Name
			}
		}
		item := models.InvoiceItem{
			BookingID:   b.ID,
			ServiceName: name,
			UnitPrice:   b.PricePaid + b.DiscountAmount,
			Discount:    b.DiscountAmount,
			LineTotal:   b.PricePaid,
		}
		inv.Items = append(inv.Items, item)
		inv.Subtotal += item.UnitPrice
		inv.Discount += item.Discount
		inv.Total += item.LineTotal
	}

	if err := s.Invoices.Create(inv); err != nil {
		return fmt.Errorf("failed to record invoice for group %s: %w", groupID, err)
	}
	return nil
}

func (s *DefaultBillingService) GetInvoice(id string) (*models.Invoice, error) {
	return s.Invoices.GetByID(id)
}

func (s *DefaultBillingService) InvoiceForGroup(groupID string) (*models.Invoice, error) {
	return s.Invoices.GetByBookingGroup(groupID)
}

func (s *DefaultBillingService) ListInvoices(salonID, from, to string) ([]models.Invoice, error) {
	return s.Invoices.GetBySalonBetween(salonID, from, to)
}
