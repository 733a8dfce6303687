package billing

import (
	"fmt"
	"math"

	"salonora/models"
	"salonora/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

func (s *DefaultBillingService) CreatePaymentIntent(invoiceID string) (string, error) {
	inv, err := s.Invoices.GetByID(invoiceID)
	if err != nil {
		return "", err
	}
	if inv.Status == models.InvoiceStatusPaid {
		return "", fmt.Errorf("invoice %s is already paid", invoiceID)
	}
	if inv.Total <= 0 {
		return "", fmt.Errorf("invoice %s has nothing to charge", invoiceID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(inv.Total * 100))),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("invoice_id", inv.ID)
	params.AddMetadata("booking_group", inv.BookingGroup)

	pi, err := paymentintent.New(params)
	if err != nil {
		utils.GetLogger().Error("failed to create payment intent",
			zap.String("invoiceID", invoiceID), zap.Error(err))
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	inv.PaymentIntent = pi.ID
	if err := s.Invoices.Update(inv); err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}

func (s *DefaultBillingService) MarkPaid(invoiceID, method string) error {
	inv, err := s.Invoices.GetByID(invoiceID)
	if err != nil {
		return err
	}
	if inv.Status == models.InvoiceStatusPaid {
		return nil
	}
	inv.Status = models.InvoiceStatusPaid
	inv.PaymentMethod = method
	return s.Invoices.Update(inv)
}
