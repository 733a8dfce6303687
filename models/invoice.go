package models

import "time"

// Invoice statuses.
const (
	InvoiceStatusUnpaid = "unpaid"
	InvoiceStatusPaid   = "paid"
)

// Invoice represents a billing record derived from a booking group.
type Invoice struct {
	ID            string        `bson:"id" json:"id"`
	SalonID       string        `bson:"salon_id" json:"salon_id"`
	BookingGroup  string        `bson:"booking_group" json:"booking_group"`
	CustomerName  string        `bson:"customer_name" json:"customer_name"`
	Items         []InvoiceItem `bson:"items" json:"items"`
	Subtotal      float64       `bson:"subtotal" json:"subtotal"`
	Discount      float64       `bson:"discount" json:"discount"`
	Total         float64       `bson:"total" json:"total"`
	Status        string        `bson:"status" json:"status"`
	PaymentMethod string        `bson:"payment_method,omitempty" json:"payment_method,omitempty"`
	PaymentIntent string        `bson:"payment_intent,omitempty" json:"payment_intent,omitempty"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`
}

// InvoiceItem is one line of an invoice, mirroring one booking row.
type InvoiceItem struct {
	BookingID   string  `bson:"booking_id" json:"booking_id"`
	ServiceName string  `bson:"service_name" json:"service_name"`
	UnitPrice   float64 `bson:"unit_price" json:"unit_price"`
	Discount    float64 `bson:"discount" json:"discount"`
	LineTotal   float64 `bson:"line_total" json:"line_total"`
}
