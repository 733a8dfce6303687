package handlers

import (
	userRepoPkg "salonora/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Booking      *BookingHandler
	Catalog      *CatalogHandler
	Coupon       *CouponHandler
	Loyalty      *LoyaltyHandler
	Inventory    *InventoryHandler
	Billing      *BillingHandler
	Attendance   *AttendanceHandler
	Notification *NotificationHandler
	User         *UserHandler
}
