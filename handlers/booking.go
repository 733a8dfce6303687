package handlers

import (
	"net/http"

	"salonora/services/booking"
	"salonora/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking wizard endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// bookingErrorStatus maps service error codes to HTTP statuses.
func bookingErrorStatus(err error) int {
	be, ok := err.(*booking.BookingError)
	if !ok {
		return http.StatusInternalServerError
	}
	switch be.Code {
	case "validationError":
		return http.StatusBadRequest
	case "slotTaken":
		return http.StatusConflict
	case "draftNotFound":
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	utils.JSONError(c, bookingErrorStatus(err), "booking request failed", err.Error())
}

// StartDraftHandler handles POST /bookings/drafts.
func (h *BookingHandler) StartDraftHandler(c *gin.Context) {
	var input struct {
		SalonID     string `json:"salon_id" binding:"required"`
		BookingType string `json:"booking_type"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	userID := c.GetString("userID")
	draft, err := h.Service.StartDraft(c.Request.Context(), userID, input.SalonID, input.BookingType)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// GetDraftHandler handles GET /bookings/drafts/:id.
func (h *BookingHandler) GetDraftHandler(c *gin.Context) {
	draft, err := h.Service.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// CancelDraftHandler handles DELETE /bookings/drafts/:id.
func (h *BookingHandler) CancelDraftHandler(c *gin.Context) {
	if err := h.Service.CancelDraft(c.Request.Context(), c.Param("id")); err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft discarded"})
}

// ToggleServiceHandler handles PUT /bookings/drafts/:id/services.
func (h *BookingHandler) ToggleServiceHandler(c *gin.Context) {
	var input struct {
		ServiceID string `json:"service_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Service.ToggleService(c.Request.Context(), c.Param("id"), input.ServiceID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetBookingTypeHandler handles PUT /bookings/drafts/:id/type.
func (h *BookingHandler) SetBookingTypeHandler(c *gin.Context) {
	var input struct {
		BookingType string `json:"booking_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Service.SetBookingType(c.Request.Context(), c.Param("id"), input.BookingType)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ChooseStaffHandler handles PUT /bookings/drafts/:id/staff. A null staff
// ID means "any available specialist".
func (h *BookingHandler) ChooseStaffHandler(c *gin.Context) {
	var input struct {
		StaffID *string `json:"staff_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Service.ChooseStaff(c.Request.Context(), c.Param("id"), input.StaffID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ChooseSlotHandler handles PUT /bookings/drafts/:id/slot.
func (h *BookingHandler) ChooseSlotHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Service.ChooseSlot(c.Request.Context(), c.Param("id"), input.Date, input.Time)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// GuestDetailsHandler handles PUT /bookings/drafts/:id/guest.
func (h *BookingHandler) GuestDetailsHandler(c *gin.Context) {
	var input booking.GuestDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Service.SetGuestDetails(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// RedeemPointsHandler handles PUT /bookings/drafts/:id/redeem.
func (h *BookingHandler) RedeemPointsHandler(c *gin.Context) {
	var input struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Service.SetRedeemPoints(c.Request.Context(), c.Param("id"), input.Enabled)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ApplyCouponHandler handles POST /bookings/drafts/:id/coupon.
func (h *BookingHandler) ApplyCouponHandler(c *gin.Context) {
	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Service.ApplyCoupon(c.Request.Context(), c.Param("id"), input.Code)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// QuoteHandler handles GET /bookings/drafts/:id/quote.
func (h *BookingHandler) QuoteHandler(c *gin.Context) {
	quote, err := h.Service.Quote(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// DayScheduleHandler handles GET /salons/:id/schedule?date=YYYY-MM-DD.
func (h *BookingHandler) DayScheduleHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}

	slots, err := h.Service.DaySchedule(c.Param("id"), date)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// AvailableSpecialistsHandler handles GET /salons/:id/specialists.
func (h *BookingHandler) AvailableSpecialistsHandler(c *gin.Context) {
	candidates, err := h.Service.AvailableSpecialists(c.Param("id"), c.Query("date"), c.Query("time"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// SubmitHandler handles POST /bookings/drafts/:id/submit.
func (h *BookingHandler) SubmitHandler(c *gin.Context) {
	result, err := h.Service.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
