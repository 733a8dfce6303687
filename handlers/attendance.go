package handlers

import (
	"net/http"

	"salonora/models"
	"salonora/services/staffops"
	"salonora/utils"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler exposes staff roster and clock-in/out endpoints.
type AttendanceHandler struct {
	Service staffops.AttendanceService
}

// ClockInHandler handles POST /staff/:id/clock-in.
func (h *AttendanceHandler) ClockInHandler(c *gin.Context) {
	record, err := h.Service.ClockIn(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "clock-in failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ClockOutHandler handles POST /staff/:id/clock-out.
func (h *AttendanceHandler) ClockOutHandler(c *gin.Context) {
	record, err := h.Service.ClockOut(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "clock-out failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

// TodayHandler handles GET /salons/:id/attendance.
func (h *AttendanceHandler) TodayHandler(c *gin.Context) {
	records, err := h.Service.Today(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list attendance", err.Error())
		return
	}
	c.JSON(http.StatusOK, records)
}

// ListStaffHandler handles GET /salons/:id/staff.
func (h *AttendanceHandler) ListStaffHandler(c *gin.Context) {
	staff, err := h.Service.ListStaff(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, staff)
}

// CreateStaffHandler handles POST /salons/:id/staff.
func (h *AttendanceHandler) CreateStaffHandler(c *gin.Context) {
	var st models.Staff
	if err := c.ShouldBindJSON(&st); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	st.SalonID = c.Param("id")

	created, err := h.Service.CreateStaff(&st)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create staff member", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateStaffHandler handles PUT /staff/:id.
func (h *AttendanceHandler) UpdateStaffHandler(c *gin.Context) {
	var st models.Staff
	if err := c.ShouldBindJSON(&st); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	st.ID = c.Param("id")

	if err := h.Service.UpdateStaff(&st); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update staff member", err.Error())
		return
	}
	c.JSON(http.StatusOK, st)
}

// DeleteStaffHandler handles DELETE /staff/:id.
func (h *AttendanceHandler) DeleteStaffHandler(c *gin.Context) {
	if err := h.Service.DeleteStaff(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete staff member", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}
