package handlers

import (
	"net/http"

	"salonora/models"
	"salonora/services/coupon"
	"salonora/utils"

	"github.com/gin-gonic/gin"
)

// CouponHandler exposes coupon management endpoints for salon owners.
type CouponHandler struct {
	Service coupon.CouponService
}

// ListCouponsHandler handles GET /salons/:id/coupons.
func (h *CouponHandler) ListCouponsHandler(c *gin.Context) {
	coupons, err := h.Service.GetBySalon(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list coupons", err.Error())
		return
	}
	c.JSON(http.StatusOK, coupons)
}

// CreateCouponHandler handles POST /salons/:id/coupons.
func (h *CouponHandler) CreateCouponHandler(c *gin.Context) {
	var cp models.Coupon
	if err := c.ShouldBindJSON(&cp); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	cp.SalonID = c.Param("id")

	created, err := h.Service.Create(&cp)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create coupon", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCouponHandler handles PUT /coupons/:id.
func (h *CouponHandler) UpdateCouponHandler(c *gin.Context) {
	var cp models.Coupon
	if err := c.ShouldBindJSON(&cp); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	cp.ID = c.Param("id")

	if err := h.Service.Update(&cp); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update coupon", err.Error())
		return
	}
	c.JSON(http.StatusOK, cp)
}

// DeleteCouponHandler handles DELETE /coupons/:id.
func (h *CouponHandler) DeleteCouponHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete coupon", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
}
