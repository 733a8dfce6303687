package handlers

import (
	"net/http"

	"salonora/models"
	"salonora/services/loyalty"
	"salonora/utils"

	"github.com/gin-gonic/gin"
)

// LoyaltyHandler exposes loyalty balance and program endpoints.
type LoyaltyHandler struct {
	Service loyalty.LoyaltyService
}

// BalanceHandler handles GET /salons/:id/loyalty/balance for the
// authenticated user.
func (h *LoyaltyHandler) BalanceHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "sign in to view loyalty balance")
		return
	}

	balance, err := h.Service.CombinedBalance(userID, c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read loyalty balance", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"salon_id": c.Param("id"), "balance": balance})
}

// GetProgramHandler handles GET /salons/:id/loyalty/program.
func (h *LoyaltyHandler) GetProgramHandler(c *gin.Context) {
	program, err := h.Service.Program(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read loyalty program", err.Error())
		return
	}
	c.JSON(http.StatusOK, program)
}

// SetProgramHandler handles PUT /salons/:id/loyalty/program.
func (h *LoyaltyHandler) SetProgramHandler(c *gin.Context) {
	var p models.LoyaltyProgram
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	p.SalonID = c.Param("id")

	if err := h.Service.SetProgram(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update loyalty program", err.Error())
		return
	}
	c.JSON(http.StatusOK, p)
}
