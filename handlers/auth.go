package handlers

import (
	"net/http"

	"salonora/models"
	"salonora/services/user"
	"salonora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account and session endpoints.
type UserHandler struct {
	Service user.UserService
}

// RegisterHandler handles POST /auth/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		FullName string `json:"full_name" binding:"required"`
		Phone    string `json:"phone"`
		Role     string `json:"role"`
		SalonID  string `json:"salon_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.Register(models.User{
		Email:    input.Email,
		FullName: input.FullName,
		Phone:    input.Phone,
		Role:     input.Role,
		SalonID:  input.SalonID,
	}, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /auth/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.Authenticate(input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /auth/logout.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "no active session")
		return
	}

	if err := h.Service.RevokeToken(userID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfileHandler handles GET /me.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")
	profile, err := h.Service.GetProfile(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to get profile", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "profile not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler handles PUT /me.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")
	current, err := h.Service.GetProfile(userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "profile not found", err.Error())
		return
	}

	var input struct {
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.FullName != "" {
		current.FullName = input.FullName
	}
	if input.Phone != "" {
		current.Phone = input.Phone
	}

	if err := h.Service.UpdateProfile(current); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, current)
}

// SetFCMTokenHandler handles PUT /me/fcm-token.
func (h *UserHandler) SetFCMTokenHandler(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	userID := c.GetString("userID")
	if err := h.Service.SetFCMToken(userID, input.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store push token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Push token updated"})
}

// BookingHistoryHandler handles GET /me/bookings.
func (h *UserHandler) BookingHistoryHandler(c *gin.Context) {
	userID := c.GetString("userID")
	bookings, err := h.Service.BookingHistory(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}
