package handlers

import (
	"net/http"
	"strconv"

	"salonora/services/notification"
	"salonora/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the in-app notification feed.
type NotificationHandler struct {
	Service notification.NotificationService
}

// ListHandler handles GET /notifications?limit=20 for the authenticated
// user.
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "sign in to view notifications")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	list, err := h.Service.ListForUser(userID, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, list)
}

// MarkReadHandler handles POST /notifications/:id/read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	if err := h.Service.MarkRead(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to mark notification read", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}
