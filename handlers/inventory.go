package handlers

import (
	"net/http"
	"strconv"

	"salonora/models"
	"salonora/services/inventory"
	"salonora/utils"

	"github.com/gin-gonic/gin"
)

// InventoryHandler exposes stock management endpoints.
type InventoryHandler struct {
	Service inventory.InventoryService
}

// ListItemsHandler handles GET /salons/:id/inventory?level=low.
func (h *InventoryHandler) ListItemsHandler(c *gin.Context) {
	items, err := h.Service.List(c.Param("id"), c.Query("level"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to list inventory", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

// SummaryHandler handles GET /salons/:id/inventory/summary.
func (h *InventoryHandler) SummaryHandler(c *gin.Context) {
	summary, err := h.Service.Summary(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to summarize inventory", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CreateItemHandler handles POST /salons/:id/inventory.
func (h *InventoryHandler) CreateItemHandler(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	item.SalonID = c.Param("id")

	created, err := h.Service.Create(&item)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create inventory item", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateItemHandler handles PUT /inventory/:id.
func (h *InventoryHandler) UpdateItemHandler(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	item.ID = c.Param("id")

	if err := h.Service.Update(&item); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update inventory item", err.Error())
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItemHandler handles DELETE /inventory/:id.
func (h *InventoryHandler) DeleteItemHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete inventory item", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

// AdjustItemHandler handles POST /inventory/:id/adjust?delta=-2.
func (h *InventoryHandler) AdjustItemHandler(c *gin.Context) {
	delta, err := strconv.Atoi(c.Query("delta"))
	if err != nil || delta == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "delta must be a non-zero integer")
		return
	}

	if err := h.Service.Adjust(c.Param("id"), delta); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to adjust quantity", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quantity adjusted"})
}
