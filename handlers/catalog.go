package handlers

import (
	"net/http"

	"salonora/models"
	"salonora/services/catalog"
	"salonora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes salon, service and product endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// ListSalonsHandler handles GET /salons.
func (h *CatalogHandler) ListSalonsHandler(c *gin.Context) {
	salons, err := h.Service.ListSalons()
	if err != nil {
		utils.GetLogger().Error("Failed to list salons", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list salons", err.Error())
		return
	}
	c.JSON(http.StatusOK, salons)
}

// GetSalonHandler handles GET /salons/:id.
func (h *CatalogHandler) GetSalonHandler(c *gin.Context) {
	salon, err := h.Service.GetSalon(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "salon not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, salon)
}

// ListServicesHandler handles GET /salons/:id/services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Service.ServicesBySalon(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListProductsHandler handles GET /salons/:id/products.
func (h *CatalogHandler) ListProductsHandler(c *gin.Context) {
	products, err := h.Service.ProductsBySalon(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list products", err.Error())
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateServiceHandler handles POST /salons/:id/services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var svc models.SalonService
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	svc.SalonID = c.Param("id")

	created, err := h.Service.CreateService(&svc)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateServiceHandler handles PUT /services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var svc models.SalonService
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	svc.ID = c.Param("id")

	if err := h.Service.UpdateService(&svc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Service.DeleteService(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// CreateProductHandler handles POST /salons/:id/products.
func (h *CatalogHandler) CreateProductHandler(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	p.SalonID = c.Param("id")

	created, err := h.Service.CreateProduct(&p)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create product", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProductHandler handles PUT /products/:id.
func (h *CatalogHandler) UpdateProductHandler(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	p.ID = c.Param("id")

	if err := h.Service.UpdateProduct(&p); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update product", err.Error())
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProductHandler handles DELETE /products/:id.
func (h *CatalogHandler) DeleteProductHandler(c *gin.Context) {
	if err := h.Service.DeleteProduct(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete product", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
