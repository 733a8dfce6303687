package handlers

import (
	"net/http"
	"strconv"
	"time"

	"salonora/services/billing"
	"salonora/utils"

	"github.com/gin-gonic/gin"
)

// BillingHandler exposes invoices, payments, reports and the owner
// dashboard.
type BillingHandler struct {
	Service billing.BillingService
}

// ListInvoicesHandler handles GET /salons/:id/invoices?from=...&to=...
func (h *BillingHandler) ListInvoicesHandler(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		// Default to the current month.
		now := time.Now()
		from = now.Format("2006-01") + "-01"
		to = now.Format("2006-01-02")
	}

	invoices, err := h.Service.ListInvoices(c.Param("id"), from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list invoices", err.Error())
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoiceHandler handles GET /invoices/:id.
func (h *BillingHandler) GetInvoiceHandler(c *gin.Context) {
	inv, err := h.Service.GetInvoice(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "invoice not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, inv)
}

// InvoiceForGroupHandler handles GET /bookings/groups/:groupID/invoice.
func (h *BillingHandler) InvoiceForGroupHandler(c *gin.Context) {
	inv, err := h.Service.InvoiceForGroup(c.Param("groupID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch invoice", err.Error())
		return
	}
	if inv == nil {
		utils.JSONError(c, http.StatusNotFound, "invoice not found", "no invoice recorded for this booking group")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// CreatePaymentIntentHandler handles POST /invoices/:id/pay.
func (h *BillingHandler) CreatePaymentIntentHandler(c *gin.Context) {
	clientSecret, err := h.Service.CreatePaymentIntent(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to open payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"client_secret": clientSecret})
}

// MarkPaidHandler handles POST /invoices/:id/mark-paid.
func (h *BillingHandler) MarkPaidHandler(c *gin.Context) {
	var input struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.MarkPaid(c.Param("id"), input.Method); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to settle invoice", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice settled"})
}

// RevenueReportHandler handles GET /salons/:id/reports/revenue?year=2026.
func (h *BillingHandler) RevenueReportHandler(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "year must be an integer")
		return
	}

	report, err := h.Service.RevenueReport(c.Param("id"), year)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to build revenue report", err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}

// DashboardStatsHandler handles GET /salons/:id/dashboard.
func (h *BillingHandler) DashboardStatsHandler(c *gin.Context) {
	stats, err := h.Service.DashboardStats(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute dashboard stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
