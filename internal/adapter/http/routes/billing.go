package routes

import (
	"github.com/SkrCodyxx/CRM-RMM/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBilling  = "/billing"
	PathInvoices = "/invoices"
)

func addBillingRoutes(rg *gin.RouterGroup, billingHandler *handlers.BillingHandler, ticketHandler *handlers.TicketHandler) {
	billing := rg.Group(PathBilling)
	{
		billing.POST("/subscription", billingHandler.DeriveSubscriptionInvoice)
		billing.GET("/prebilling-queue", ticketHandler.PrebillingQueue)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", billingHandler.CreateInvoice)
		invoices.GET("", billingHandler.ListInvoices)
		invoices.GET("/:invoice_id", billingHandler.GetInvoice)
	}
}
