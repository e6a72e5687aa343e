package routes

import (
	"github.com/SkrCodyxx/CRM-RMM/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathTickets = "/tickets"

func addTicketRoutes(rg *gin.RouterGroup, ticketHandler *handlers.TicketHandler, billingHandler *handlers.BillingHandler) {
	tickets := rg.Group(PathTickets)
	{
		tickets.POST("", ticketHandler.CreateTicket)
		tickets.GET("", ticketHandler.ListTickets)
		tickets.GET("/:ticket_id", ticketHandler.GetTicket)
		tickets.PATCH("/:ticket_id", ticketHandler.UpdateTicketStatus)
		tickets.POST("/:ticket_id/close", ticketHandler.CloseTicket)
		tickets.POST("/:ticket_id/entries/:entry_id/invoice", billingHandler.DeriveInvoiceFromEntry)
	}
}
