package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/SkrCodyxx/CRM-RMM/internal/adapter/http/dto/request"
	response "github.com/SkrCodyxx/CRM-RMM/internal/adapter/http/dto/response"
	"github.com/SkrCodyxx/CRM-RMM/internal/usecase"
	"github.com/SkrCodyxx/CRM-RMM/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBillingPayload = pkg.NewDomainErrorSimple("INVALID_BILLING_INPUT", "Invalid billing payload", http.StatusBadRequest)

// BillingHandler handles HTTP requests for invoice derivation and the
// append-only invoice log.

type BillingHandler struct {
	usecase usecase.IBillingUseCase
}

func NewBillingHandler(uc usecase.IBillingUseCase) *BillingHandler {
	return &BillingHandler{usecase: uc}
}

// DeriveInvoiceFromEntry derives the per-entry invoice for a validated
// time-and-materials entry. Hours-bank covered or non-billable work yields
// 204: nothing to invoice, not an error.
func (h *BillingHandler) DeriveInvoiceFromEntry(c *gin.Context) {
	ticketID := c.Param("ticket_id")
	entryID := c.Param("entry_id")
	log.Printf("[billing][handler] derive-from-entry start ticket_id=%s entry_id=%s", ticketID, entryID)

	inv, err := h.usecase.DeriveInvoiceFromEntry(c.Request.Context(), ticketID, entryID)
	if err != nil {
		log.Printf("[billing][handler] derive-from-entry failed ticket_id=%s entry_id=%s err=%v", ticketID, entryID, err)
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if inv == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(*inv))
}

func (h *BillingHandler) DeriveSubscriptionInvoice(c *gin.Context) {
	var payload request.SubscriptionInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillingPayload.HTTPStatus, errInvalidBillingPayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.DeriveSubscriptionInvoice(c.Request.Context(), payload.ContractID)
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

func (h *BillingHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillingPayload.HTTPStatus, errInvalidBillingPayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.CreateInvoice(c.Request.Context(), payload.ClientID, payload.Amount, payload.Description)
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

func (h *BillingHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func (h *BillingHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func mapBillingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidInvoiceAmount),
		errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidTicketID),
		errors.Is(err, usecase.ErrInvalidTimeEntryID), errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrContractNotSubscription), errors.Is(err, usecase.ErrInvalidSubscriptionSum),
		errors.Is(err, usecase.ErrEntryNotOnTicket), errors.Is(err, usecase.ErrEntryNotValidated):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTimeEntryNotFound):
		return pkg.NewDomainErrorSimple("TIME_ENTRY_NOT_FOUND", "Time entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
