package handlers

import (
	"errors"
	"net/http"

	request "github.com/SkrCodyxx/CRM-RMM/internal/adapter/http/dto/request"
	response "github.com/SkrCodyxx/CRM-RMM/internal/adapter/http/dto/response"
	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
	"github.com/SkrCodyxx/CRM-RMM/internal/usecase"
	"github.com/SkrCodyxx/CRM-RMM/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTicketPayload = pkg.NewDomainErrorSimple("INVALID_TICKET_INPUT", "Invalid ticket payload", http.StatusBadRequest)

// TicketHandler handles HTTP requests for the ticket lifecycle, including
// the close transition that feeds the pre-billing queue.

type TicketHandler struct {
	usecase usecase.ITicketUseCase
}

func NewTicketHandler(uc usecase.ITicketUseCase) *TicketHandler {
	return &TicketHandler{usecase: uc}
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var payload request.CreateTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.CreateTicket(c.Request.Context(), usecase.CreateTicketInput{
		ClientID:     payload.ClientID,
		ContractID:   payload.ContractID,
		MachineID:    payload.MachineID,
		TechnicianID: payload.TechnicianID,
		Title:        payload.Title,
		Description:  payload.Description,
		Priority:     entities.TicketPriority(payload.Priority),
	})
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTicket(ticket))
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticket, err := h.usecase.GetByID(c.Request.Context(), c.Param("ticket_id"))
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTicket(ticket))
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	tickets, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTickets(tickets))
}

func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	var payload request.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("ticket_id"), entities.TicketStatus(payload.Status))
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTicket(ticket))
}

func (h *TicketHandler) CloseTicket(c *gin.Context) {
	ticket, err := h.usecase.CloseTicket(c.Request.Context(), c.Param("ticket_id"))
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTicket(ticket))
}

func (h *TicketHandler) PrebillingQueue(c *gin.Context) {
	ticketIDs, err := h.usecase.PrebillingQueue(c.Request.Context())
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PrebillingQueueResponse{TicketIDs: ticketIDs})
}

func mapTicketError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTicketID), errors.Is(err, usecase.ErrInvalidTicketInput),
		errors.Is(err, usecase.ErrInvalidTicketStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTicketAlreadyClosed):
		return pkg.NewDomainErrorSimple("TICKET_CLOSED", "Ticket is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
