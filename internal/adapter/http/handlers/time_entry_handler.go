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

var errInvalidTimeEntryPayload = pkg.NewDomainErrorSimple("INVALID_TIME_ENTRY_INPUT", "Invalid time entry payload", http.StatusBadRequest)

// TimeEntryHandler handles HTTP requests for technician work records and
// their validation, the operation that drives contract consumption.

type TimeEntryHandler struct {
	usecase usecase.ITimeEntryUseCase
}

func NewTimeEntryHandler(uc usecase.ITimeEntryUseCase) *TimeEntryHandler {
	return &TimeEntryHandler{usecase: uc}
}

func (h *TimeEntryHandler) AddTimeEntry(c *gin.Context) {
	var payload request.AddTimeEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTimeEntryPayload.HTTPStatus, errInvalidTimeEntryPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.AddTimeEntry(c.Request.Context(), usecase.AddTimeEntryInput{
		TicketID:     payload.TicketID,
		TechnicianID: payload.TechnicianID,
		Minutes:      payload.Minutes,
		Billable:     payload.ResolveBillable(),
	})
	if err != nil {
		appErr := mapTimeEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTimeEntry(entry))
}

// ValidateTimeEntry runs the consumption engine for one entry. Validation
// is idempotent: re-validating returns 200 with the unchanged entry.
func (h *TimeEntryHandler) ValidateTimeEntry(c *gin.Context) {
	entryID := c.Param("entry_id")
	log.Printf("[consumption][handler] validate start entry_id=%s", entryID)

	entry, err := h.usecase.ValidateTimeEntry(c.Request.Context(), entryID)
	if err != nil {
		log.Printf("[consumption][handler] validate failed entry_id=%s err=%v", entryID, err)
		appErr := mapTimeEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTimeEntry(entry))
}

func mapTimeEntryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTimeEntryID), errors.Is(err, usecase.ErrInvalidTicketRef),
		errors.Is(err, usecase.ErrInvalidMinutes):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTimeEntryNotFound):
		return pkg.NewDomainErrorSimple("TIME_ENTRY_NOT_FOUND", "Time entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidContractState):
		return pkg.NewDomainErrorSimple("INVALID_CONTRACT_STATE", "Hours bank contract has no balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrConsumptionConflict):
		return pkg.NewDomainErrorSimple("CONSUMPTION_CONFLICT", "Hours bank consumption conflict", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
