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

var (
	errInvalidMachinePayload = pkg.NewDomainErrorSimple("INVALID_MACHINE_INPUT", "Invalid machine payload", http.StatusBadRequest)
	errInvalidAlertPayload   = pkg.NewDomainErrorSimple("INVALID_ALERT_INPUT", "Invalid alert payload", http.StatusBadRequest)
)

// MachineHandler handles HTTP requests from the monitoring side: machine
// registry, agent heartbeats, metric pushes and alert ingestion.

type MachineHandler struct {
	usecase usecase.IMachineUseCase
}

func NewMachineHandler(uc usecase.IMachineUseCase) *MachineHandler {
	return &MachineHandler{usecase: uc}
}

func (h *MachineHandler) CreateMachine(c *gin.Context) {
	var payload request.CreateMachineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMachinePayload.HTTPStatus, errInvalidMachinePayload.ToHTTPError())
		return
	}

	machine, err := h.usecase.CreateMachine(c.Request.Context(), usecase.CreateMachineInput{
		ClientID:   payload.ClientID,
		Hostname:   payload.Hostname,
		OSName:     payload.OSName,
		CPUModel:   payload.CPUModel,
		RAMTotalGB: payload.RAMTotalGB,
	})
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMachine(machine))
}

func (h *MachineHandler) ListMachines(c *gin.Context) {
	machines, err := h.usecase.ListMachines(c.Request.Context())
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMachines(machines))
}

func (h *MachineHandler) Heartbeat(c *gin.Context) {
	var payload request.HeartbeatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMachinePayload.HTTPStatus, errInvalidMachinePayload.ToHTTPError())
		return
	}

	machine, err := h.usecase.Heartbeat(c.Request.Context(), c.Param("machine_id"), payload.AgentVersion)
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMachine(machine))
}

func (h *MachineHandler) PushMetrics(c *gin.Context) {
	var payload request.PushMetricsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMachinePayload.HTTPStatus, errInvalidMachinePayload.ToHTTPError())
		return
	}

	sample, err := h.usecase.PushMetrics(c.Request.Context(), c.Param("machine_id"),
		payload.CPUPercent, payload.RAMPercent, payload.DiskPercent)
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMetricSample(sample))
}

func (h *MachineHandler) ListMetrics(c *gin.Context) {
	samples, err := h.usecase.ListMetrics(c.Request.Context(), c.Param("machine_id"))
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMetricSamples(samples))
}

func (h *MachineHandler) IngestAlert(c *gin.Context) {
	var payload request.IngestAlertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAlertPayload.HTTPStatus, errInvalidAlertPayload.ToHTTPError())
		return
	}

	alert, err := h.usecase.IngestAlert(c.Request.Context(), usecase.IngestAlertInput{
		MachineID:        c.Param("machine_id"),
		Severity:         entities.AlertSeverity(payload.Severity),
		Title:            payload.Title,
		Details:          payload.Details,
		AutoCreateTicket: payload.AutoCreateTicket,
	})
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAlert(alert))
}

func mapMachineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMachineID), errors.Is(err, usecase.ErrInvalidMachineInput),
		errors.Is(err, usecase.ErrInvalidAlertInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMachineNotFound):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_FOUND", "Machine not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
