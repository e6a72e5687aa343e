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

var errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)

// ContractHandler handles HTTP requests for service contracts.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

func (h *ContractHandler) CreateContract(c *gin.Context) {
	var payload request.CreateContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.CreateContract(c.Request.Context(), usecase.CreateContractInput{
		ClientID:            payload.ClientID,
		Type:                entities.ContractType(payload.Type),
		HourlyRate:          payload.HourlyRate,
		TotalHours:          payload.TotalHours,
		AlertThresholdHours: payload.AlertThresholdHours,
		MonthlyPrice:        payload.MonthlyPrice,
		MonthlyUnits:        payload.MonthlyUnits,
	})
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContract(contract))
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("contract_id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) ListContractsByClient(c *gin.Context) {
	contracts, err := h.usecase.ListByClientID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

func (h *ContractHandler) ListHoursEvents(c *gin.Context) {
	events, err := h.usecase.ListHoursEvents(c.Request.Context(), c.Param("contract_id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHoursEvents(events))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidContractClientID),
		errors.Is(err, usecase.ErrInvalidContractType), errors.Is(err, usecase.ErrInvalidContractTerms):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
