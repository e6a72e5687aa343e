package handlers

import (
	"net/http"

	"github.com/SkrCodyxx/CRM-RMM/internal/usecase"
	"github.com/SkrCodyxx/CRM-RMM/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the operational summary counts.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Counts(c *gin.Context) {
	counts, err := h.usecase.Counts(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, counts)
}
