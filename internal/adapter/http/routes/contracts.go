package routes

import (
	"github.com/SkrCodyxx/CRM-RMM/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathContracts = "/contracts"

func addContractRoutes(rg *gin.RouterGroup, contractHandler *handlers.ContractHandler) {
	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.CreateContract)
		contracts.GET("/:contract_id", contractHandler.GetContract)
		contracts.GET("/:contract_id/hours-events", contractHandler.ListHoursEvents)
	}
}
