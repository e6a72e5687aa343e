package routes

import (
	"github.com/SkrCodyxx/CRM-RMM/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients     = "/clients"
	PathTechnicians = "/technicians"
)

func addClientRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, contractHandler *handlers.ContractHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:client_id", clientHandler.GetClient)
		clients.GET("/:client_id/contracts", contractHandler.ListContractsByClient)
	}

	technicians := rg.Group(PathTechnicians)
	{
		technicians.POST("", clientHandler.CreateTechnician)
		technicians.GET("", clientHandler.ListTechnicians)
	}
}
