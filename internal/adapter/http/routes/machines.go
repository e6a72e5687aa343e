package routes

import (
	"github.com/SkrCodyxx/CRM-RMM/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathMachines = "/machines"

func addMachineRoutes(rg *gin.RouterGroup, machineHandler *handlers.MachineHandler) {
	machines := rg.Group(PathMachines)
	{
		machines.POST("", machineHandler.CreateMachine)
		machines.GET("", machineHandler.ListMachines)
		machines.POST("/:machine_id/heartbeat", machineHandler.Heartbeat)
		machines.POST("/:machine_id/metrics", machineHandler.PushMetrics)
		machines.GET("/:machine_id/metrics", machineHandler.ListMetrics)
		machines.POST("/:machine_id/alerts", machineHandler.IngestAlert)
	}
}
