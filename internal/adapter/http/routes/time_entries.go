package routes

import (
	"github.com/SkrCodyxx/CRM-RMM/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathTimeEntries = "/time-entries"

func addTimeEntryRoutes(rg *gin.RouterGroup, timeEntryHandler *handlers.TimeEntryHandler) {
	entries := rg.Group(PathTimeEntries)
	{
		entries.POST("", timeEntryHandler.AddTimeEntry)
		entries.POST("/:entry_id/validate", timeEntryHandler.ValidateTimeEntry)
	}
}
