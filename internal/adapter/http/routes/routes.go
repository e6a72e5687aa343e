package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/SkrCodyxx/CRM-RMM/docs" // This will be auto-generated
	"github.com/SkrCodyxx/CRM-RMM/internal/adapter/http/handlers"
	repository2 "github.com/SkrCodyxx/CRM-RMM/internal/adapter/persistence/repository"
	"github.com/SkrCodyxx/CRM-RMM/internal/infrastructure/database"
	"github.com/SkrCodyxx/CRM-RMM/internal/infrastructure/notifications"
	"github.com/SkrCodyxx/CRM-RMM/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	clientRepo := repository2.NewClientDynamoRepository(ddb)
	technicianRepo := repository2.NewTechnicianDynamoRepository(ddb)
	contractRepo := repository2.NewContractDynamoRepository(ddb)
	ticketRepo := repository2.NewTicketDynamoRepository(ddb)
	entryRepo := repository2.NewTimeEntryDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	hoursRepo := repository2.NewHoursEventDynamoRepository(ddb)
	prebillingRepo := repository2.NewPrebillingQueueDynamoRepository(ddb)
	machineRepo := repository2.NewMachineDynamoRepository(ddb)
	alertRepo := repository2.NewAlertDynamoRepository(ddb)
	metricRepo := repository2.NewMetricDynamoRepository(ddb)

	resolver := usecase.NewFirstMatchResolver(contractRepo)
	notifier := notifications.NewLogNotifier()

	fallbackRate := defaultHourlyRateFromEnv()

	clientUseCase := usecase.NewClientUseCase(clientRepo, technicianRepo)
	contractUseCase := usecase.NewContractUseCase(contractRepo, clientRepo, hoursRepo)
	billingUseCase := usecase.NewBillingUseCase(invoiceRepo, contractRepo, ticketRepo, entryRepo, clientRepo, resolver, fallbackRate)
	timeEntryUseCase := usecase.NewTimeEntryUseCase(
		entryRepo, ticketRepo, contractRepo, hoursRepo,
		resolver, billingUseCase, notifier, fallbackRate)
	ticketUseCase := usecase.NewTicketUseCase(ticketRepo, clientRepo, prebillingRepo, resolver)
	machineUseCase := usecase.NewMachineUseCase(machineRepo, metricRepo, alertRepo, ticketUseCase, clientRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(clientRepo, machineRepo, ticketRepo, invoiceRepo, alertRepo)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)
	ticketHandler := handlers.NewTicketHandler(ticketUseCase)
	timeEntryHandler := handlers.NewTimeEntryHandler(timeEntryUseCase)
	billingHandler := handlers.NewBillingHandler(billingUseCase)
	machineHandler := handlers.NewMachineHandler(machineUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClientRoutes(v1, clientHandler, contractHandler)
	addContractRoutes(v1, contractHandler)
	addTicketRoutes(v1, ticketHandler, billingHandler)
	addTimeEntryRoutes(v1, timeEntryHandler)
	addBillingRoutes(v1, billingHandler, ticketHandler)
	addMachineRoutes(v1, machineHandler)
	addDashboardRoutes(v1, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// defaultHourlyRateFromEnv reads DEFAULT_HOURLY_RATE; zero means "use the
// built-in default".
func defaultHourlyRateFromEnv() float64 {
	v := os.Getenv("DEFAULT_HOURLY_RATE")
	if v == "" {
		return 0
	}
	rate, err := strconv.ParseFloat(v, 64)
	if err != nil || rate <= 0 {
		log.Printf("[config][routes] ignoring invalid DEFAULT_HOURLY_RATE=%q", v)
		return 0
	}
	return rate
}
