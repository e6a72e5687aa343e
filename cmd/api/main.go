package main

import (
	_ "github.com/SkrCodyxx/CRM-RMM/docs"
	"github.com/SkrCodyxx/CRM-RMM/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           CRM-RMM Billing API
// @version         1.0
// @description     Contract consumption and billing derivation for client service contracts, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
