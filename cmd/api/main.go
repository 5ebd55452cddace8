package main

import (
	_ "clinica_servicos/docs"
	"clinica_servicos/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Service Catalog API
// @version         1.0
// @description     Clinic service records: draft-based creation and editing with process/material line items, cost roll-ups and listing statistics.
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
