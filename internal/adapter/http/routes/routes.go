package routes

import (
	"log"
	"os"

	_ "clinica_servicos/docs" // This will be auto-generated
	"clinica_servicos/internal/adapter/http/handlers"
	"clinica_servicos/internal/adapter/persistence/repository"
	"clinica_servicos/internal/infrastructure/catalog"
	"clinica_servicos/internal/infrastructure/money"
	"clinica_servicos/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

const defaultAuditUser = "current.user@empresa.com"

// Run will start the server
func Run() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(logger)

	port := getenvDefault("PORT", "8080")
	logger.Info("starting server", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("failed to startup the application", zap.Error(err))
	}
}

func getRoutes(logger *zap.Logger) {
	serviceRepo := repository.NewServiceMemoryRepository(logger)
	serviceRepo.Seed(repository.SampleServices())

	catalogs := catalog.NewStaticCatalog()
	formatter := money.NewBRLFormatter()
	auditUser := getenvDefault("SERVICE_AUDIT_USER", defaultAuditUser)

	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, logger)
	draftUseCase := usecase.NewDraftUseCase(serviceRepo, catalogs, logger, auditUser)

	serviceHandler := handlers.NewServiceHandler(serviceUseCase, formatter)
	draftHandler := handlers.NewDraftHandler(draftUseCase, formatter)
	catalogHandler := handlers.NewCatalogHandler(catalogs, formatter)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceRoutes(v1, serviceHandler, draftHandler, catalogHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
