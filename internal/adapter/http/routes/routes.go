package routes

import (
	"log"
	"os"
	"strconv"

	_ "clearlot/docs" // swag-generated
	"clearlot/internal/adapter/http/handlers"
	"clearlot/internal/adapter/persistence/repository"
	"clearlot/internal/infrastructure/database"
	"clearlot/internal/infrastructure/payments"
	"clearlot/internal/usecase"
	"clearlot/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
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

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	jobRepo := repository.NewJobDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentRecordDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	workflowUseCase := usecase.NewJobWorkflowUseCase(jobRepo)
	settlementUseCase := usecase.NewSettlementUseCase(jobRepo, paymentRepo, paymentGateway)

	jobHandler := handlers.NewJobWorkflowHandler(workflowUseCase)
	settlementHandler := handlers.NewSettlementHandler(settlementUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobRoutes(v1, jobHandler, settlementHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
