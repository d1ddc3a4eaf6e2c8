package routes

import (
	"log"
	"os"
	"strconv"

	_ "research_hub/docs" // This will be auto-generated
	"research_hub/internal/adapter/http/handlers"
	repository2 "research_hub/internal/adapter/persistence/repository"
	"research_hub/internal/infrastructure/database"
	"research_hub/internal/infrastructure/email"
	"research_hub/internal/infrastructure/payments"
	"research_hub/internal/infrastructure/scheduler"
	"research_hub/internal/usecase"
	"research_hub/internal/usecase/interfaces"

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

	submissionRepo := repository2.NewSubmissionDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	attemptRepo := repository2.NewPaymentAttemptDynamoRepository(ddb)
	settlementRepo := repository2.NewSettlementDynamoRepository(ddb)

	var notifier interfaces.INotifier
	smtpNotifier, err := email.NewSMTPNotifierFromEnv()
	if err != nil {
		log.Printf("Email notifier not configured: %v", err)
	} else {
		notifier = smtpNotifier
	}

	var cardGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		cardGateway = mpGateway
	}
	gateway := payments.NewGatewayRouter(cardGateway)

	ledgerUseCase := usecase.NewLedgerUseCase(invoiceRepo, attemptRepo, submissionRepo, settlementRepo, gateway, notifier, usecase.FeeConfigFromEnv())
	submissionUseCase := usecase.NewSubmissionUseCase(submissionRepo, ledgerUseCase, notifier)
	dashboardUseCase := usecase.NewDashboardUseCase(submissionRepo, invoiceRepo)

	submissionHandler := handlers.NewSubmissionHandler(submissionUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(ledgerUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	expirer := scheduler.NewInvoiceExpirer(ledgerUseCase)
	if err := expirer.Start(); err != nil {
		log.Fatalf("Failed to start invoice expirer: %v", err)
	}

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPortalRoutes(v1, submissionHandler, invoiceHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
