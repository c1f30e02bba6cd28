package routes

import (
	_ "course_enrollment/docs" // This will be auto-generated
	request "course_enrollment/internal/adapter/http/dto/request"
	"course_enrollment/internal/adapter/http/handlers"
	"course_enrollment/internal/adapter/http/middleware"
	"course_enrollment/internal/adapter/persistence/memory"
	repository2 "course_enrollment/internal/adapter/persistence/repository"
	"course_enrollment/internal/infrastructure/database"
	"course_enrollment/internal/infrastructure/payments"
	"course_enrollment/internal/usecase"
	"course_enrollment/internal/usecase/interfaces"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()
	if err := request.RegisterValidations(); err != nil {
		log.Fatalf("Failed to register request validations: %v", err)
	}

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + getenvDefault("PORT", defaultPort))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		log.Fatalf("JWT_SECRET is required")
	}

	ddb := database.ConnectDynamoDB()

	users := repository2.NewUserDynamoRepository(ddb)
	courses := repository2.NewCourseDynamoRepository(ddb)
	enrollmentRepo := newEnrollmentRepository(ddb)
	provider := payments.NewSimulatedGateway(os.Getenv("PAYMENT_ARTIFACT_BASE_URL"))

	auth := middleware.AuthJWT(middleware.AuthJWTOpts{Secret: secret, Users: users})
	registerRoutes(router, buildHandlers(enrollmentRepo, users, courses, provider), auth)
}

func buildHandlers(
	repo interfaces.IEnrollmentRepository,
	users interfaces.IUserDirectory,
	courses interfaces.ICourseCatalog,
	provider interfaces.IPaymentProvider,
) enrollmentHandlers {
	enrollmentUseCase := usecase.NewEnrollmentUseCase(repo, users, courses)
	paymentUseCase := usecase.NewPaymentUseCase(enrollmentUseCase, provider)
	webhookUseCase := usecase.NewWebhookUseCase(enrollmentUseCase)
	batchUseCase := usecase.NewAdminBatchUseCase(enrollmentUseCase)

	return enrollmentHandlers{
		enrollment: handlers.NewEnrollmentHandler(enrollmentUseCase),
		payment:    handlers.NewPaymentHandler(paymentUseCase),
		webhook:    handlers.NewWebhookHandler(webhookUseCase),
		admin:      handlers.NewAdminEnrollmentHandler(enrollmentUseCase, batchUseCase),
	}
}

func registerRoutes(r *gin.Engine, h enrollmentHandlers, auth gin.HandlerFunc) {
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addEnrollmentRoutes(v1, h, auth)
}

// newEnrollmentRepository honours ENROLLMENT_STORE (dynamodb|memory).
// The memory store loses every enrollment on restart.
func newEnrollmentRepository(ddb *dynamodb.Client) interfaces.IEnrollmentRepository {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ENROLLMENT_STORE"))) {
	case "memory":
		log.Printf("[routes] using in-memory enrollment store")
		return memory.NewEnrollmentMemoryRepository()
	default:
		return repository2.NewEnrollmentDynamoRepository(ddb)
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
