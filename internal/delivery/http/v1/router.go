package v1

import (
	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	HealthUC     usecase.HealthUsecase
	DiagnosticUC domain.DiagnosticUsecase
	ContactUC    domain.ContactUsecase
	Schema       *validation.Schema
	Logger       *zap.Logger
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowOrigins)) // CORS must be first!
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))
	r.Use(gin.Recovery())
	r.Use(middleware.ErrorHandler())

	NewSystemHandler(r, deps.HealthUC, deps.DiagnosticUC)
	NewContactHandler(r, deps.ContactUC, deps.Schema)

	// Unknown routes get the same {"detail": ...} body as every other error
	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound("Not Found"))
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
