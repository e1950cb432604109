package handlers

import (
	"fmt"

	"github.com/SscSPs/sales_crm_backend/cmd/docs"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/middleware"
	"github.com/SscSPs/sales_crm_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := domain.RegisterValidations(v); err != nil {
			return fmt.Errorf("failed to register request validations: %w", err)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("invalid rate limit %q: %w", cfg.RateLimit, err)
	}
	apiLimit := middleware.RateLimit(limiter.New(memory.NewStore(), rate))

	registerGoogleOAuthRoutes(r, services)
	registerNotificationCheckRoute(r, services.NotificationChecker, apiLimit)

	setupAPIV1Routes(r, cfg, services, apiLimit)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates to each resource.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimit gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1", rateLimit, middleware.AuthMiddleware(cfg.JWTSecret))

	registerSalesFunnelRoutes(v1, services.Opportunity)
	registerServiceContractRoutes(v1, services.ServiceContract)
	registerExpenseRoutes(v1, services.Expense)
	registerSalaryRoutes(v1, services.Salary)
	registerStockRoutes(v1, services.Stock)
	registerDashboardRoutes(v1, services.Reporting)
	registerSettingsRoutes(v1, services.Settings)
	registerNotificationRoutes(v1, services.Notification)
	registerPushRoutes(v1, services.Push)
	registerProfileRoutes(v1, services.Profile)
	registerEventRoutes(v1, services.Revalidation)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
