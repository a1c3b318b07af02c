package handlers

import (
	"github.com/cliniccore/clinic_ledger_app/cmd/docs"
	portssvc "github.com/cliniccore/clinic_ledger_app/internal/core/ports/services"
	"github.com/cliniccore/clinic_ledger_app/pkg/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// operatorHeader carries the name of the front-desk operator recording
// an entry. It feeds the audit columns only; there are no user accounts.
const operatorHeader = "X-Operator"

// operatorFromRequest resolves the operator name for audit attribution.
func operatorFromRequest(c *gin.Context) string {
	if op := c.GetHeader(operatorHeader); op != "" {
		return op
	}
	return "operator"
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerHomeRoutes(r)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerInvoiceRoutes(v1, service.Invoice)
	registerExpenseRoutes(v1, service.Expense)
	registerCollectionRoutes(v1, service.Collection)
	registerLoanRoutes(v1, service.Loan)
	registerShareholderRoutes(v1, service.Shareholder)
	registerReportingRoutes(v1, service.Reporting)
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
