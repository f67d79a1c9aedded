// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	sessionController     *controller.SessionController
	expenseController     *controller.ExpenseController
	debtController        *controller.DebtController
	jarController         *controller.JarController
	incomeController      *controller.IncomeController
	bankAccountController *controller.BankAccountController
	summaryController     *controller.SummaryController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	sessionController *controller.SessionController,
	expenseController *controller.ExpenseController,
	debtController *controller.DebtController,
	jarController *controller.JarController,
	incomeController *controller.IncomeController,
	bankAccountController *controller.BankAccountController,
	summaryController *controller.SummaryController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		sessionController:     sessionController,
		expenseController:     expenseController,
		debtController:        debtController,
		jarController:         jarController,
		incomeController:      incomeController,
		bankAccountController: bankAccountController,
		summaryController:     summaryController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.sessionController != nil && r.loginRateLimiter != nil {
			v1.POST("/session", r.loginRateLimiter.Middleware(), r.sessionController.Create)
		}

		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		if r.debtController != nil && r.authMiddleware != nil {
			debts := v1.Group("/debts")
			debts.Use(r.authMiddleware.Authenticate())
			{
				debts.GET("", r.debtController.List)
				debts.POST("", r.debtController.Create)
				debts.GET("/portfolio", r.debtController.GetPortfolio)
				debts.PATCH("/:id", r.debtController.Update)
				debts.DELETE("/:id", r.debtController.Delete)
				debts.POST("/:id/payments", r.debtController.ApplyPayment)
			}
		}

		if r.jarController != nil && r.authMiddleware != nil {
			jars := v1.Group("/jars")
			jars.Use(r.authMiddleware.Authenticate())
			{
				jars.GET("", r.jarController.List)
				jars.PUT("", r.jarController.Replace)
				jars.POST("/preset", r.jarController.ApplyPreset)
				jars.GET("/allocation", r.jarController.GetAllocation)
			}
		}

		if r.incomeController != nil && r.authMiddleware != nil {
			incomes := v1.Group("/incomes")
			incomes.Use(r.authMiddleware.Authenticate())
			{
				incomes.GET("", r.incomeController.List)
				incomes.PUT("", r.incomeController.Replace)
			}
		}

		if r.bankAccountController != nil && r.authMiddleware != nil {
			accounts := v1.Group("/bank-accounts")
			accounts.Use(r.authMiddleware.Authenticate())
			{
				accounts.GET("", r.bankAccountController.List)
				accounts.PUT("", r.bankAccountController.Replace)
			}
		}

		if r.summaryController != nil && r.authMiddleware != nil {
			summaries := v1.Group("/summary")
			summaries.Use(r.authMiddleware.Authenticate())
			{
				summaries.GET("/monthly", r.summaryController.GetMonthly)
				summaries.GET("/breakdown", r.summaryController.GetBreakdown)
			}
		}
	}
}
