// Package router assembles the HTTP API: middleware, swagger and the
// /api/v1 routes.
package router

import (
	"net/http"

	"budgetmaster/internal/handlers"
	"budgetmaster/internal/middleware"
	"budgetmaster/internal/services"
	"budgetmaster/internal/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "budgetmaster/internal/docs" // swagger docs
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Preference *handlers.PreferenceHandler
	Expense    *handlers.ExpenseHandler
	Income     *handlers.IncomeHandler
	Budget     *handlers.BudgetHandler
	Goal       *handlers.GoalHandler
	Dashboard  *handlers.DashboardHandler
	Category   *handlers.CategoryHandler
}

// NewHandlers wires services and handlers. Users and preferences live in db;
// records are served by cols.
func NewHandlers(db *gorm.DB, cols *store.Collections) *Handlers {
	userService := services.NewUserService(db)
	preferenceService := services.NewPreferenceService(db)
	expenseService := services.NewExpenseService(cols.Expenses)
	incomeService := services.NewIncomeService(cols.Income)
	budgetService := services.NewBudgetService(cols.Budget)
	goalService := services.NewGoalService(cols.Goals)
	dashboardService := services.NewDashboardService(cols.Expenses, cols.Income, cols.Budget, cols.Goals)

	return &Handlers{
		Auth:       handlers.NewAuthHandler(userService),
		Preference: handlers.NewPreferenceHandler(preferenceService),
		Expense:    handlers.NewExpenseHandler(expenseService),
		Income:     handlers.NewIncomeHandler(incomeService),
		Budget:     handlers.NewBudgetHandler(budgetService),
		Goal:       handlers.NewGoalHandler(goalService),
		Dashboard:  handlers.NewDashboardHandler(dashboardService),
		Category:   handlers.NewCategoryHandler(),
	}
}

// New builds the gin engine.
func New(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)

	protected.GET("/preferences/theme", h.Preference.GetTheme)
	protected.PUT("/preferences/theme", h.Preference.SetTheme)

	protected.GET("/categories", h.Category.GetCategories)
	protected.GET("/home", h.Dashboard.GetHome)
	protected.GET("/dashboard", h.Dashboard.GetDashboard)

	expenses := protected.Group("/expenses")
	expenses.GET("", h.Expense.GetExpenses)
	expenses.GET("/history", h.Expense.ListExpenses)
	expenses.POST("", h.Expense.CreateExpense)
	expenses.DELETE("/:id", h.Expense.DeleteExpense)

	income := protected.Group("/income")
	income.GET("", h.Income.GetIncome)
	income.GET("/history", h.Income.ListIncome)
	income.POST("", h.Income.CreateIncome)
	income.DELETE("/:id", h.Income.DeleteIncome)

	budget := protected.Group("/budget")
	budget.GET("", h.Budget.GetBudget)
	budget.GET("/history", h.Budget.ListBudgetItems)
	budget.POST("", h.Budget.CreateBudgetItem)
	budget.DELETE("/:id", h.Budget.DeleteBudgetItem)

	goals := protected.Group("/goals")
	goals.GET("", h.Goal.GetGoals)
	goals.GET("/history", h.Goal.ListGoals)
	goals.POST("", h.Goal.CreateGoal)
	goals.DELETE("/:id", h.Goal.DeleteGoal)

	return router
}
