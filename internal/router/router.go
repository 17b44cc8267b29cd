// Package router assembles the HTTP surface: middleware, guards and routes.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "budgettracker/internal/docs" // Import swagger docs
	"budgettracker/internal/handlers"
	"budgettracker/internal/middleware"
	"budgettracker/internal/services"
)

// Services are the business services the routes are served by.
type Services struct {
	Users      services.UserServicer
	Sessions   services.SessionServicer
	Categories services.CategoryServicer
	Budgets    services.BudgetServicer
	Expenses   services.ExpenseServicer
	Dashboard  services.DashboardServicer
	Audit      services.AuditServicer
}

// NewServices builds the database-backed services.
func NewServices(db *gorm.DB, sessionTTL time.Duration, userOpts ...services.UserOption) Services {
	return Services{
		Users:      services.NewUserService(db, userOpts...),
		Sessions:   services.NewSessionService(db, sessionTTL),
		Categories: services.NewCategoryService(db),
		Budgets:    services.NewBudgetService(db),
		Expenses:   services.NewExpenseService(db),
		Dashboard:  services.NewDashboardService(db),
		Audit:      services.NewAuditService(db),
	}
}

// Options configure the router.
type Options struct {
	// DevMode exposes internal error details in responses.
	DevMode       bool
	SessionSecret string
	SessionTTL    time.Duration
	SecureCookie  bool
	// Clock overrides time.Now for handlers; nil uses the wall clock.
	Clock handlers.Clock
}

// New returns the fully wired gin engine.
func New(svc Services, opts Options) *gin.Engine {
	sessions := middleware.NewSessionManager(svc.Sessions, svc.Users, opts.SessionSecret, opts.SessionTTL, opts.SecureCookie)

	authHandler := handlers.NewAuthHandler(svc.Users, sessions, svc.Audit)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard, opts.Clock)
	categoryHandler := handlers.NewCategoryHandler(svc.Categories, svc.Audit)
	budgetHandler := handlers.NewBudgetHandler(svc.Budgets, svc.Categories, svc.Audit, opts.Clock)
	expenseHandler := handlers.NewExpenseHandler(svc.Expenses, svc.Categories, svc.Audit, opts.Clock)

	router := gin.New()
	router.Use(middleware.Recovery(opts.DevMode))
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler(opts.DevMode))
	router.NoRoute(middleware.NotFound())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	site := router.Group("", sessions.Resolve())

	// Guest-only routes
	guest := site.Group("/auth", sessions.RequireGuest())
	guest.GET("/login", authHandler.LoginPage)
	guest.POST("/login", authHandler.Login)
	guest.GET("/register", authHandler.RegisterPage)
	guest.POST("/register", authHandler.Register)

	site.POST("/auth/logout", authHandler.Logout)

	// Protected routes
	protected := site.Group("", sessions.RequireAuth())
	protected.GET("/", dashboardHandler.Index)
	protected.GET("/dashboard", dashboardHandler.GetDashboard)

	budget := protected.Group("/budget")
	budget.GET("", budgetHandler.ListBudgets)
	budget.GET("/create", budgetHandler.NewBudgetPage)
	budget.POST("/create", budgetHandler.CreateBudget)
	budget.GET("/budget/:id", budgetHandler.GetBudget)

	budget.GET("/categories", categoryHandler.ListCategories)
	budget.GET("/category/create", categoryHandler.NewCategoryPage)
	budget.POST("/category/create", categoryHandler.CreateCategory)
	budget.GET("/category/:id", categoryHandler.GetCategory)
	budget.GET("/category/:id/edit", categoryHandler.EditCategoryPage)
	budget.POST("/category/:id/edit", categoryHandler.UpdateCategory)
	budget.POST("/category/:id/delete", categoryHandler.DeleteCategory)

	budget.GET("/expenses", expenseHandler.ListExpenses)
	budget.GET("/expense/create", expenseHandler.NewExpensePage)
	budget.POST("/expense/create", expenseHandler.CreateExpense)
	budget.GET("/expense/:id", expenseHandler.GetExpense)
	budget.GET("/expense/:id/edit", expenseHandler.EditExpensePage)
	budget.POST("/expense/:id/edit", expenseHandler.UpdateExpense)
	budget.POST("/expense/:id/delete", expenseHandler.DeleteExpense)

	return router
}
