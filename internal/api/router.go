package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hrsuite/hr-system/docs"
	"github.com/hrsuite/hr-system/internal/api/handler"
	"github.com/hrsuite/hr-system/internal/api/middleware"
	"github.com/hrsuite/hr-system/internal/core/domain"
	"github.com/hrsuite/hr-system/internal/core/service"
	redisguard "github.com/hrsuite/hr-system/internal/infrastructure/db/redis"
	"github.com/hrsuite/hr-system/internal/infrastructure/db/sqlite"
	"github.com/hrsuite/hr-system/pkg/logger"
)

// Options carries the runtime settings the router needs beyond its storage
// handles.
type Options struct {
	JWTSecret        string
	RegistrationOpen bool
	ReportDir        string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, opts Options) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hr"))

	// --- Repositories ---
	authRepo := sqlite.NewAuthRepository(db)
	employeeRepo := sqlite.NewEmployeeRepository(db)
	departmentRepo := sqlite.NewDepartmentRepository(db)
	projectRepo := sqlite.NewProjectRepository(db)
	timeRecordRepo := sqlite.NewTimeRecordRepository(db)
	reportRepo := sqlite.NewReportRepository(db)

	// --- Services ---
	adminService := service.NewAdminService(opts.RegistrationOpen, log)
	authService := service.NewAuthService(authRepo, employeeRepo, adminService, opts.JWTSecret, 24*time.Hour)
	employeeService := service.NewEmployeeService(employeeRepo, log)
	departmentService := service.NewDepartmentService(departmentRepo, log)
	projectService := service.NewProjectService(projectRepo, log)
	timeRecordService := service.NewTimeRecordService(
		timeRecordRepo,
		employeeRepo,
		projectRepo,
		redisguard.NewSubmissionGuard(rdb),
		log,
	)
	reportService := service.NewReportService(reportRepo, opts.ReportDir, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	projectHandler := handler.NewProjectHandler(projectService)
	timeRecordHandler := handler.NewTimeRecordHandler(timeRecordService)
	reportHandler := handler.NewReportHandler(reportService)

	authMiddleware := middleware.Auth(opts.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)

	// Any authenticated employee: own time records and project assignments.
	v1.POST("/time-records", timeRecordHandler.Create)
	v1.GET("/time-records", timeRecordHandler.List)
	v1.GET("/time-records/validate", timeRecordHandler.Validate)
	v1.GET("/me/projects", projectHandler.MyProjects)

	// HR admins: employee records, projects, reports, admin toggles.
	hrAdmin := middleware.RBAC(domain.RoleHRAdmin)

	employees := v1.Group("/employees", hrAdmin)
	employees.POST("", employeeHandler.Create)
	employees.GET("", employeeHandler.List)
	employees.GET("/:id", employeeHandler.Get)
	employees.PUT("/:id", employeeHandler.Update)
	employees.DELETE("/:id", employeeHandler.Delete)

	projects := v1.Group("/projects", hrAdmin)
	projects.POST("", projectHandler.Create)
	projects.GET("", projectHandler.List)
	projects.GET("/assignments", projectHandler.Assignments)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)
	projects.POST("/:id/assignments", projectHandler.Assign)
	projects.DELETE("/:id/assignments/:employee_id", projectHandler.Unassign)

	reports := v1.Group("/reports", hrAdmin)
	reports.GET("/:kind", reportHandler.Data)
	reports.POST("/:kind", reportHandler.Generate)

	admin := v1.Group("/admin", hrAdmin)
	admin.GET("/registration", adminHandler.GetRegistration)
	admin.PUT("/registration", adminHandler.SetRegistration)

	// Managers: departments and membership.
	departments := v1.Group("/departments", middleware.RBAC(domain.RoleManager))
	departments.POST("", departmentHandler.Create)
	departments.GET("", departmentHandler.List)
	departments.GET("/unassigned", departmentHandler.Unassigned)
	departments.GET("/:id", departmentHandler.Get)
	departments.PUT("/:id", departmentHandler.Rename)
	departments.DELETE("/:id", departmentHandler.Delete)
	departments.POST("/:id/employees", departmentHandler.AssignEmployee)
	departments.GET("/:id/employees", departmentHandler.Employees)
	departments.DELETE("/employees/:employee_id", departmentHandler.UnassignEmployee)

	return e
}
