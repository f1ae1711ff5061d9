package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"gestobra/internal/core/tx"
	"gestobra/internal/domain"
	"gestobra/internal/domain/audit"
	"gestobra/internal/domain/auth"
	"gestobra/internal/domain/catalogs/client"
	"gestobra/internal/domain/catalogs/employee"
	"gestobra/internal/domain/catalogs/material"
	"gestobra/internal/domain/catalogs/project"
	"gestobra/internal/domain/catalogs/tool"
	"gestobra/internal/domain/contact"
	"gestobra/internal/domain/reports"
	"gestobra/internal/domain/stock"
	"gestobra/internal/infrastructure/http/v1/dto"
	"gestobra/internal/infrastructure/http/v1/handlers"
	"gestobra/internal/infrastructure/http/v1/middleware"
	"gestobra/internal/infrastructure/metrics"
	"gestobra/pkg/logger"
)

// Repositories are the storage implementations the catalogs run on.
type Repositories struct {
	Materials material.Repository
	Tools     tool.Repository
	Clients   interface {
		client.Repository
		project.ClientLookup
	}
	Employees employee.Repository
	Projects  project.Repository
}

// RouterConfig holds router configuration.
type RouterConfig struct {
	Repos     Repositories
	TxManager tx.Manager

	// Codes issues catalog codes (MAT-2026-00001)
	Codes domain.CodeGenerator

	// Renderer turns report documents into files (xlsx) or remote PDFs
	Renderer reports.Renderer

	// Mailer delivers the public contact form
	Mailer contact.Mailer

	// DB is pinged by /health/ready
	DB handlers.Pinger

	// Metrics is optional; nil disables /metrics and request instrumentation
	Metrics *metrics.Metrics

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation; nil disables authentication
	JWTValidator middleware.JWTValidator

	// AuthService for the login endpoint; nil disables login
	AuthService *auth.Service

	// Location places bare days of date filters
	Location *time.Location

	Version string
	Debug   bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Trace(cfg.Logger))
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	healthHandler := handlers.NewHealthHandler(cfg.DB, cfg.Version)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	base := handlers.NewBaseHandler(cfg.Location)

	v1 := router.Group("/api/v1")
	{
		registerPublicRoutes(v1, base, cfg)

		protected := v1.Group("")
		if cfg.JWTValidator != nil {
			protected.Use(middleware.Auth(cfg.JWTValidator))
			protected.Use(middleware.RequireRole(auth.RoleAdmin))
		} else {
			cfg.Logger.Warn("authentication disabled: no JWT secret configured")
		}

		registerInventoryRoutes(protected, base, cfg)
		registerCatalogRoutes(protected, base, cfg)
	}

	return router
}

// registerPublicRoutes registers the endpoints reachable without a token.
func registerPublicRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	contactHandler := handlers.NewContactHandler(base, contact.NewService(cfg.Mailer))
	rg.POST("/contact", contactHandler.Submit)

	if cfg.AuthService != nil {
		authHandler := handlers.NewAuthHandler(base, cfg.AuthService)
		rg.POST("/auth/login", authHandler.Login)
	}
}

// registerInventoryRoutes registers materials and tools: CRUD, movements, stats, reports.
func registerInventoryRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	// Materials
	{
		service := material.NewService(cfg.Repos.Materials, cfg.TxManager, cfg.Codes, movementRecorder(cfg.Metrics))
		audit.Attach(service.Hooks(), "material", nil)
		toDTO := asDTO(dto.FromMaterial)

		group := rg.Group("/materials")
		RegisterInventoryRoutes(group, handlers.NewInventoryHandler[*material.Material, stock.Summary](base, service, toDTO))
		RegisterReportRoutes(group, handlers.NewReportHandler(base, reports.NewExporter(reports.ExporterConfig[*material.Material]{
			Entity:   "materials",
			Source:   service,
			Selector: material.NewSelector(),
			Layout:   material.ReportLayout(),
			Renderer: cfg.Renderer,
			Recorder: reportRecorder(cfg.Metrics),
		})))
		RegisterCatalogRoutes(group, handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*material.Material, dto.CreateMaterialRequest, dto.UpdateMaterialRequest]{
			Service:      service,
			EntityName:   "material",
			Enums:        enumNames(material.Fields()),
			MapCreateDTO: (*dto.CreateMaterialRequest).ToEntity,
			MapUpdateDTO: (*dto.UpdateMaterialRequest).ApplyTo,
			MapToDTO:     toDTO,
		}))
	}

	// Tools
	{
		service := tool.NewService(cfg.Repos.Tools, cfg.TxManager, cfg.Codes, movementRecorder(cfg.Metrics))
		audit.Attach(service.Hooks(), "tool", nil)
		toDTO := asDTO(dto.FromTool)

		group := rg.Group("/tools")
		RegisterInventoryRoutes(group, handlers.NewInventoryHandler[*tool.Tool, tool.Stats](base, service, toDTO))
		RegisterReportRoutes(group, handlers.NewReportHandler(base, reports.NewExporter(reports.ExporterConfig[*tool.Tool]{
			Entity:   "tools",
			Source:   service,
			Selector: tool.NewSelector(),
			Layout:   tool.ReportLayout(),
			Renderer: cfg.Renderer,
			Recorder: reportRecorder(cfg.Metrics),
		})))
		RegisterCatalogRoutes(group, handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*tool.Tool, dto.CreateToolRequest, dto.UpdateToolRequest]{
			Service:      service,
			EntityName:   "tool",
			Enums:        enumNames(tool.Fields()),
			MapCreateDTO: (*dto.CreateToolRequest).ToEntity,
			MapUpdateDTO: (*dto.UpdateToolRequest).ApplyTo,
			MapToDTO:     toDTO,
		}))
	}
}

// registerCatalogRoutes registers clients, employees and projects.
func registerCatalogRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	// Clients
	{
		service := client.NewService(cfg.Repos.Clients, cfg.TxManager, cfg.Codes)
		audit.Attach(service.Hooks(), "client", nil)

		group := rg.Group("/clients")
		RegisterReportRoutes(group, handlers.NewReportHandler(base, reports.NewExporter(reports.ExporterConfig[*client.Client]{
			Entity:   "clients",
			Source:   service,
			Selector: client.NewSelector(),
			Layout:   client.ReportLayout(),
			Renderer: cfg.Renderer,
			Recorder: reportRecorder(cfg.Metrics),
		})))
		RegisterCatalogRoutes(group, handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]{
			Service:      service,
			EntityName:   "client",
			Enums:        enumNames(client.Fields()),
			MapCreateDTO: (*dto.CreateClientRequest).ToEntity,
			MapUpdateDTO: (*dto.UpdateClientRequest).ApplyTo,
			MapToDTO:     asDTO(dto.FromClient),
		}))
	}

	// Employees
	{
		service := employee.NewService(cfg.Repos.Employees, cfg.TxManager, cfg.Codes)
		audit.Attach(service.Hooks(), "employee", nil)

		group := rg.Group("/employees")
		RegisterReportRoutes(group, handlers.NewReportHandler(base, reports.NewExporter(reports.ExporterConfig[*employee.Employee]{
			Entity:   "employees",
			Source:   service,
			Selector: employee.NewSelector(),
			Layout:   employee.ReportLayout(),
			Renderer: cfg.Renderer,
			Recorder: reportRecorder(cfg.Metrics),
		})))
		RegisterCatalogRoutes(group, handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*employee.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]{
			Service:      service,
			EntityName:   "employee",
			Enums:        enumNames(employee.Fields()),
			MapCreateDTO: (*dto.CreateEmployeeRequest).ToEntity,
			MapUpdateDTO: (*dto.UpdateEmployeeRequest).ApplyTo,
			MapToDTO:     asDTO(dto.FromEmployee),
		}))
	}

	// Projects
	{
		service := project.NewService(cfg.Repos.Projects, cfg.Repos.Clients, cfg.TxManager, cfg.Codes)
		audit.Attach(service.Hooks(), "project", nil)

		group := rg.Group("/projects")
		RegisterReportRoutes(group, handlers.NewReportHandler(base, reports.NewExporter(reports.ExporterConfig[*project.Project]{
			Entity:   "projects",
			Source:   service,
			Selector: project.NewSelector(),
			Layout:   project.ReportLayout(),
			Renderer: cfg.Renderer,
			Recorder: reportRecorder(cfg.Metrics),
		})))
		RegisterCatalogRoutes(group, handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*project.Project, dto.CreateProjectRequest, dto.UpdateProjectRequest]{
			Service:      service,
			EntityName:   "project",
			Enums:        enumNames(project.Fields()),
			MapCreateDTO: (*dto.CreateProjectRequest).ToEntity,
			MapUpdateDTO: (*dto.UpdateProjectRequest).ApplyTo,
			MapToDTO:     asDTO(dto.FromProject),
		}))
	}
}

// movementRecorder and reportRecorder avoid handing a typed nil to the services.
func movementRecorder(m *metrics.Metrics) stock.Recorder {
	if m == nil {
		return nil
	}
	return m
}

func reportRecorder(m *metrics.Metrics) reports.Recorder {
	if m == nil {
		return nil
	}
	return m
}
