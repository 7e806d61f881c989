package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/armadalink/backoffice/internal/audit"
	auditdomain "github.com/armadalink/backoffice/internal/audit/domain"
	"github.com/armadalink/backoffice/internal/auth"
	authdomain "github.com/armadalink/backoffice/internal/auth/domain"
	"github.com/armadalink/backoffice/internal/auth/session"
	"github.com/armadalink/backoffice/internal/config"
	"github.com/armadalink/backoffice/internal/customer"
	customerdomain "github.com/armadalink/backoffice/internal/customer/domain"
	"github.com/armadalink/backoffice/internal/driver"
	driverdomain "github.com/armadalink/backoffice/internal/driver/domain"
	"github.com/armadalink/backoffice/internal/employee"
	employeedomain "github.com/armadalink/backoffice/internal/employee/domain"
	"github.com/armadalink/backoffice/internal/material"
	materialdomain "github.com/armadalink/backoffice/internal/material/domain"
	"github.com/armadalink/backoffice/internal/quotation"
	quotationdomain "github.com/armadalink/backoffice/internal/quotation/domain"
	"github.com/armadalink/backoffice/internal/region"
	regiondomain "github.com/armadalink/backoffice/internal/region/domain"
	"github.com/armadalink/backoffice/internal/supplier"
	supplierdomain "github.com/armadalink/backoffice/internal/supplier/domain"
	"github.com/armadalink/backoffice/internal/vehicle"
	vehicledomain "github.com/armadalink/backoffice/internal/vehicle/domain"
	"github.com/armadalink/backoffice/internal/vendors"
	vendordomain "github.com/armadalink/backoffice/internal/vendors/domain"
	"github.com/armadalink/backoffice/pkg/telemetry"
	"github.com/armadalink/backoffice/pkg/telemetry/correlation"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	audit.Module,
	auth.Module,
	session.Module,
	customer.Module,
	supplier.Module,
	vendor.Module,
	region.Module,
	employee.Module,
	driver.Module,
	vehicle.Module,
	material.Module,
	quotation.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, httpMetrics *telemetry.HTTPMetrics) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(correlation.GinMiddleware())
	r.Use(telemetry.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, httpMetrics *telemetry.HTTPMetrics) *gin.Engine {
	return NewEngine(cfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	authsvc      authdomain.Service
	sessions     *session.Manager
	auditSvc     auditdomain.Service
	customerSvc  customerdomain.Service
	supplierSvc  supplierdomain.Service
	vendorSvc    vendordomain.Service
	regionRepo   regiondomain.Repository
	employeeSvc  employeedomain.Service
	driverSvc    driverdomain.Service
	vehicleSvc   vehicledomain.Service
	materialSvc  materialdomain.Service
	quotationSvc quotationdomain.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	Authsvc      authdomain.Service
	Sessions     *session.Manager
	AuditSvc     auditdomain.Service
	CustomerSvc  customerdomain.Service
	SupplierSvc  supplierdomain.Service
	VendorSvc    vendordomain.Service
	RegionRepo   regiondomain.Repository
	EmployeeSvc  employeedomain.Service
	DriverSvc    driverdomain.Service
	VehicleSvc   vehicledomain.Service
	MaterialSvc  materialdomain.Service
	QuotationSvc quotationdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		authsvc:      p.Authsvc,
		sessions:     p.Sessions,
		auditSvc:     p.AuditSvc,
		customerSvc:  p.CustomerSvc,
		supplierSvc:  p.SupplierSvc,
		vendorSvc:    p.VendorSvc,
		regionRepo:   p.RegionRepo,
		employeeSvc:  p.EmployeeSvc,
		driverSvc:    p.DriverSvc,
		vehicleSvc:   p.VehicleSvc,
		materialSvc:  p.MaterialSvc,
		quotationSvc: p.QuotationSvc,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.AuthRequired(), s.Me)
	auth.POST("/change-password", s.AuthRequired(), s.ChangePassword)
	auth.POST("/users", s.AuthRequired(), s.CreateUser)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Region lookups --------
	api.GET("/countries", s.ListCountries)
	api.GET("/provinces", s.ListProvinces)
	api.GET("/provinces/:code/regencies", s.ListRegencies)
	api.GET("/regencies/:code/districts", s.ListDistricts)

	// -------- Customers --------
	api.GET("/customers", s.AuthRequired(), s.ListCustomers)
	api.POST("/customers", s.AuthRequired(), s.CreateCustomer)
	api.GET("/customers/:id", s.AuthRequired(), s.GetCustomerByID)
	api.PATCH("/customers/:id", s.AuthRequired(), s.UpdateCustomer)
	api.DELETE("/customers/:id", s.AuthRequired(), s.DeleteCustomer)

	// -------- Suppliers --------
	api.GET("/suppliers", s.AuthRequired(), s.ListSuppliers)
	api.POST("/suppliers", s.AuthRequired(), s.CreateSupplier)
	api.GET("/suppliers/:id", s.AuthRequired(), s.GetSupplierByID)
	api.PATCH("/suppliers/:id", s.AuthRequired(), s.UpdateSupplier)
	api.DELETE("/suppliers/:id", s.AuthRequired(), s.DeleteSupplier)

	// -------- Vendors --------
	api.GET("/vendors", s.AuthRequired(), s.ListVendors)
	api.POST("/vendors", s.AuthRequired(), s.CreateVendor)
	api.GET("/vendors/:id", s.AuthRequired(), s.GetVendorByID)
	api.PATCH("/vendors/:id", s.AuthRequired(), s.UpdateVendor)
	api.DELETE("/vendors/:id", s.AuthRequired(), s.DeleteVendor)

	// -------- Employees --------
	api.GET("/employees", s.AuthRequired(), s.ListEmployees)
	api.POST("/employees", s.AuthRequired(), s.CreateEmployee)
	api.GET("/employees/:id", s.AuthRequired(), s.GetEmployeeByID)
	api.PATCH("/employees/:id", s.AuthRequired(), s.UpdateEmployee)
	api.DELETE("/employees/:id", s.AuthRequired(), s.DeleteEmployee)

	// -------- Drivers --------
	api.GET("/drivers", s.AuthRequired(), s.ListDrivers)
	api.POST("/drivers", s.AuthRequired(), s.CreateDriver)
	api.GET("/drivers/:id", s.AuthRequired(), s.GetDriverByID)
	api.PATCH("/drivers/:id", s.AuthRequired(), s.UpdateDriver)
	api.DELETE("/drivers/:id", s.AuthRequired(), s.DeleteDriver)

	// -------- Vehicles --------
	api.GET("/vehicles", s.AuthRequired(), s.ListVehicles)
	api.POST("/vehicles", s.AuthRequired(), s.CreateVehicle)
	api.GET("/vehicles/:id", s.AuthRequired(), s.GetVehicleByID)
	api.PATCH("/vehicles/:id", s.AuthRequired(), s.UpdateVehicle)
	api.DELETE("/vehicles/:id", s.AuthRequired(), s.DeleteVehicle)

	// -------- Materials --------
	api.GET("/materials", s.AuthRequired(), s.ListMaterials)
	api.POST("/materials", s.AuthRequired(), s.CreateMaterial)
	api.GET("/materials/:id", s.AuthRequired(), s.GetMaterialByID)
	api.PATCH("/materials/:id", s.AuthRequired(), s.UpdateMaterial)
	api.DELETE("/materials/:id", s.AuthRequired(), s.DeleteMaterial)

	// -------- Quotations --------
	api.GET("/quotations", s.AuthRequired(), s.ListQuotations)
	api.POST("/quotations", s.AuthRequired(), s.CreateQuotation)
	api.GET("/quotations/:id", s.AuthRequired(), s.GetQuotationByID)
	api.PATCH("/quotations/:id", s.AuthRequired(), s.UpdateQuotation)
	api.DELETE("/quotations/:id", s.AuthRequired(), s.DeleteQuotation)

	// -------- Audit trail --------
	api.GET("/audit_logs", s.AuthRequired(), s.ListAuditLogs)
}
