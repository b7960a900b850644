package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/sys360/internal/application/analytics"
	"github.com/jhoicas/sys360/internal/application/auth"
	"github.com/jhoicas/sys360/internal/application/finance"
	"github.com/jhoicas/sys360/internal/application/fleet"
	"github.com/jhoicas/sys360/internal/application/sales"
	"github.com/jhoicas/sys360/internal/application/usecase"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	ImportUC    *usecase.ProductImportUseCase
	ClientUC    *usecase.ClientUseCase
	CompanyUC   *usecase.CompanyUseCase
	CheckoutUC  *sales.CheckoutUseCase
	HistoryUC   *sales.HistoryUseCase
	ReceiptUC   *sales.ReceiptUseCase
	LedgerUC    *finance.LedgerUseCase
	FleetUC     *fleet.FleetUseCase
	DashboardUC *analytics.DashboardUseCase
	Metrics     *metrics.Registry
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Usuarios (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin), RequireMenu(auth.MenuUsers))
	users.Get("/", authHandler.ListUsers)
	users.Post("/", authHandler.Register)
	users.Put("/:id/password", authHandler.ChangePassword)
	users.Delete("/:id", authHandler.DeleteUser)

	// Productos
	products := protected.Group("/products", RequireMenu(auth.MenuProducts))
	productHandler := NewProductHandler(deps.ProductUC, deps.ImportUC)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Post("/", productHandler.Create)
	products.Post("/import", productHandler.Import)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clientes
	clients := protected.Group("/clients", RequireMenu(auth.MenuClients))
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Ventas (PDV + historial)
	saleHandler := NewSaleHandler(deps.CheckoutUC, deps.HistoryUC, deps.ReceiptUC)
	protected.Post("/sales", RequireMenu(auth.MenuSales), saleHandler.Checkout)
	history := protected.Group("/sales", RequireMenu(auth.MenuHistory))
	history.Get("/", saleHandler.List)
	history.Get("/:id", saleHandler.GetByID)
	history.Get("/:id/receipt", saleHandler.Receipt)

	// Finanzas
	ledger := protected.Group("/ledger", RequireMenu(auth.MenuLedger))
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledger.Get("/", ledgerHandler.List)
	ledger.Post("/", ledgerHandler.Record)
	ledger.Get("/balance", ledgerHandler.Balance)
	ledger.Get("/categories", ledgerHandler.ListCategories)
	ledger.Post("/categories", ledgerHandler.CreateCategory)

	// Flota
	fleetGroup := protected.Group("/fleet", RequireMenu(auth.MenuFleet))
	fleetHandler := NewFleetHandler(deps.FleetUC)
	fleetGroup.Get("/vehicles", fleetHandler.ListVehicles)
	fleetGroup.Post("/vehicles", fleetHandler.CreateVehicle)
	fleetGroup.Put("/vehicles/:id", fleetHandler.UpdateVehicle)
	fleetGroup.Delete("/vehicles/:id", fleetHandler.DeleteVehicle)
	fleetGroup.Post("/vehicles/:id/release", fleetHandler.ReleaseVehicle)
	fleetGroup.Get("/vehicles/:id/maintenance", fleetHandler.ListMaintenance)
	fleetGroup.Post("/vehicles/:id/maintenance", fleetHandler.RecordMaintenance)
	fleetGroup.Get("/deliveries", fleetHandler.PendingDeliveries)
	fleetGroup.Post("/deliveries/:id/delivered", fleetHandler.MarkDelivered)
	fleetGroup.Post("/dispatch", fleetHandler.Dispatch)
	fleetGroup.Post("/freight", fleetHandler.EstimateFreight)

	// Dashboard
	dashboard := protected.Group("/dashboard", RequireMenu(auth.MenuDashboard))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.GetSummary)
	dashboard.Get("/sales", dashboardHandler.SalesByDay)
	dashboard.Get("/top-products", dashboardHandler.TopProducts)

	// Configuración: lectura para todos (cabecera del comprobante), escritura solo admin
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/settings/company", companyHandler.Get)
	protected.Put("/settings/company", RequireRole(entity.RoleAdmin), RequireMenu(auth.MenuSettings), companyHandler.Save)
}
