// Package bootstrap arma las dependencias del sistema (repositorios, casos de uso) sobre un archivo SQLite.
// Lo usan cmd/api, cmd/sys360ctl y los tests de integración HTTP.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/sys360/internal/application/analytics"
	"github.com/jhoicas/sys360/internal/application/auth"
	"github.com/jhoicas/sys360/internal/application/finance"
	"github.com/jhoicas/sys360/internal/application/fleet"
	"github.com/jhoicas/sys360/internal/application/sales"
	"github.com/jhoicas/sys360/internal/application/usecase"
	"github.com/jhoicas/sys360/internal/infrastructure/pdf"
	"github.com/jhoicas/sys360/internal/infrastructure/sqlite"
	httpapi "github.com/jhoicas/sys360/internal/interfaces/http"
	"github.com/jhoicas/sys360/pkg/config"
	"github.com/jhoicas/sys360/pkg/logger"
	"github.com/jhoicas/sys360/pkg/metrics"
	"gorm.io/gorm"
)

// Container agrupa la conexión y los casos de uso ya cableados.
type Container struct {
	Config  *config.Config
	DB      *gorm.DB
	Metrics *metrics.Registry

	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	ImportUC    *usecase.ProductImportUseCase
	ClientUC    *usecase.ClientUseCase
	CompanyUC   *usecase.CompanyUseCase
	LedgerUC    *finance.LedgerUseCase
	CheckoutUC  *sales.CheckoutUseCase
	HistoryUC   *sales.HistoryUseCase
	ReceiptUC   *sales.ReceiptUseCase
	FleetUC     *fleet.FleetUseCase
	DashboardUC *analytics.DashboardUseCase

	log *logger.Logger
}

// New abre la base, aplica migraciones y construye los casos de uso.
// reg puede ser nil: se usa metrics.Default().
func New(ctx context.Context, cfg *config.Config, reg *metrics.Registry, log *logger.Logger) (*Container, error) {
	if log == nil {
		log = logger.Nop()
	}
	if reg == nil {
		reg = metrics.Default()
	}

	db, err := sqlite.Open(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if err := sqlite.Migrate(ctx, db, log); err != nil {
		_ = sqlite.Close(db)
		return nil, err
	}

	// Repositorios
	userRepo := sqlite.NewUserRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	clientRepo := sqlite.NewClientRepository(db)
	saleRepo := sqlite.NewSaleRepository(db)
	ledgerRepo := sqlite.NewLedgerRepository(db)
	vehicleRepo := sqlite.NewVehicleRepository(db)
	companyRepo := sqlite.NewCompanyRepository(db)
	analyticsRepo := sqlite.NewAnalyticsRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	productUC := usecase.NewProductUseCase(productRepo, cfg.Stock.LowThreshold, log)
	ledgerUC := finance.NewLedgerUseCase(ledgerRepo, log)
	receiptUC := sales.NewReceiptUseCase(saleRepo, companyRepo, pdf.NewReceiptGenerator(), cfg.Receipts.Dir, log)
	kernel := sales.NewKernel(txRunner, productRepo, clientRepo, reg, log)

	return &Container{
		Config:      cfg,
		DB:          db,
		Metrics:     reg,
		AuthUC:      authUC,
		ProductUC:   productUC,
		ImportUC:    usecase.NewProductImportUseCase(productUC, log),
		ClientUC:    usecase.NewClientUseCase(clientRepo, log),
		CompanyUC:   usecase.NewCompanyUseCase(companyRepo),
		LedgerUC:    ledgerUC,
		CheckoutUC:  sales.NewCheckoutUseCase(kernel, ledgerUC, receiptUC, reg, log),
		HistoryUC:   sales.NewHistoryUseCase(saleRepo, log),
		ReceiptUC:   receiptUC,
		FleetUC:     fleet.NewFleetUseCase(vehicleRepo, saleRepo, txRunner, ledgerUC, cfg.Freight, log),
		DashboardUC: analytics.NewDashboardUseCase(analyticsRepo, ledgerRepo, productRepo, cfg.Stock.LowThreshold, log),
		log:         log,
	}, nil
}

// Seed crea el admin por defecto y las categorías financieras base. Es idempotente.
func (c *Container) Seed(ctx context.Context) error {
	created, err := c.AuthUC.EnsureDefaultAdmin(ctx)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := c.LedgerUC.EnsureDefaultCategories(ctx); err != nil {
		return fmt.Errorf("seed categorias: %w", err)
	}
	c.log.Info().Bool("admin_created", created).Msg("seed aplicado")
	return nil
}

// RouterDeps dependencias para httpapi.Router.
func (c *Container) RouterDeps() httpapi.RouterDeps {
	return httpapi.RouterDeps{
		AuthUC:      c.AuthUC,
		ProductUC:   c.ProductUC,
		ImportUC:    c.ImportUC,
		ClientUC:    c.ClientUC,
		CompanyUC:   c.CompanyUC,
		CheckoutUC:  c.CheckoutUC,
		HistoryUC:   c.HistoryUC,
		ReceiptUC:   c.ReceiptUC,
		LedgerUC:    c.LedgerUC,
		FleetUC:     c.FleetUC,
		DashboardUC: c.DashboardUC,
		Metrics:     c.Metrics,
		JWTSecret:   c.Config.JWT.Secret,
	}
}

// Close cierra la base.
func (c *Container) Close() error {
	return sqlite.Close(c.DB)
}
