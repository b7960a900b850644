// Package analytics contiene los casos de uso del dashboard: ventas por día, productos
// más vendidos, saldo de caja y stock bajo.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"github.com/jhoicas/sys360/pkg/logger"
	"github.com/shopspring/decimal"
)

const (
	dashboardDays = 7 // días del gráfico de vendas
	dashboardTop  = 5 // produtos no ranking
)

// DashboardUseCase genera el resumen del painel.
//
// Fuente de datos: AnalyticsRepository, LedgerRepository y ProductRepository (solo lectura).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	ledgerRepo    repository.LedgerRepository
	productRepo   repository.ProductRepository
	lowThreshold  int
	log           *logger.Logger
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	ledgerRepo repository.LedgerRepository,
	productRepo repository.ProductRepository,
	lowThreshold int,
	log *logger.Logger,
) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if lowThreshold <= 0 {
		lowThreshold = 5
	}
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		ledgerRepo:    ledgerRepo,
		productRepo:   productRepo,
		lowThreshold:  lowThreshold,
		log:           log.Named("analytics"),
		now:           time.Now,
	}
}

// SalesLastDays totales de los últimos days días (hoy incluido). Días sin venta aparecen con cero.
func (uc *DashboardUseCase) SalesLastDays(ctx context.Context, days int) ([]dto.DailySalesItem, error) {
	if days <= 0 {
		days = dashboardDays
	}
	now := uc.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -(days - 1))
	rows, err := uc.analyticsRepo.SalesByDay(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("vendas por dia: %w", err)
	}
	byDay := make(map[string]entity.DailySales, len(rows))
	for _, r := range rows {
		byDay[r.Day] = r
	}
	out := make([]dto.DailySalesItem, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		r, ok := byDay[day]
		if !ok {
			out = append(out, dto.DailySalesItem{Day: day, Total: decimal.Zero})
			continue
		}
		out = append(out, dto.DailySalesItem{Day: day, Total: r.Total, Count: r.Count})
	}
	return out, nil
}

// TopProducts productos más vendidos por unidades.
func (uc *DashboardUseCase) TopProducts(ctx context.Context, limit int) ([]dto.TopProductItem, error) {
	if limit <= 0 {
		limit = dashboardTop
	}
	rows, err := uc.analyticsRepo.TopProducts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top produtos: %w", err)
	}
	out := make([]dto.TopProductItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductItem{ProductID: r.ProductID, Name: r.Name, Quantity: r.Quantity, Revenue: r.Revenue})
	}
	return out, nil
}

// LedgerBalance entradas, salidas y saldo.
func (uc *DashboardUseCase) LedgerBalance(ctx context.Context) (dto.BalanceResponse, error) {
	in, out, err := uc.ledgerRepo.Totals(ctx)
	if err != nil {
		return dto.BalanceResponse{}, fmt.Errorf("saldo: %w", err)
	}
	return dto.BalanceResponse{TotalIn: in, TotalOut: out, Balance: in.Sub(out)}, nil
}

// LowStock productos con quantity < threshold (<=0 usa el configurado).
func (uc *DashboardUseCase) LowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error) {
	if threshold <= 0 {
		threshold = uc.lowThreshold
	}
	list, err := uc.productRepo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("estoque baixo: %w", err)
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductResponse{
			ID:        p.ID,
			Name:      p.Name,
			Quantity:  p.Quantity,
			SellPrice: p.SellPrice,
			CostPrice: p.CostPrice,
			Category:  p.Category,
			Supplier:  p.Supplier,
			LowStock:  true,
		})
	}
	return out, nil
}

// Dashboard junta los cuatro widgets. Las consultas corren en paralelo;
// un widget que falla queda vacío y se registra en el log.
func (uc *DashboardUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	type salesResult struct {
		items []dto.DailySalesItem
		err   error
	}
	type topResult struct {
		items []dto.TopProductItem
		err   error
	}
	type balanceResult struct {
		bal dto.BalanceResponse
		err error
	}
	type lowResult struct {
		items []dto.ProductResponse
		err   error
	}

	salesCh := make(chan salesResult, 1)
	topCh := make(chan topResult, 1)
	balCh := make(chan balanceResult, 1)
	lowCh := make(chan lowResult, 1)

	go func() {
		items, err := uc.SalesLastDays(ctx, dashboardDays)
		salesCh <- salesResult{items, err}
	}()
	go func() {
		items, err := uc.TopProducts(ctx, dashboardTop)
		topCh <- topResult{items, err}
	}()
	go func() {
		bal, err := uc.LedgerBalance(ctx)
		balCh <- balanceResult{bal, err}
	}()
	go func() {
		items, err := uc.LowStock(ctx, uc.lowThreshold)
		lowCh <- lowResult{items, err}
	}()

	sales := <-salesCh
	top := <-topCh
	bal := <-balCh
	low := <-lowCh

	out := &dto.DashboardResponse{
		SalesLastDays: sales.items,
		TopProducts:   top.items,
		Balance:       bal.bal,
		LowStock:      low.items,
		Threshold:     uc.lowThreshold,
	}
	for _, err := range []error{sales.err, top.err, bal.err, low.err} {
		if err != nil {
			uc.log.Warn().Err(err).Msg("dashboard parcial")
		}
	}
	if out.SalesLastDays == nil {
		out.SalesLastDays = []dto.DailySalesItem{}
	}
	if out.TopProducts == nil {
		out.TopProducts = []dto.TopProductItem{}
	}
	if out.LowStock == nil {
		out.LowStock = []dto.ProductResponse{}
	}
	return out, nil
}
