package sales

import (
	"context"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"github.com/jhoicas/sys360/pkg/logger"
)

// HistoryUseCase consulta del historial de ventas.
type HistoryUseCase struct {
	saleRepo repository.SaleRepository
	log      *logger.Logger
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(saleRepo repository.SaleRepository, log *logger.Logger) *HistoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &HistoryUseCase{saleRepo: saleRepo, log: log.Named("history")}
}

// ListSales ventas más recientes primero. Falla del store degrada a lista vacía.
func (uc *HistoryUseCase) ListSales(ctx context.Context) ([]dto.SaleSummaryResponse, error) {
	list, err := uc.saleRepo.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("listar vendas")
		return []dto.SaleSummaryResponse{}, nil
	}
	out := make([]dto.SaleSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSummary(s))
	}
	return out, nil
}

// GetSale venta con sus líneas.
func (uc *HistoryUseCase) GetSale(ctx context.Context, id int64) (*dto.SaleDetailResponse, error) {
	d, err := uc.saleRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	out := &dto.SaleDetailResponse{
		SaleSummaryResponse: dto.SaleSummaryResponse{
			ID:             d.Sale.ID,
			CreatedAt:      d.Sale.CreatedAt,
			Seller:         d.SellerName,
			Client:         d.ClientName,
			Total:          d.Sale.Total,
			Freight:        d.Sale.Freight,
			PaymentMethod:  d.Sale.PaymentMethod,
			DeliveryStatus: d.Sale.DeliveryStatus,
		},
		AmountPaid: d.Sale.AmountPaid,
		Change:     d.Sale.ChangeDue,
		VehicleID:  d.Sale.VehicleID,
		Items:      make([]dto.SaleLineResponse, 0, len(d.Lines)),
	}
	for _, l := range d.Lines {
		out.Items = append(out.Items, dto.SaleLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}
	return out, nil
}

func toSummary(s entity.SaleSummary) dto.SaleSummaryResponse {
	return dto.SaleSummaryResponse{
		ID:             s.ID,
		CreatedAt:      s.CreatedAt,
		Seller:         s.SellerName,
		Client:         s.ClientName,
		Total:          s.Total,
		Freight:        s.Freight,
		PaymentMethod:  s.PaymentMethod,
		DeliveryStatus: s.DeliveryStatus,
	}
}
