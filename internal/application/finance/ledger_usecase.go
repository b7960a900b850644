package finance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"github.com/jhoicas/sys360/pkg/logger"
	"github.com/shopspring/decimal"
)

// EntryInput movimiento a registrar. UserID, CategoryID y SaleID son opcionales.
type EntryInput struct {
	Description string
	Amount      decimal.Decimal
	Direction   string
	UserID      *int64
	CategoryID  *int64
	SaleID      *int64
}

// LedgerUseCase libro de caja: movimientos, saldo y categorías.
type LedgerUseCase struct {
	repo repository.LedgerRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(repo repository.LedgerRepository, log *logger.Logger) *LedgerUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &LedgerUseCase{repo: repo, log: log.Named("ledger"), now: time.Now}
}

// RecordEntry valida y persiste un movimiento. Valor cero es válido.
func (uc *LedgerUseCase) RecordEntry(ctx context.Context, in EntryInput) (*dto.LedgerEntryResponse, error) {
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Descrição é obrigatória")
	}
	if in.Amount.IsNegative() {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Valor não pode ser negativo")
	}
	if in.Direction != entity.DirectionIn && in.Direction != entity.DirectionOut {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Tipo inválido: %s", in.Direction)
	}
	e := &entity.LedgerEntry{
		CreatedAt:   uc.now(),
		Description: in.Description,
		Amount:      in.Amount.Round(2),
		Direction:   in.Direction,
		SaleID:      in.SaleID,
		UserID:      in.UserID,
		CategoryID:  in.CategoryID,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEntryResponse(e), nil
}

// RecordSale registra la entrada de una venta confirmada en la categoría de ventas.
func (uc *LedgerUseCase) RecordSale(ctx context.Context, sale *entity.Sale) error {
	desc := SaleDescription(sale)
	var catID *int64
	cat, err := uc.repo.GetCategoryByName(ctx, entity.CategorySales)
	if err != nil {
		uc.log.Warn().Err(err).Msg("categoria de vendas indisponível")
	} else if cat != nil {
		catID = &cat.ID
	}
	userID := sale.UserID
	saleID := sale.ID
	_, err = uc.RecordEntry(ctx, EntryInput{
		Description: desc,
		Amount:      sale.Total,
		Direction:   entity.DirectionIn,
		UserID:      &userID,
		CategoryID:  catID,
		SaleID:      &saleID,
	})
	return err
}

// SaleDescription "Venda PDV #id (Cli ID: n) [+Frete R$x.xx]".
func SaleDescription(sale *entity.Sale) string {
	desc := fmt.Sprintf("Venda PDV #%d", sale.ID)
	if sale.ClientID != nil {
		desc += fmt.Sprintf(" (Cli ID: %d)", *sale.ClientID)
	}
	if sale.Freight.IsPositive() {
		desc += fmt.Sprintf(" [+Frete R$%s]", sale.Freight.StringFixed(2))
	}
	return desc
}

// ListEntries movimientos, más recientes primero. Falla del store degrada a lista vacía.
func (uc *LedgerUseCase) ListEntries(ctx context.Context) ([]dto.LedgerEntryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("listar lançamentos")
		return []dto.LedgerEntryResponse{}, nil
	}
	out := make([]dto.LedgerEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEntryResponse(e))
	}
	return out, nil
}

// Balance saldo = Σ entradas − Σ salidas.
func (uc *LedgerUseCase) Balance(ctx context.Context) (*dto.BalanceResponse, error) {
	in, out, err := uc.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{TotalIn: in, TotalOut: out, Balance: in.Sub(out)}, nil
}

// ListCategories categorías ordenadas por nombre.
func (uc *LedgerUseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("listar categorias")
		return []dto.CategoryResponse{}, nil
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name, Kind: c.Kind})
	}
	return out, nil
}

// CreateCategory crea una categoría (idempotente por nombre).
func (uc *LedgerUseCase) CreateCategory(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Nome da categoria é obrigatório")
	}
	if in.Kind != entity.CategoryIncome && in.Kind != entity.CategoryExpense {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Tipo de categoria inválido: %s", in.Kind)
	}
	c := &entity.LedgerCategory{Name: in.Name, Kind: in.Kind}
	if err := uc.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Kind: c.Kind}, nil
}

// EnsureDefaultCategories crea las categorías iniciales que falten.
func (uc *LedgerUseCase) EnsureDefaultCategories(ctx context.Context) error {
	for _, c := range entity.DefaultCategories() {
		cat := c
		if err := uc.repo.CreateCategory(ctx, &cat); err != nil {
			return fmt.Errorf("categoria %q: %w", c.Name, err)
		}
	}
	return nil
}

// CategoryID busca el id de una categoría por nombre (nil si no existe).
func (uc *LedgerUseCase) CategoryID(ctx context.Context, name string) *int64 {
	c, err := uc.repo.GetCategoryByName(ctx, name)
	if err != nil || c == nil {
		return nil
	}
	return &c.ID
}

func toEntryResponse(e *entity.LedgerEntry) *dto.LedgerEntryResponse {
	return &dto.LedgerEntryResponse{
		ID:          e.ID,
		CreatedAt:   e.CreatedAt,
		Description: e.Description,
		Amount:      e.Amount,
		Direction:   e.Direction,
		Category:    e.Category,
		SaleID:      e.SaleID,
		UserName:    e.UserName,
	}
}
