package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"github.com/jhoicas/sys360/pkg/logger"
	"github.com/jhoicas/sys360/pkg/validator"
)

// ProductUseCase casos de uso CRUD del catálogo.
type ProductUseCase struct {
	repo         repository.ProductRepository
	v            *validator.DefaultValidator
	log          *logger.Logger
	lowThreshold int
}

// NewProductUseCase construye el caso de uso. lowThreshold marca LowStock en las respuestas.
func NewProductUseCase(repo repository.ProductRepository, lowThreshold int, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, v: validator.MustNew(), log: log.Named("products"), lowThreshold: lowThreshold}
}

// Create crea un producto. Nombre repetido devuelve ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Supplier = strings.TrimSpace(in.Supplier)
	if err := uc.v.Validate(in); err != nil {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "%s", validator.Message(err))
	}
	if in.SellPrice.IsNegative() || in.CostPrice.IsNegative() {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Preços não podem ser negativos")
	}
	p := &entity.Product{
		Name:      in.Name,
		Quantity:  in.Quantity,
		SellPrice: in.SellPrice.Round(2),
		CostPrice: in.CostPrice.Round(2),
		Category:  in.Category,
		Supplier:  in.Supplier,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("product_id", p.ID).Str("name", p.Name).Msg("produto cadastrado")
	return uc.toResponse(p), nil
}

// GetByID obtiene un producto; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(p), nil
}

// Update aplica los campos presentes y devuelve las filas afectadas.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (int64, error) {
	if err := uc.v.Validate(in); err != nil {
		return 0, domain.NewValidationError(domain.ErrInvalidInput, "%s", validator.Message(err))
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, nil
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if in.SellPrice != nil {
		if in.SellPrice.IsNegative() {
			return 0, domain.NewValidationError(domain.ErrInvalidInput, "Preço de venda não pode ser negativo")
		}
		p.SellPrice = in.SellPrice.Round(2)
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return 0, domain.NewValidationError(domain.ErrInvalidInput, "Preço de custo não pode ser negativo")
		}
		p.CostPrice = in.CostPrice.Round(2)
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if in.Supplier != nil {
		p.Supplier = strings.TrimSpace(*in.Supplier)
	}
	if p.Name == "" || p.Category == "" || p.Supplier == "" {
		return 0, domain.NewValidationError(domain.ErrInvalidInput, "Nome, categoria e fornecedor são obrigatórios")
	}
	return uc.repo.Update(ctx, p)
}

// Delete elimina un producto. Con ventas asociadas devuelve ErrConflict.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (int64, error) {
	return uc.repo.Delete(ctx, id)
}

// List lista por nombre. Falla del store degrada a lista vacía.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("listar produtos")
		return &dto.ProductListResponse{Items: []dto.ProductResponse{}}, nil
	}
	return uc.toList(list), nil
}

// Search busca por parte del nombre. Término vacío devuelve todo; sin coincidencias ErrNotFound.
func (uc *ProductUseCase) Search(ctx context.Context, term string) (*dto.ProductListResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return uc.List(ctx)
	}
	list, err := uc.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}
	return uc.toList(list), nil
}

// LowStock productos con stock por debajo de threshold (<=0 usa el configurado).
func (uc *ProductUseCase) LowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error) {
	if threshold <= 0 {
		threshold = uc.lowThreshold
	}
	list, err := uc.repo.ListLowStock(ctx, threshold)
	if err != nil {
		uc.log.Warn().Err(err).Msg("estoque baixo")
		return []dto.ProductResponse{}, nil
	}
	return uc.toList(list).Items, nil
}

func (uc *ProductUseCase) toList(list []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *uc.toResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Quantity:  p.Quantity,
		SellPrice: p.SellPrice,
		CostPrice: p.CostPrice,
		Category:  p.Category,
		Supplier:  p.Supplier,
		LowStock:  p.IsLowStock(uc.lowThreshold),
	}
}
