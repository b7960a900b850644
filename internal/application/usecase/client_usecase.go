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

// ClientUseCase casos de uso CRUD de clientes. CPF/CNPJ se guarda solo con dígitos.
type ClientUseCase struct {
	repo repository.ClientRepository
	v    *validator.DefaultValidator
	log  *logger.Logger
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, log *logger.Logger) *ClientUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ClientUseCase{repo: repo, v: validator.MustNew(), log: log.Named("clients")}
}

func (uc *ClientUseCase) normalize(in dto.ClientRequest) (dto.ClientRequest, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	if err := uc.v.Validate(in); err != nil {
		return in, domain.NewValidationError(domain.ErrInvalidInput, "%s", validator.Message(err))
	}
	in.CPFCNPJ = validator.Digits(in.CPFCNPJ)
	return in, nil
}

// Create crea un cliente. CPF/CNPJ repetido devuelve ErrDuplicate.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.ClientRequest) (*dto.ClientResponse, error) {
	in, err := uc.normalize(in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCPFCNPJ(ctx, in.CPFCNPJ)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	c := &entity.Client{Name: in.Name, Phone: in.Phone, Email: in.Email, CPFCNPJ: in.CPFCNPJ, Address: in.Address}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("client_id", c.ID).Msg("cliente cadastrado")
	return toClientResponse(c), nil
}

// GetByID obtiene un cliente; ErrNotFound si no existe.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(c), nil
}

// Update reemplaza los datos del cliente y devuelve filas afectadas.
func (uc *ClientUseCase) Update(ctx context.Context, id int64, in dto.ClientRequest) (int64, error) {
	in, err := uc.normalize(in)
	if err != nil {
		return 0, err
	}
	c := &entity.Client{ID: id, Name: in.Name, Phone: in.Phone, Email: in.Email, CPFCNPJ: in.CPFCNPJ, Address: in.Address}
	return uc.repo.Update(ctx, c)
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(ctx context.Context, id int64) (int64, error) {
	return uc.repo.Delete(ctx, id)
}

// List clientes por nombre. Falla del store degrada a lista vacía.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("listar clientes")
		return []dto.ClientResponse{}, nil
	}
	return toClientList(list), nil
}

// Search busca por parte del nombre. Término vacío devuelve todo; sin coincidencias ErrNotFound.
func (uc *ClientUseCase) Search(ctx context.Context, term string) ([]dto.ClientResponse, error) {
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
	return toClientList(list), nil
}

func toClientList(list []*entity.Client) []dto.ClientResponse {
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		CPFCNPJ:      c.CPFCNPJ,
		DocumentKind: c.DocumentKind(),
		Address:      c.Address,
	}
}
