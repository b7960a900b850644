package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"gorm.io/gorm"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre SQLite.
type ClientRepo struct {
	db *gorm.DB
}

// NewClientRepository construye el adaptador.
func NewClientRepository(db *gorm.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

// Create persiste el cliente. CPF/CNPJ repetido devuelve domain.ErrDuplicate.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	row := clientToRow(client)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if e := translate(err); e != err {
			return e
		}
		return fmt.Errorf("insert client: %w", err)
	}
	client.ID = row.ID
	return nil
}

func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByCPFCNPJ busca por documento (ya normalizado a dígitos).
func (r *ClientRepo) GetByCPFCNPJ(ctx context.Context, doc string) (*entity.Client, error) {
	return r.first(ctx, "cpf_cnpj = ?", doc)
}

func (r *ClientRepo) first(ctx context.Context, where string, arg interface{}) (*entity.Client, error) {
	var row clientRow
	err := r.db.WithContext(ctx).Where(where, arg).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return row.toEntity(), nil
}

func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) (int64, error) {
	res := r.db.WithContext(ctx).Model(&clientRow{}).Where("id = ?", client.ID).Updates(map[string]interface{}{
		"name":     client.Name,
		"phone":    client.Phone,
		"email":    client.Email,
		"cpf_cnpj": client.CPFCNPJ,
		"address":  client.Address,
	})
	if res.Error != nil {
		if e := translate(res.Error); e != res.Error {
			return 0, e
		}
		return 0, fmt.Errorf("update client: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *ClientRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&clientRow{})
	if res.Error != nil {
		if e := translate(res.Error); e != res.Error {
			return 0, e
		}
		return 0, fmt.Errorf("delete client: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	var rows []clientRow
	if err := r.db.WithContext(ctx).Order("name COLLATE NOCASE").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return toClients(rows), nil
}

func (r *ClientRepo) SearchByName(ctx context.Context, term string) ([]*entity.Client, error) {
	var rows []clientRow
	err := r.db.WithContext(ctx).
		Where(`name LIKE ? ESCAPE '\'`, likePattern(term)).
		Order("name COLLATE NOCASE").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	return toClients(rows), nil
}

func toClients(rows []clientRow) []*entity.Client {
	out := make([]*entity.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out
}
