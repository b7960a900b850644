package repository

import (
	"context"

	"github.com/jhoicas/sys360/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client (DIP).
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	GetByCPFCNPJ(ctx context.Context, doc string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]*entity.Client, error)
	SearchByName(ctx context.Context, term string) ([]*entity.Client, error)
}
