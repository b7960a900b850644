package repository

import (
	"context"

	"github.com/jhoicas/sys360/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByLogin(ctx context.Context, login string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
