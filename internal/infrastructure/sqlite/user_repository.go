package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"gorm.io/gorm"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre SQLite.
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepository construye el adaptador.
func NewUserRepository(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste el usuario. Login repetido devuelve domain.ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	row := userRow{Name: user.Name, Login: user.Login, PasswordHash: user.PasswordHash, Role: user.Role}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = row.ID
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepo) GetByLogin(ctx context.Context, login string) (*entity.User, error) {
	return r.first(ctx, "login = ?", login)
}

func (r *UserRepo) first(ctx context.Context, where string, arg interface{}) (*entity.User, error) {
	var row userRow
	err := r.db.WithContext(ctx).Where(where, arg).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return row.toEntity(), nil
}

// List usuarios por nombre.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	var rows []userRow
	if err := r.db.WithContext(ctx).Order("name COLLATE NOCASE").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, hash string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", id).Update("password_hash", hash)
	if res.Error != nil {
		return 0, fmt.Errorf("update password: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Delete elimina un usuario. Con ventas o movimientos asociados devuelve domain.ErrConflict.
func (r *UserRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&userRow{})
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return 0, domain.ErrConflict
		}
		return 0, fmt.Errorf("delete user: %w", res.Error)
	}
	return res.RowsAffected, nil
}
