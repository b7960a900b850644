package auth_test

import (
	"context"
	"testing"

	"github.com/jhoicas/sys360/internal/application/auth"
	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/testutil"
	pkgjwt "github.com/jhoicas/sys360/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDefaultAdmin_Idempotente(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()

	// NewContainer ya aplicó el seed.
	created, err := c.AuthUC.EnsureDefaultAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	users, err := c.AuthUC.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, auth.DefaultAdminLogin, users[0].Login)
	assert.Equal(t, entity.RoleAdmin, users[0].Role)
}

func TestRegisterUser(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()

	u, err := c.AuthUC.RegisterUser(ctx, dto.RegisterUserRequest{Name: " Maria ", Login: "maria", Password: "1234", Role: entity.RoleFuncionario})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "Maria", u.Name)

	_, err = c.AuthUC.RegisterUser(ctx, dto.RegisterUserRequest{Name: "Outra", Login: "maria", Password: "abcd", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = c.AuthUC.RegisterUser(ctx, dto.RegisterUserRequest{Name: "X", Login: "x", Password: "1234", Role: "gerente"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = c.AuthUC.RegisterUser(ctx, dto.RegisterUserRequest{Name: "X", Login: "x", Password: "12", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = c.AuthUC.RegisterUser(ctx, dto.RegisterUserRequest{Login: "y", Password: "1234", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrValidation)

	users, err := c.AuthUC.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestVerifyLogin(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()

	sess, err := c.AuthUC.VerifyLogin(ctx, "admin", "admin")
	require.NoError(t, err)
	assert.True(t, sess.IsAdmin())

	_, err = c.AuthUC.VerifyLogin(ctx, "admin", "errada")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = c.AuthUC.VerifyLogin(ctx, "ninguem", "admin")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_TokenYMenus(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	_, err := c.AuthUC.RegisterUser(ctx, dto.RegisterUserRequest{Name: "Caixa", Login: "caixa", Password: "1234", Role: entity.RoleFuncionario})
	require.NoError(t, err)

	res, err := c.AuthUC.Login(ctx, dto.LoginRequest{Login: "caixa", Password: "1234"})
	require.NoError(t, err)
	assert.NotContains(t, res.Menus, auth.MenuUsers)
	assert.NotContains(t, res.Menus, auth.MenuSettings)
	assert.Contains(t, res.Menus, auth.MenuSales)

	claims, err := pkgjwt.Parse(testutil.JWTSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, entity.RoleFuncionario, claims.Role)
}

func TestChangePassword(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	id := testutil.AdminID(t, c)

	require.NoError(t, c.AuthUC.ChangePassword(ctx, id, "nova-senha"))
	_, err := c.AuthUC.VerifyLogin(ctx, "admin", "admin")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = c.AuthUC.VerifyLogin(ctx, "admin", "nova-senha")
	assert.NoError(t, err)

	assert.ErrorIs(t, c.AuthUC.ChangePassword(ctx, 9999, "qualquer"), domain.ErrNotFound)
	assert.ErrorIs(t, c.AuthUC.ChangePassword(ctx, id, "1"), domain.ErrValidation)
}

func TestDeleteUser(t *testing.T) {
	c := testutil.NewContainer(t)
	ctx := context.Background()
	admin := auth.Session{UserID: testutil.AdminID(t, c), Role: entity.RoleAdmin}
	u, err := c.AuthUC.RegisterUser(ctx, dto.RegisterUserRequest{Name: "Temp", Login: "temp", Password: "1234", Role: entity.RoleFuncionario})
	require.NoError(t, err)

	err = c.AuthUC.DeleteUser(ctx, admin, admin.UserID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, c.AuthUC.DeleteUser(ctx, admin, u.ID))
	assert.ErrorIs(t, c.AuthUC.DeleteUser(ctx, admin, u.ID), domain.ErrNotFound)
}
