package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/domain/entity"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Gestão de usuários",
}

var (
	userName     string
	userLogin    string
	userPassword string
	userRole     string
)

// sys360ctl user create --name ... --login ... --password ... --role admin|funcionario
var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Cadastra um usuário",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()
		u, err := c.AuthUC.RegisterUser(cmd.Context(), dto.RegisterUserRequest{
			Name:     userName,
			Login:    userLogin,
			Password: userPassword,
			Role:     userRole,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Usuário %s criado (id %d, perfil %s)\n", u.Login, u.ID, u.Role)
		return nil
	},
}

func init() {
	f := userCreateCmd.Flags()
	f.StringVar(&userName, "name", "", "nome completo")
	f.StringVar(&userLogin, "login", "", "login")
	f.StringVar(&userPassword, "password", "", "senha")
	f.StringVar(&userRole, "role", entity.RoleFuncionario, "perfil: admin|funcionario")
	_ = userCreateCmd.MarkFlagRequired("name")
	_ = userCreateCmd.MarkFlagRequired("login")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
}
