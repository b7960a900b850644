package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/application/usecase"
)

// ClientHandler maneja clientes (protegido).
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar cliente
// @Tags         clients
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClientRequest  true  "Dados do cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.ClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ou buscar clientes
// @Tags         clients
// @Security     BearerAuth
// @Produce      json
// @Param        q  query  string  false  "Parte do nome"
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter cliente
// @Tags         clients
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "ID do cliente"
// @Success      200  {object}  dto.ClientResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar cliente
// @Tags         clients
// @Security     BearerAuth
// @Accept       json
// @Param        id    path  int  true  "ID do cliente"
// @Param        body  body  dto.ClientRequest  true  "Dados do cliente"
// @Success      200  {object}  dto.AffectedResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.ClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	n, err := h.uc.Update(c.UserContext(), id, in)
	return affected(c, n, err)
}

// Delete godoc
// @Summary      Excluir cliente
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  int  true  "ID do cliente"
// @Success      200  {object}  dto.AffectedResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	n, err := h.uc.Delete(c.UserContext(), id)
	return affected(c, n, err)
}
