package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/application/usecase"
)

// CompanyHandler datos de la empresa (configuración).
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Get godoc
// @Summary      Dados da empresa
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.CompanySettingsResponse
// @Router       /api/settings/company [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Salvar dados da empresa (admin)
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompanySettingsRequest  true  "Dados da empresa"
// @Success      200  {object}  dto.CompanySettingsResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/settings/company [put]
func (h *CompanyHandler) Save(c *fiber.Ctx) error {
	var in dto.CompanySettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
