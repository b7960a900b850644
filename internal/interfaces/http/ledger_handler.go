package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/application/finance"
)

// LedgerHandler libro de caja (protegido).
type LedgerHandler struct {
	uc *finance.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *finance.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// Record godoc
// @Summary      Lançamento manual
// @Tags         ledger
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LedgerEntryRequest  true  "Lançamento"
// @Success      201   {object}  dto.LedgerEntryResponse
// @Router       /api/ledger [post]
func (h *LedgerHandler) Record(c *fiber.Ctx) error {
	var in dto.LedgerEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	var userID *int64
	if id := GetUserID(c); id > 0 {
		userID = &id
	}
	out, err := h.uc.RecordEntry(c.UserContext(), finance.EntryInput{
		Description: in.Description,
		Amount:      in.Amount,
		Direction:   in.Direction,
		UserID:      userID,
		CategoryID:  in.CategoryID,
		SaleID:      in.SaleID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lançamentos (mais recentes primeiro)
// @Tags         ledger
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.LedgerEntryResponse
// @Router       /api/ledger [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListEntries(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Balance godoc
// @Summary      Saldo do caixa
// @Tags         ledger
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.BalanceResponse
// @Router       /api/ledger/balance [get]
func (h *LedgerHandler) Balance(c *fiber.Ctx) error {
	out, err := h.uc.Balance(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListCategories godoc
// @Summary      Categorias
// @Tags         ledger
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/ledger/categories [get]
func (h *LedgerHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateCategory godoc
// @Summary      Nova categoria
// @Tags         ledger
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "Categoria"
// @Success      201  {object}  dto.CategoryResponse
// @Router       /api/ledger/categories [post]
func (h *LedgerHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateCategory(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
