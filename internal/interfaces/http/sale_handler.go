package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/application/sales"
)

// SaleHandler PDV, historial y comprobantes (protegido).
type SaleHandler struct {
	checkout *sales.CheckoutUseCase
	history  *sales.HistoryUseCase
	receipts *sales.ReceiptUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(checkout *sales.CheckoutUseCase, history *sales.HistoryUseCase, receipts *sales.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{checkout: checkout, history: history, receipts: receipts}
}

// Checkout godoc
// @Summary      Finalizar venda
// @Description  Revalida o estoque e grava venda, itens e baixa numa única transação.
// @Tags         sales
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Carrinho e pagamento"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	sess, ok := GetSession(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sessão ausente"})
	}
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.checkout.Checkout(c.UserContext(), sess, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Histórico de vendas
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.SaleSummaryResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.history.ListSales(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalhe da venda
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "ID da venda"
// @Success      200  {object}  dto.SaleDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	out, err := h.history.GetSale(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Baixar comprovante PDF
// @Tags         sales
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        id  path  int  true  "ID da venda"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	data, err := h.receipts.Render(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="venda_%d.pdf"`, id))
	return c.Send(data)
}
