package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/application/fleet"
)

// FleetHandler flota y entregas (protegido).
type FleetHandler struct {
	uc *fleet.FleetUseCase
}

// NewFleetHandler construye el handler.
func NewFleetHandler(uc *fleet.FleetUseCase) *FleetHandler {
	return &FleetHandler{uc: uc}
}

// CreateVehicle godoc
// @Summary      Cadastrar veículo
// @Tags         fleet
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VehicleRequest  true  "Veículo"
// @Success      201  {object}  dto.VehicleResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/fleet/vehicles [post]
func (h *FleetHandler) CreateVehicle(c *fiber.Ctx) error {
	var in dto.VehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateVehicle(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListVehicles godoc
// @Summary      Listar veículos
// @Tags         fleet
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.VehicleResponse
// @Router       /api/fleet/vehicles [get]
func (h *FleetHandler) ListVehicles(c *fiber.Ctx) error {
	out, err := h.uc.ListVehicles(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateVehicle godoc
// @Summary      Atualizar veículo
// @Tags         fleet
// @Security     BearerAuth
// @Accept       json
// @Param        id    path  int  true  "ID do veículo"
// @Param        body  body  dto.VehicleRequest  true  "Veículo"
// @Success      200  {object}  dto.AffectedResponse
// @Router       /api/fleet/vehicles/{id} [put]
func (h *FleetHandler) UpdateVehicle(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.VehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	n, err := h.uc.UpdateVehicle(c.UserContext(), id, in)
	return affected(c, n, err)
}

// DeleteVehicle godoc
// @Summary      Excluir veículo
// @Tags         fleet
// @Security     BearerAuth
// @Param        id  path  int  true  "ID do veículo"
// @Success      200  {object}  dto.AffectedResponse
// @Router       /api/fleet/vehicles/{id} [delete]
func (h *FleetHandler) DeleteVehicle(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	n, err := h.uc.DeleteVehicle(c.UserContext(), id)
	return affected(c, n, err)
}

// ReleaseVehicle godoc
// @Summary      Liberar veículo (disponível)
// @Tags         fleet
// @Security     BearerAuth
// @Param        id  path  int  true  "ID do veículo"
// @Success      204
// @Router       /api/fleet/vehicles/{id}/release [post]
func (h *FleetHandler) ReleaseVehicle(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	if err := h.uc.ReleaseVehicle(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordMaintenance godoc
// @Summary      Registrar manutenção
// @Description  Também lança a saída no caixa em "Manutenção de Frota".
// @Tags         fleet
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do veículo"
// @Param        body  body  dto.MaintenanceRequest  true  "Manutenção"
// @Success      201  {object}  dto.MaintenanceResponse
// @Router       /api/fleet/vehicles/{id}/maintenance [post]
func (h *FleetHandler) RecordMaintenance(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.MaintenanceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RecordMaintenance(c.UserContext(), GetUserID(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMaintenance godoc
// @Summary      Histórico de manutenções
// @Tags         fleet
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "ID do veículo"
// @Success      200  {array}  dto.MaintenanceResponse
// @Router       /api/fleet/vehicles/{id}/maintenance [get]
func (h *FleetHandler) ListMaintenance(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	out, err := h.uc.ListMaintenance(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PendingDeliveries godoc
// @Summary      Entregas pendentes
// @Tags         fleet
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.PendingDeliveryResponse
// @Router       /api/fleet/deliveries [get]
func (h *FleetHandler) PendingDeliveries(c *fiber.Ctx) error {
	out, err := h.uc.ListPendingDeliveries(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Dispatch godoc
// @Summary      Criar romaneio de entrega
// @Tags         fleet
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DispatchRequest  true  "Veículo e vendas"
// @Success      200  {object}  dto.ManifestResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/fleet/dispatch [post]
func (h *FleetHandler) Dispatch(c *fiber.Ctx) error {
	var in dto.DispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Dispatch(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MarkDelivered godoc
// @Summary      Confirmar entrega
// @Tags         fleet
// @Security     BearerAuth
// @Param        id  path  int  true  "ID da venda"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/fleet/deliveries/{id}/delivered [post]
func (h *FleetHandler) MarkDelivered(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	if err := h.uc.MarkDelivered(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// EstimateFreight godoc
// @Summary      Estimar frete
// @Tags         fleet
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FreightEstimateRequest  true  "Distância (km) e peso (kg)"
// @Success      200  {object}  dto.FreightEstimateResponse
// @Router       /api/fleet/freight [post]
func (h *FleetHandler) EstimateFreight(c *fiber.Ctx) error {
	var in dto.FreightEstimateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	v, err := h.uc.EstimateFreight(in.DistanceKm, in.WeightKg)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FreightEstimateResponse{Freight: v})
}
