package handler

import (
	"net/http"

	"maplehub/internal/delivery/http/response"
	"maplehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// crystalTotalRequest is the wire form of a crystal income calculation.
type crystalTotalRequest struct {
	Characters []usecase.CrystalSelection `json:"characters" validate:"required,min=1"`
}

// CalculatorHandler holds dependencies for the boss-loot calculator handlers.
type CalculatorHandler struct {
	uc usecase.CalculatorUsecase
}

// NewCalculatorHandler is the constructor for CalculatorHandler, injected by Fx.
func NewCalculatorHandler(uc usecase.CalculatorUsecase) *CalculatorHandler {
	return &CalculatorHandler{uc: uc}
}

// BossTable returns the boss crystal price table.
func (h *CalculatorHandler) BossTable(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.BossTable(), "Boss table retrieved successfully")
}

// CrystalTotal sums crystal income for the selected bosses per character.
func (h *CalculatorHandler) CrystalTotal(c echo.Context) error {
	var req crystalTotalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid crystal calculation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "At least one character selection is required")
	}

	return response.Success(c, http.StatusOK, h.uc.CrystalTotal(req.Characters), "Crystal total calculated successfully")
}

// Distribution splits an amount net of fee between people.
func (h *CalculatorHandler) Distribution(c echo.Context) error {
	var input usecase.DistributionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid distribution input")
	}

	output, err := h.uc.DistributionSplit(&input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Distribution calculated successfully")
}
