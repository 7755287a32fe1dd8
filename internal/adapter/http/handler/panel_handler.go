package handler

import (
	"vending-machine/internal/adapter/http/dto"
	"vending-machine/internal/core/domain"
	"vending-machine/internal/core/ports"
	"vending-machine/pkg/apperror"
	"vending-machine/pkg/response"

	"github.com/gin-gonic/gin"
)

// Screen exposes the message currently shown on the panel display.
type Screen interface {
	Last() string
}

// PanelHandler serves the customer-facing front panel.
type PanelHandler struct {
	machine ports.MachineService
	screen  Screen
}

// NewPanelHandler creates a new PanelHandler.
func NewPanelHandler(machine ports.MachineService, screen Screen) *PanelHandler {
	return &PanelHandler{machine: machine, screen: screen}
}

// SelectShelf handles POST /api/v1/panel/select.
func (h *PanelHandler) SelectShelf(c *gin.Context) {
	var req dto.SelectShelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	sel, err := h.machine.SelectShelf(c.Request.Context(), *req.ShelfID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SelectionResponse{
		Product:     dto.FromProduct(sel.Product),
		ShelfEmpty:  sel.ShelfEmpty,
		Resumed:     sel.Resumed,
		Transaction: dto.FromTransaction(sel.Transaction),
		Display:     h.screen.Last(),
	})
}

// InsertCoin handles POST /api/v1/panel/coins.
func (h *PanelHandler) InsertCoin(c *gin.Context) {
	var req dto.InsertCoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	coin, err := domain.ParseDenomination(req.Denomination)
	if err != nil {
		response.Error(c, apperror.ErrUnknownDenomination(req.Denomination))
		return
	}

	ins, err := h.machine.InsertCoin(c.Request.Context(), coin)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.InsertionResponse{
		Accepted:    ins.Accepted,
		AmountDue:   ins.AmountDue.String(),
		Transaction: dto.FromTransaction(ins.Transaction),
		Display:     h.screen.Last(),
	})
}

// Cancel handles POST /api/v1/panel/cancel.
func (h *PanelHandler) Cancel(c *gin.Context) {
	res, err := h.machine.Cancel(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CancellationResponse{
		Canceled:    res.Canceled,
		Transaction: dto.FromTransaction(res.Transaction),
		Display:     h.screen.Last(),
	})
}

// CurrentTransaction handles GET /api/v1/panel/transaction. Data is null when idle.
func (h *PanelHandler) CurrentTransaction(c *gin.Context) {
	response.OK(c, dto.FromTransaction(h.machine.CurrentTransaction()))
}

// Display handles GET /api/v1/panel/display.
func (h *PanelHandler) Display(c *gin.Context) {
	response.OK(c, dto.DisplayResponse{Message: h.screen.Last()})
}
