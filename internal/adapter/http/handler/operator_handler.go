package handler

import (
	"strconv"

	"vending-machine/internal/adapter/http/dto"
	"vending-machine/internal/core/domain"
	"vending-machine/internal/core/ports"
	"vending-machine/pkg/apperror"
	"vending-machine/pkg/response"

	"github.com/gin-gonic/gin"
)

// OperatorHandler serves maintenance endpoints.
type OperatorHandler struct {
	operator ports.OperatorService
	machine  ports.MachineService
}

// NewOperatorHandler creates a new OperatorHandler.
func NewOperatorHandler(operator ports.OperatorService, machine ports.MachineService) *OperatorHandler {
	return &OperatorHandler{operator: operator, machine: machine}
}

// Login handles POST /api/v1/operator/login.
func (h *OperatorHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, expiry, err := h.operator.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// CoinCounts handles GET /api/v1/operator/coins.
func (h *OperatorHandler) CoinCounts(c *gin.Context) {
	response.OK(c, dto.FromCoinCounts(h.operator.CoinCounts()))
}

// LoadCoins handles POST /api/v1/operator/coins.
func (h *OperatorHandler) LoadCoins(c *gin.Context) {
	var req dto.LoadCoinsRequest
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
	if err := h.operator.LoadCoins(coin, req.Count); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromCoinCounts(h.operator.CoinCounts()))
}

// Shelves handles GET /api/v1/operator/shelves.
func (h *OperatorHandler) Shelves(c *gin.Context) {
	response.OK(c, dto.FromShelves(h.operator.Shelves()))
}

// Restock handles POST /api/v1/operator/shelves/:id/restock.
func (h *OperatorHandler) Restock(c *gin.Context) {
	shelfID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("shelf id must be a number"))
		return
	}

	var req dto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := h.operator.Restock(shelfID, req.Count); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromShelves(h.operator.Shelves()))
}

// Transactions handles GET /api/v1/operator/transactions.
func (h *OperatorHandler) Transactions(c *gin.Context) {
	response.OK(c, dto.FromHistory(h.machine.TransactionHistory()))
}
