package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/texnokross/texnokross/internal/interfaces/dto"
	"github.com/texnokross/texnokross/internal/shared/logger"
	"github.com/texnokross/texnokross/internal/shared/utils"
)

type OrderHandler struct {
	service OrderService
	logger  logger.Interface
}

func NewOrderHandler(service OrderService, log logger.Interface) *OrderHandler {
	return &OrderHandler{service: service, logger: log}
}

// CreateOrder handles POST /api/orders.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid order payload", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	o, err := h.service.CreateOrder(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCreateOrderResponse(o))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToOrderResponse(o))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	list, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list orders", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToOrderResponses(list))
}

// MarkDelivered handles POST /api/orders/:id/delivered.
func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	o, err := h.service.MarkDelivered(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "order delivered", dto.ToOrderResponse(o))
}
