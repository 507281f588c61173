package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/texnokross/texnokross/internal/application/paymentlink"
	"github.com/texnokross/texnokross/internal/interfaces/dto"
	apperrors "github.com/texnokross/texnokross/internal/shared/errors"
	"github.com/texnokross/texnokross/internal/shared/logger"
	"github.com/texnokross/texnokross/internal/shared/utils"
)

type PaymentHandler struct {
	links       PaymentLinkBuilder
	orders      OrderLookup
	frontendURL string
	logger      logger.Interface
}

func NewPaymentHandler(links PaymentLinkBuilder, orders OrderLookup, frontendURL string, log logger.Interface) *PaymentHandler {
	return &PaymentHandler{
		links:       links,
		orders:      orders,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		logger:      log,
	}
}

// CreatePayment handles POST /api/create-payment.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "order_id and amount required")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	link, err := h.links.Build(req.OrderID, req.Amount, req.ReturnURL)
	if err != nil {
		if errors.Is(err, paymentlink.ErrPaymentNotConfigured) {
			h.logger.Errorw("payment link requested but merchant id is not configured")
			utils.ErrorResponseWithError(c, apperrors.NewUnavailableError("Payment system not configured"))
			return
		}
		h.logger.Errorw("failed to build payment link", "order_id", req.OrderID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("payment link created", "order_id", link.OrderID, "amount", link.Amount)
	utils.SuccessResponse(c, http.StatusOK, "", dto.CreatePaymentResponse{
		PaymentURL:  link.URL,
		OrderID:     link.OrderID,
		Amount:      link.Amount,
		AmountTiyin: link.AmountTiyin.Int64(),
	})
}

// Callback handles GET /api/payment/callback, the page the payer returns to.
func (h *PaymentHandler) Callback(c *gin.Context) {
	orderID := c.Query("order_id")
	if orderID == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	o, err := h.orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if !apperrors.IsNotFoundError(err) {
			h.logger.Warnw("payment callback lookup failed", "order_id", orderID, "error", err)
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	target := h.frontendURL + "/?payment_status=" + url.QueryEscape(o.PaymentStatus().String()) +
		"&order_id=" + url.QueryEscape(o.ID())
	c.Redirect(http.StatusFound, target)
}
