// Package payme serves the merchant JSON-RPC endpoint the payment provider
// calls. Every response is HTTP 200; failures travel in the JSON-RPC error.
package payme

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/texnokross/texnokross/internal/application/merchant"
	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
	"github.com/texnokross/texnokross/internal/shared/logger"
)

// Login is the fixed Basic auth user the provider sends with every call.
const Login = "Paycom"

// MerchantService is the state machine the dispatcher drives.
type MerchantService interface {
	CheckPerformTransaction(ctx context.Context, orderID string, amount vo.Tiyin) (*merchant.CheckPerformResult, error)
	CreateTransaction(ctx context.Context, cmd merchant.CreateTransactionCommand) (*merchant.CreateTransactionResult, error)
	PerformTransaction(ctx context.Context, paymeID string) (*merchant.PerformTransactionResult, error)
	CancelTransaction(ctx context.Context, paymeID string, reason vo.CancelReason) (*merchant.CancelTransactionResult, error)
	CheckTransaction(ctx context.Context, paymeID string) (*merchant.CheckTransactionResult, error)
	GetStatement(ctx context.Context, from, to vo.EpochMillis) (*merchant.StatementResult, error)
}

type Handler struct {
	service MerchantService
	secret  string
	logger  logger.Interface
	methods map[string]methodFunc
}

type methodFunc func(ctx context.Context, params json.RawMessage) (any, error)

// errInvalidParams marks params that could not be decoded.
var errInvalidParams = errors.New("invalid params")

// NewHandler authenticates calls with the active merchant secret. An empty
// secret rejects every call.
func NewHandler(service MerchantService, secret string, log logger.Interface) *Handler {
	h := &Handler{
		service: service,
		secret:  secret,
		logger:  log,
	}
	h.methods = map[string]methodFunc{
		"CheckPerformTransaction": h.checkPerformTransaction,
		"CreateTransaction":       h.createTransaction,
		"PerformTransaction":      h.performTransaction,
		"CancelTransaction":       h.cancelTransaction,
		"CheckTransaction":        h.checkTransaction,
		"GetStatement":            h.getStatement,
	}
	return h
}

// Handle is the POST /api/payme endpoint.
func (h *Handler) Handle(c *gin.Context) {
	var id json.RawMessage
	defer func() {
		if r := recover(); r != nil {
			h.logger.Errorw("merchant rpc panicked", "panic", r)
			h.respondError(c, id, merchant.NewError(merchant.CodeSystemError, ""))
		}
	}()

	if !h.authorized(c.GetHeader("Authorization")) {
		h.logger.Warnw("merchant rpc unauthorized", "client_ip", c.ClientIP())
		h.respondError(c, nil, merchant.NewError(merchant.CodeUnauthorized, ""))
		return
	}

	var req rpcRequest
	if err := decodeRequest(c.Request.Body, &req); err != nil || req.Method == "" {
		h.respondError(c, req.ID, merchant.NewError(merchant.CodeInvalidRequest, ""))
		return
	}
	id = req.ID

	method, ok := h.methods[req.Method]
	if !ok {
		h.respondError(c, id, merchant.NewError(merchant.CodeMethodNotFound, ""))
		return
	}

	h.logger.Infow("merchant rpc call", "method", req.Method)

	result, err := method(c.Request.Context(), req.Params)
	if err != nil {
		if errors.Is(err, errInvalidParams) {
			h.logger.Warnw("merchant rpc invalid params", "method", req.Method, "error", err)
			h.respondError(c, id, merchant.NewError(merchant.CodeInvalidRequest, ""))
			return
		}
		if me, ok := merchant.AsError(err); ok {
			h.logger.Infow("merchant rpc rejected", "method", req.Method, "code", me.Code)
			h.respondError(c, id, me)
			return
		}
		h.logger.Errorw("merchant rpc failed", "method", req.Method, "error", err)
		h.respondError(c, id, merchant.NewError(merchant.CodeSystemError, ""))
		return
	}

	c.JSON(http.StatusOK, rpcResponse{JSONRPC: jsonRPCVersion, ID: normalizeID(id), Result: result})
}

func (h *Handler) respondError(c *gin.Context, id json.RawMessage, e *merchant.Error) {
	c.JSON(http.StatusOK, rpcResponse{JSONRPC: jsonRPCVersion, ID: normalizeID(id), Error: toRPCError(e)})
}

// authorized checks "Basic base64(login:secret)" in constant time.
func (h *Handler) authorized(header string) bool {
	const prefix = "Basic "
	if h.secret == "" || !strings.HasPrefix(header, prefix) {
		return false
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return false
	}
	login, password, ok := strings.Cut(string(raw), ":")
	if !ok {
		return false
	}
	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(Login)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(password), []byte(h.secret)) == 1
	return loginOK && secretOK
}

func normalizeID(id json.RawMessage) json.RawMessage {
	if len(id) == 0 {
		return json.RawMessage("null")
	}
	return id
}

func decodeRequest(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return dec.Decode(v)
}

func decodeParams(raw json.RawMessage, v any) error {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return fmt.Errorf("%w: missing params", errInvalidParams)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidParams, err)
	}
	return nil
}

// integer accepts whole JSON numbers, including forms like 1e7 or 100.0.
func integer(n *json.Number, field string) (int64, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: %s is required", errInvalidParams, field)
	}
	if v, err := n.Int64(); err == nil {
		return v, nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%w: %s must be an integer", errInvalidParams, field)
	}
	return int64(f), nil
}
