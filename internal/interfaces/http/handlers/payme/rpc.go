package payme

import (
	"encoding/json"

	"github.com/texnokross/texnokross/internal/application/merchant"
)

const jsonRPCVersion = "2.0"

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

type rpcError struct {
	Code    int                       `json:"code"`
	Message merchant.LocalizedMessage `json:"message"`
	Data    *string                   `json:"data"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

func toRPCError(e *merchant.Error) *rpcError {
	out := &rpcError{Code: e.Code, Message: e.Message}
	if e.Data != "" {
		data := e.Data
		out.Data = &data
	}
	return out
}

type account struct {
	OrderID string `json:"order_id"`
}

type checkPerformParams struct {
	Amount  *json.Number `json:"amount"`
	Account account      `json:"account"`
}

type createParams struct {
	ID      string       `json:"id"`
	Time    *json.Number `json:"time"`
	Amount  *json.Number `json:"amount"`
	Account account      `json:"account"`
}

type transactionParams struct {
	ID string `json:"id"`
}

type cancelParams struct {
	ID     string       `json:"id"`
	Reason *json.Number `json:"reason"`
}

type statementParams struct {
	From *json.Number `json:"from"`
	To   *json.Number `json:"to"`
}
