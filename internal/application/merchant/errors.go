package merchant

import (
	"errors"
	"fmt"
)

// Provider error codes.
const (
	CodeSystemError         = -32400
	CodeUnauthorized        = -32504
	CodeInvalidRequest      = -32600
	CodeMethodNotFound      = -32601
	CodeOrderNotFound       = -31050
	CodeInvalidAmount       = -31051
	CodeOrderExpired        = -31052
	CodeOrderAlreadyPaid    = -31053
	CodeCannotCancel        = -31060
	CodeTransactionNotFound = -31099
)

// LocalizedMessage is the ru/uz/en triple the provider shows to payers.
type LocalizedMessage struct {
	RU string `json:"ru"`
	UZ string `json:"uz"`
	EN string `json:"en"`
}

// Error is a protocol-level failure returned to the provider as a JSON-RPC error.
type Error struct {
	Code    int
	Message LocalizedMessage
	Data    string
}

func (e *Error) Error() string {
	if e.Data != "" {
		return fmt.Sprintf("merchant error %d: %s (%s)", e.Code, e.Message.EN, e.Data)
	}
	return fmt.Sprintf("merchant error %d: %s", e.Code, e.Message.EN)
}

var messages = map[int]LocalizedMessage{
	CodeSystemError:         {RU: "Системная ошибка", UZ: "Tizim xatosi", EN: "System error"},
	CodeUnauthorized:        {RU: "Недостаточно привилегий", UZ: "Huquqlar yetarli emas", EN: "Insufficient privileges"},
	CodeInvalidRequest:      {RU: "Неверный JSON-RPC объект", UZ: "Noto'g'ri JSON-RPC obyekt", EN: "Invalid JSON-RPC object"},
	CodeMethodNotFound:      {RU: "Метод не найден", UZ: "Metod topilmadi", EN: "Method not found"},
	CodeOrderNotFound:       {RU: "Заказ не найден", UZ: "Buyurtma topilmadi", EN: "Order not found"},
	CodeInvalidAmount:       {RU: "Неверная сумма", UZ: "Noto'g'ri summa", EN: "Invalid amount"},
	CodeOrderExpired:        {RU: "Заказ просрочен", UZ: "Buyurtma muddati o'tgan", EN: "Order expired"},
	CodeOrderAlreadyPaid:    {RU: "Заказ уже оплачен", UZ: "Buyurtma allaqachon to'langan", EN: "Order already paid"},
	CodeCannotCancel:        {RU: "Невозможно отменить транзакцию", UZ: "Tranzaksiyani bekor qilib bo'lmaydi", EN: "Cannot cancel transaction"},
	CodeTransactionNotFound: {RU: "Транзакция не найдена", UZ: "Tranzaksiya topilmadi", EN: "Transaction not found"},
}

// MessageFor returns the localized text for code, or fallback in all three
// languages when the code has no entry.
func MessageFor(code int, fallback string) LocalizedMessage {
	if m, ok := messages[code]; ok {
		return m
	}
	return LocalizedMessage{RU: fallback, UZ: fallback, EN: fallback}
}

func NewError(code int, data string) *Error {
	return &Error{Code: code, Message: MessageFor(code, "Error"), Data: data}
}

func newErrorWithMessage(code int, msg LocalizedMessage, data string) *Error {
	return &Error{Code: code, Message: msg, Data: data}
}

func errOrderIDMissing() *Error   { return NewError(CodeOrderNotFound, "order_id") }
func errOrderNotFound() *Error    { return NewError(CodeOrderNotFound, "order_id") }
func errInvalidAmount() *Error    { return NewError(CodeInvalidAmount, "amount") }
func errOrderExpired() *Error     { return NewError(CodeOrderExpired, "order_id") }
func errOrderAlreadyPaid() *Error { return NewError(CodeOrderAlreadyPaid, "order_id") }
func errTxNotFound() *Error       { return NewError(CodeTransactionNotFound, "id") }
func errCannotCancel() *Error     { return NewError(CodeCannotCancel, "id") }

func errTxInvalidState() *Error {
	return newErrorWithMessage(CodeTransactionNotFound, LocalizedMessage{
		RU: "Неверное состояние транзакции",
		UZ: "Tranzaksiya holati noto'g'ri",
		EN: "Transaction in invalid state",
	}, "id")
}

func errOrderBusy() *Error {
	return newErrorWithMessage(CodeOrderNotFound, LocalizedMessage{
		RU: "Для заказа уже есть активная транзакция",
		UZ: "Buyurtma uchun faol tranzaksiya mavjud",
		EN: "Another transaction in progress for this order",
	}, "order_id")
}

// AsError extracts a protocol error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
