package valueobjects

// TransactionState follows the provider's numbering.
type TransactionState int

const (
	StateCreated               TransactionState = 1
	StatePerformed             TransactionState = 2
	StateCancelled             TransactionState = -1
	StateCancelledAfterPerform TransactionState = -2
)

func (s TransactionState) IsCancelled() bool {
	return s < 0
}

func (s TransactionState) IsValid() bool {
	switch s {
	case StateCreated, StatePerformed, StateCancelled, StateCancelledAfterPerform:
		return true
	default:
		return false
	}
}

func (s TransactionState) Int() int {
	return int(s)
}

// CancelReason is the provider-supplied cancellation code.
type CancelReason int

const (
	ReasonRecipientError      CancelReason = 1
	ReasonTransactionDetails  CancelReason = 2
	ReasonCancelledByUser     CancelReason = 3
	ReasonPerformError        CancelReason = 4
	ReasonCancelledByCustomer CancelReason = 5
)

var reasonTexts = map[CancelReason]string{
	ReasonRecipientError:      "Ошибка получателя",
	ReasonTransactionDetails:  "Ошибка в деталях транзакции",
	ReasonCancelledByUser:     "Отменено пользователем",
	ReasonPerformError:        "Ошибка при выполнении",
	ReasonCancelledByCustomer: "Отменено покупателем",
}

const unspecifiedReasonText = "Не указана"

// Text returns the operator-facing description of the reason.
func (r CancelReason) Text() string {
	if t, ok := reasonTexts[r]; ok {
		return t
	}
	return unspecifiedReasonText
}
