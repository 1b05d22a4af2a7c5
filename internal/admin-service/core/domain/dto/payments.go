package dto

type PaymentCreateRequest struct {
	OrderId       int64   `json:"order_id"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Method        string  `json:"method"`
	TransactionId *string `json:"transaction_id"`
}

type PaymentUpdateRequest struct {
	Status string `json:"status"`
	Method string `json:"method"`
}
