package models

import "time"

type Payment struct {
	Id            int64     `json:"id"`
	OrderId       int64     `json:"order_id"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	Method        string    `json:"method"`
	TransactionId *string   `json:"transaction_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
