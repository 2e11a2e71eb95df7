package payment

import "time"

type PaymentDB struct {
	ID            int64
	ParcelID      int64
	PayerEmail    string
	TransactionID string
	Amount        float64
	Method        string
	PaidAt        time.Time
}

type PaymentModifyDB struct {
	ID            *int64
	ParcelID      *int64
	PayerEmail    *string
	TransactionID *string
	Amount        *float64
	Method        *string
	PaidAt        *time.Time
}
