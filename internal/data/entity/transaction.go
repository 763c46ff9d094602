package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusError   TransactionStatus = "ERROR"
)

// Transaction is a payment attempt for a checkout. Status is set by
// an external collaborator through the update endpoint; no transition
// logic lives here.
type Transaction struct {
	Base
	CheckoutID   uuid.UUID         `db:"checkout_id"`
	Status       TransactionStatus `db:"status"`
	Amount       decimal.Decimal   `db:"amount"`
	ProviderData []byte            `db:"provider_data"` // opaque payload
}
