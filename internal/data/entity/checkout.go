package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Checkout snapshots a single basket line plus the delivery, payment
// and recipient selection. Referenced rows are protected from deletion
// while a checkout points at them.
type Checkout struct {
	Base
	UserID           uuid.UUID       `db:"user_id"`
	RecipientID      uuid.UUID       `db:"recipient_id"`
	BasketItemID     uuid.UUID       `db:"basket_item_id"`
	PaymentMethodID  uuid.UUID       `db:"payment_method_id"`
	DeliveryMethodID uuid.UUID       `db:"delivery_method_id"`
	PaymentTotal     decimal.Decimal `db:"payment_total"`
}
