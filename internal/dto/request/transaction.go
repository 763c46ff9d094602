package request

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	CheckoutID   string          `json:"checkout" validate:"required,uuid4"`
	Status       *string         `json:"status,omitempty" validate:"omitempty,oneof=PENDING SUCCESS ERROR"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	ProviderData json.RawMessage `json:"provider_data,omitempty"`
}

type UpdateTransactionRequest struct {
	CheckoutID   *string          `json:"checkout,omitempty" validate:"omitempty,uuid4"`
	Status       *string          `json:"status,omitempty" validate:"omitempty,oneof=PENDING SUCCESS ERROR"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	ProviderData json.RawMessage  `json:"provider_data,omitempty"`
}
