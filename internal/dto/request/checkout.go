package request

import "github.com/shopspring/decimal"

type CreateCheckoutRequest struct {
	RecipientID      string          `json:"recipient" validate:"required,uuid4"`
	BasketItemID     string          `json:"basket" validate:"required,uuid4"`
	PaymentMethodID  string          `json:"payment_method" validate:"required,uuid4"`
	DeliveryMethodID string          `json:"delivery_method" validate:"required,uuid4"`
	PaymentTotal     decimal.Decimal `json:"payment_total" validate:"required"`
}

type UpdateCheckoutRequest struct {
	RecipientID      *string          `json:"recipient,omitempty" validate:"omitempty,uuid4"`
	BasketItemID     *string          `json:"basket,omitempty" validate:"omitempty,uuid4"`
	PaymentMethodID  *string          `json:"payment_method,omitempty" validate:"omitempty,uuid4"`
	DeliveryMethodID *string          `json:"delivery_method,omitempty" validate:"omitempty,uuid4"`
	PaymentTotal     *decimal.Decimal `json:"payment_total,omitempty"`
}
