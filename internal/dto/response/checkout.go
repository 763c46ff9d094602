package response

import (
	"time"

	"marketplace-api/internal/data/entity"

	"github.com/shopspring/decimal"
)

type CheckoutResponse struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user"`
	RecipientID      string          `json:"recipient"`
	BasketItemID     string          `json:"basket"`
	PaymentMethodID  string          `json:"payment_method"`
	DeliveryMethodID string          `json:"delivery_method"`
	PaymentTotal     decimal.Decimal `json:"payment_total"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func CheckoutToResponse(checkout *entity.Checkout) CheckoutResponse {
	return CheckoutResponse{
		ID:               checkout.ID.String(),
		UserID:           checkout.UserID.String(),
		RecipientID:      checkout.RecipientID.String(),
		BasketItemID:     checkout.BasketItemID.String(),
		PaymentMethodID:  checkout.PaymentMethodID.String(),
		DeliveryMethodID: checkout.DeliveryMethodID.String(),
		PaymentTotal:     checkout.PaymentTotal,
		CreatedAt:        checkout.CreatedAt,
		UpdatedAt:        checkout.UpdatedAt,
	}
}
