package response

import (
	"encoding/json"
	"time"

	"marketplace-api/internal/data/entity"

	"github.com/shopspring/decimal"
)

type TransactionResponse struct {
	ID           string          `json:"id"`
	CheckoutID   string          `json:"checkout"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
	ProviderData json.RawMessage `json:"provider_data"`
	CreatedAt    time.Time       `json:"created"`
	UpdatedAt    time.Time       `json:"updated"`
}

func TransactionToResponse(tx *entity.Transaction) TransactionResponse {
	providerData := json.RawMessage("null")
	if len(tx.ProviderData) > 0 {
		providerData = json.RawMessage(tx.ProviderData)
	}

	return TransactionResponse{
		ID:           tx.ID.String(),
		CheckoutID:   tx.CheckoutID.String(),
		Status:       string(tx.Status),
		Amount:       tx.Amount,
		ProviderData: providerData,
		CreatedAt:    tx.CreatedAt,
		UpdatedAt:    tx.UpdatedAt,
	}
}
