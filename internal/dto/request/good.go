package request

import "github.com/shopspring/decimal"

type CreateGoodRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=255"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	SellerID    int64           `json:"seller_id" validate:"required"`
	CategoryID  string          `json:"category" validate:"required,uuid4"`
}

type UpdateGoodRequest struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	SellerID    *int64           `json:"seller_id,omitempty"`
	CategoryID  *string          `json:"category,omitempty" validate:"omitempty,uuid4"`
}
