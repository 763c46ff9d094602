package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Good struct {
	Base
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	SellerID    int64           `db:"seller_id"` // opaque, no FK
	CategoryID  uuid.UUID       `db:"category_id"`
}
