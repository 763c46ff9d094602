package response

import (
	"marketplace-api/internal/data/entity"

	"github.com/shopspring/decimal"
)

type GoodResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	SellerID    int64           `json:"seller_id"`
	CategoryID  string          `json:"category"`
}

// GoodListItem is the reduced shape used in listings.
type GoodListItem struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Price      decimal.Decimal `json:"price"`
	CategoryID string          `json:"category"`
}

func GoodToResponse(good *entity.Good) GoodResponse {
	return GoodResponse{
		ID:          good.ID.String(),
		Title:       good.Title,
		Description: good.Description,
		Price:       good.Price,
		SellerID:    good.SellerID,
		CategoryID:  good.CategoryID.String(),
	}
}

func GoodToListItem(good *entity.Good) GoodListItem {
	return GoodListItem{
		ID:         good.ID.String(),
		Title:      good.Title,
		Price:      good.Price,
		CategoryID: good.CategoryID.String(),
	}
}
