package response

import "marketplace-api/internal/data/entity"

type BasketItemResponse struct {
	ID     string `json:"id"`
	GoodID string `json:"good"`
	Count  int    `json:"count"`
}

type BasketListResponse struct {
	TotalCount int64                `json:"totalCount"`
	Items      []BasketItemResponse `json:"items"`
}

func BasketItemToResponse(item *entity.BasketItem) BasketItemResponse {
	return BasketItemResponse{
		ID:     item.ID.String(),
		GoodID: item.GoodID.String(),
		Count:  item.Count,
	}
}
