package request

type AddBasketItemRequest struct {
	GoodID string `json:"goodId" validate:"required,uuid4"`
	Count  int    `json:"count" validate:"required,min=1"`
}

// Count is a pointer so a missing field is distinguishable from zero;
// both are rejected.
type UpdateBasketItemRequest struct {
	Count *int `json:"count" validate:"required,min=1"`
}
