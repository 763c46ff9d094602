package entity

import "github.com/google/uuid"

// BasketItem holds one (good, count) line of a user's basket.
// At most one row exists per (user, good) pair.
type BasketItem struct {
	Base
	UserID uuid.UUID `db:"user_id"`
	GoodID uuid.UUID `db:"good_id"`
	Count  int       `db:"count"`
}
