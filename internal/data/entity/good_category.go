package entity

import "github.com/google/uuid"

// GoodCategory is a flat self-referential tree. Deleting a parent
// nulls the children's parent, it does not cascade.
type GoodCategory struct {
	Base
	Title       string     `db:"title"`
	Description string     `db:"description"`
	ParentID    *uuid.UUID `db:"parent_id"`
}
