package entity

// DeliveryMethod is static reference data with a unique title.
type DeliveryMethod struct {
	Base
	Title       string `db:"title"`
	Description string `db:"description"`
}
