package entity

// PaymentMethod is static reference data with a unique title.
type PaymentMethod struct {
	Base
	Title       string `db:"title"`
	Description string `db:"description"`
}
