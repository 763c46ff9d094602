package entity

import "github.com/google/uuid"

type Recipient struct {
	Base
	UserID     uuid.UUID `db:"user_id"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	MiddleName *string   `db:"middle_name"`
	Address    string    `db:"address"`
	ZipCode    string    `db:"zip_code"`
	Phone      string    `db:"phone"`
}
