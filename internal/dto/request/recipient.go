package request

type CreateRecipientRequest struct {
	FirstName  string  `json:"first_name" validate:"required,max=100"`
	LastName   string  `json:"last_name" validate:"required,max=100"`
	MiddleName *string `json:"middle_name,omitempty" validate:"omitempty,max=100"`
	Address    string  `json:"address" validate:"required"`
	ZipCode    string  `json:"zip_code" validate:"required,max=20"`
	Phone      string  `json:"phone" validate:"required,max=20"`
}

// AdminCreateRecipientRequest additionally carries the owning user.
type AdminCreateRecipientRequest struct {
	UserID string `json:"user" validate:"required,uuid4"`
	CreateRecipientRequest
}

type UpdateRecipientRequest struct {
	FirstName  *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName   *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	MiddleName *string `json:"middle_name,omitempty" validate:"omitempty,max=100"`
	Address    *string `json:"address,omitempty"`
	ZipCode    *string `json:"zip_code,omitempty" validate:"omitempty,max=20"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}
