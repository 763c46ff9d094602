package request

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ConfirmRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}
