package entity

// OTP is a single-use 6-digit login code. Multiple outstanding codes
// may exist for the same email; each is valid for 5 minutes and is
// deleted on successful use.
type OTP struct {
	BaseSimple
	Email string `db:"email"`
	Code  string `db:"code"`
}
