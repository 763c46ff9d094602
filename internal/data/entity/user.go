package entity

// User is created implicitly on first successful login-code
// confirmation. There is no password; identity key is the email.
type User struct {
	BaseSimple
	Email    string `db:"email"`
	IsActive bool   `db:"is_active"`
	IsAdmin  bool   `db:"is_admin"`
}
