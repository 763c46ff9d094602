package response

// TokenPair carries both tokens out of the auth service. Only the
// access token goes into the response body; the refresh token travels
// as an http-only cookie set by the handler.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"-"`
}
