package auth

import "time"

// TokenTypeAccess marks tokens that may call the API.
const TokenTypeAccess = "access"

// Config drives token verification. An empty Secret disables authentication.
type Config struct {
	Secret string
}

// Enabled reports whether bearer tokens are required.
func (c Config) Enabled() bool {
	return c.Secret != ""
}

// Claims are extracted from the JWT token.
type Claims struct {
	Subject   string
	TokenType string
	ExpiresAt time.Time
}
