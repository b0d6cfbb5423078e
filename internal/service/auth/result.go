package auth

import "github.com/minicrm/crm-backend/internal/auth"

// AuthResult is returned by a successful login.
type AuthResult struct {
	AccessToken string
	TokenType   string
	User        auth.Identity
}
