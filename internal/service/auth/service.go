// Package auth implements the demo OAuth login: a configured allowlist of
// demo accounts exchanged for HS256 access tokens. There is no password or
// real provider round trip; the flow mimics one for frontend development.
package auth

import (
	"log/slog"
	"strings"
)

//go:generate moq -rm -out jwt_manager_mock_test.go -fmt goimports . jwtManager:jwtManagerMock
type jwtManager interface {
	GenerateAccessToken(email, name string) (string, error)
}

// Service implements the login operation.
type Service struct {
	jwt       jwtManager
	demoUsers map[string]struct{}
	log       *slog.Logger
}

// NewService creates an auth service. demoUsers is the allowlist of emails
// permitted to log in; matching is case-insensitive.
func NewService(log *slog.Logger, jwt jwtManager, demoUsers []string) *Service {
	allow := make(map[string]struct{}, len(demoUsers))
	for _, email := range demoUsers {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			allow[email] = struct{}{}
		}
	}

	return &Service{
		jwt:       jwt,
		demoUsers: allow,
		log:       log.With("service", "auth"),
	}
}
