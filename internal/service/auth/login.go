package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/minicrm/crm-backend/internal/auth"
	"github.com/minicrm/crm-backend/internal/domain"
)

// Login authenticates a demo account and issues an access token. Emails
// outside the allowlist are rejected with ErrUnauthorized; the caller cannot
// distinguish unknown accounts from forbidden ones.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, ok := s.demoUsers[email]; !ok {
		s.log.WarnContext(ctx, "login rejected", "email", email)
		return nil, domain.ErrUnauthorized
	}

	identity := auth.Identity{
		Email: email,
		Name:  auth.DisplayNameFromEmail(email),
	}

	token, err := s.jwt.GenerateAccessToken(identity.Email, identity.Name)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "login succeeded", "email", email)

	return &AuthResult{
		AccessToken: token,
		TokenType:   "bearer",
		User:        identity,
	}, nil
}
