// Package user delegates account creation to the external identity provider.
// Session issuance, password handling and token lifecycle all live in the
// provider; this service only registers new accounts through its admin API.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Nerzal/gocloak/v13"
)

// Service creates users in Keycloak via the admin API.
type Service struct {
	gocloak  *gocloak.GoCloak
	realm    string
	clientID string
	secret   string
}

// SignupDto represents the data transfer object for user registration.
type SignupDto struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required"`
}

// UserDto is the registered user returned to the caller.
type UserDto struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func NewService(client *gocloak.GoCloak, realm, clientID, secret string) *Service {
	return &Service{gocloak: client, realm: realm, clientID: clientID, secret: secret}
}

// Register creates a new user in the identity provider. The email doubles as
// the username and is marked verified, since no mail server is configured.
func (s *Service) Register(ctx context.Context, dto SignupDto) (*UserDto, error) {
	kcUser := gocloak.User{
		Username:      gocloak.StringP(dto.Email),
		Email:         gocloak.StringP(dto.Email),
		FirstName:     gocloak.StringP(dto.Name),
		Enabled:       gocloak.BoolP(true),
		EmailVerified: gocloak.BoolP(true),
	}

	token, err := s.gocloak.LoginClient(ctx, s.clientID, s.secret, s.realm)
	if err != nil {
		slog.Error("Failed to login", "error", err)
		return nil, fmt.Errorf("%w: failed to login to Keycloak: %v", ErrIdPInteractionFailed, err)
	}

	userID, err := s.gocloak.CreateUser(ctx, token.AccessToken, s.realm, kcUser)
	if err != nil {
		slog.Error("Failed to create user", "error", err)
		var apiErr *gocloak.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.Code {
			case http.StatusConflict:
				return nil, ErrUserAlreadyExists
			case http.StatusBadRequest:
				return nil, ErrInvalidUserData
			}
		}
		return nil, ErrIdPInteractionFailed
	}

	if err := s.gocloak.SetPassword(ctx, token.AccessToken, userID, s.realm, dto.Password, false); err != nil {
		slog.Error("Failed to set password", "error", err)
		errSetPassword := fmt.Errorf("%w: failed to set password: %v", ErrIdPInteractionFailed, err)
		_ = s.gocloak.DeleteUser(ctx, token.AccessToken, s.realm, userID)
		return nil, errSetPassword
	}

	return &UserDto{ID: userID, Email: dto.Email, Name: dto.Name}, nil
}
