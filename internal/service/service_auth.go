package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/idmhub/scim-bridge/internal/config"
	"github.com/idmhub/scim-bridge/internal/logger"
	"github.com/idmhub/scim-bridge/models"
)

// authService is the concrete implementation of [AuthService]. It verifies
// HMAC-SHA256 bearer tokens issued by the host identity server and projects
// their claims into the caller context handed to the protocol engine.
type authService struct {
	// tokenSignKey is the HMAC secret used to verify token signatures.
	tokenSignKey string

	// tokenIssuer is the "iss" claim expected on every token. Tokens whose
	// issuer does not match are rejected.
	tokenIssuer string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// scimClaims is the claim set the host identity server puts into access
// tokens, reduced to the fields the caller context carries.
type scimClaims struct {
	jwt.RegisteredClaims

	// AuthorizedParty is the OAuth client the token was issued to.
	AuthorizedParty string `json:"azp,omitempty"`

	// RealmAccess carries the realm-level roles granted to the caller.
	RealmAccess struct {
		Roles []string `json:"roles,omitempty"`
	} `json:"realm_access,omitempty"`
}

// NewAuthService constructs an [AuthService] populated with token
// verification parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// Authorize extracts and verifies the bearer token and returns the caller
// context for the canonical request.
//
// Returns:
//   - [ErrEmptyAuthorizationHeader] / [ErrInvalidAuthorizationHeader] for a
//     missing or malformed header.
//   - [ErrTokenIsExpired] when the token's exp claim lies in the past.
//   - [ErrInvalidToken] for any other validation failure.
func (a *authService) Authorize(ctx context.Context, realmID, authorizationHeader string) (models.Authorization, error) {
	log := logger.FromContext(ctx)

	tokenString, err := parseBearerToken(authorizationHeader)
	if err != nil {
		return models.Authorization{}, err
	}

	claims := &scimClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(a.tokenSignKey), nil
	}, jwt.WithIssuer(a.tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Authorization{}, ErrTokenIsExpired
		}

		log.Err(err).Str("realm", realmID).Msg("error validating bearer token")
		return models.Authorization{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return models.Authorization{
		Subject:  claims.Subject,
		ClientID: claims.AuthorizedParty,
		RealmID:  realmID,
		Roles:    claims.RealmAccess.Roles,
	}, nil
}

// parseBearerToken extracts the token string from a raw "Authorization"
// header value of the standard form:
//
//	Authorization: Bearer <token>
func parseBearerToken(authorizationHeader string) (string, error) {
	if authorizationHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}
