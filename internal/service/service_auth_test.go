package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idmhub/scim-bridge/internal/config"
	"github.com/idmhub/scim-bridge/internal/logger"
)

const (
	testSignKey = "super-secret-sign-key"
	testIssuer  = "https://idp.example.com/realms/master"
)

func newTestAuthService() AuthService {
	return NewAuthService(config.App{
		TokenSignKey: testSignKey,
		TokenIssuer:  testIssuer,
	}, logger.Nop())
}

func signTestToken(t *testing.T, claims jwt.Claims, key string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)

	return signed
}

func TestAuthService_Authorize(t *testing.T) {
	svc := newTestAuthService()

	t.Run("valid token yields the caller context", func(t *testing.T) {
		claims := &scimClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "f7c2e1aa-1b7e-4bd1-9f7d-0d2b6a3c5e01",
				Issuer:    testIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			AuthorizedParty: "scim-client",
		}
		claims.RealmAccess.Roles = []string{"scim-admin", "offline_access"}

		tokenString := signTestToken(t, claims, testSignKey)

		auth, err := svc.Authorize(context.Background(), "master", "Bearer "+tokenString)

		require.NoError(t, err)
		assert.Equal(t, "f7c2e1aa-1b7e-4bd1-9f7d-0d2b6a3c5e01", auth.Subject)
		assert.Equal(t, "scim-client", auth.ClientID)
		assert.Equal(t, "master", auth.RealmID)
		assert.Equal(t, []string{"scim-admin", "offline_access"}, auth.Roles)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &scimClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "subject",
				Issuer:    testIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}

		tokenString := signTestToken(t, claims, testSignKey)

		_, err := svc.Authorize(context.Background(), "master", "Bearer "+tokenString)

		assert.ErrorIs(t, err, ErrTokenIsExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := &scimClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "subject",
				Issuer:    "https://rogue.example.com",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}

		tokenString := signTestToken(t, claims, testSignKey)

		_, err := svc.Authorize(context.Background(), "master", "Bearer "+tokenString)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signature", func(t *testing.T) {
		claims := &scimClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "subject",
				Issuer:    testIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}

		tokenString := signTestToken(t, claims, "another-key")

		_, err := svc.Authorize(context.Background(), "master", "Bearer "+tokenString)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := svc.Authorize(context.Background(), "master", "")

		assert.ErrorIs(t, err, ErrEmptyAuthorizationHeader)
	})

	t.Run("malformed header", func(t *testing.T) {
		_, err := svc.Authorize(context.Background(), "master", "Bearer")

		assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
	})
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "standard bearer header", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "surrounding whitespace", header: "  Bearer abc.def.ghi  ", wantToken: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "scheme without token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "too many parts", header: "Bearer one two", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := parseBearerToken(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
