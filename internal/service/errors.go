package service

import "errors"

// Sentinel errors returned by the service layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrTokenIsExpired is returned when the bearer token's exp claim lies
	// in the past.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrInvalidToken is returned when the bearer token fails signature or
	// claim validation for any other reason.
	ErrInvalidToken = errors.New("invalid bearer token")
)
