package common

// Metadata keys carried on gRPC requests.
const (
	// AuthorizationHeaderName carries the access token on gated calls.
	AuthorizationHeaderName = "authorization"

	// RefreshTokenHeaderName optionally carries the refresh token next to
	// the access token.
	RefreshTokenHeaderName = "refresh_token"

	// RequestIDHeaderName lets a caller supply its own correlation id.
	RequestIDHeaderName = "x-request-id"
)
