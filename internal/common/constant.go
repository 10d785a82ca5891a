// Package common contains shared constants and sentinel errors used across
// Wellness Hub components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RequestIDHeaderName is the gRPC metadata key carrying a per-call request id.
const RequestIDHeaderName = "x-request-id"

// Status messages the client matches on to decide whether to refresh or to
// ask the user to sign in again.
const (
	TokenExpiredMessage        = "token expired"
	RefreshTokenExpiredMessage = "refresh token expired"
)
