// Package client is the CLI's connection to the wellness server.
//
// GRPCClient wraps the typed WellnessService stub. A unary interceptor puts
// the current access token into every protected call; when the server
// answers "token expired" it rotates the token pair once using the stored
// refresh token, persists the new pair and replays the call.
//
// gRPC status codes come back as sentinel errors (ErrUnavailable,
// ErrUnauthorized, common.ErrorNotFound, common.ErrorValidation, ...) so
// callers can use errors.Is.
package client
