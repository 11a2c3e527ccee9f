package types

const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
	// HeaderBackendToken forwards the caller's backend session through the gateway
	HeaderBackendToken = "X-Backend-Token"
)
