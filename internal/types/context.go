package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID    ContextKey = "ctx_request_id"
	CtxAdminEmail   ContextKey = "ctx_admin_email"
	CtxJWT          ContextKey = "ctx_jwt"
	CtxBackendToken ContextKey = "ctx_backend_token"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

func GetAdminEmail(ctx context.Context) string {
	if email, ok := ctx.Value(CtxAdminEmail).(string); ok {
		return email
	}
	return ""
}

func GetJWT(ctx context.Context) string {
	if jwt, ok := ctx.Value(CtxJWT).(string); ok {
		return jwt
	}
	return ""
}

// GetBackendToken returns the bearer token forwarded to the backend, if any
func GetBackendToken(ctx context.Context) string {
	if token, ok := ctx.Value(CtxBackendToken).(string); ok {
		return token
	}
	return ""
}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxRequestID, requestID)
}

func SetAdminEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, CtxAdminEmail, email)
}

func SetBackendToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxBackendToken, token)
}

func SetJWT(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxJWT, token)
}
