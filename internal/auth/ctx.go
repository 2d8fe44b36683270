package auth

import "context"

type contextKey struct{ name string }

var identityKey = &contextKey{"identity"}

// WithIdentity returns a context carrying verified claims. Only the auth
// middleware should attach them.
func WithIdentity(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, identityKey, claims)
}

// IdentityFrom extracts the verified claims attached to the request context.
func IdentityFrom(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(identityKey).(Claims)
	return claims, ok
}
