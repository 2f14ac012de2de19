package auth

import (
	"context"
)

type contextKey string

// ContextKeyAddress is the context key for the authenticated owner address
const ContextKeyAddress contextKey = "owner_address"

// WithAddress adds the authenticated address to the context
func WithAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, ContextKeyAddress, address)
}

// AddressFromContext retrieves the authenticated address from the context
func AddressFromContext(ctx context.Context) (string, bool) {
	addr, ok := ctx.Value(ContextKeyAddress).(string)
	return addr, ok
}
