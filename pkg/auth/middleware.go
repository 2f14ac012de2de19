package auth

import (
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/chainsafe/bridge-tracker/pkg/app/errors"
	apphttp "github.com/chainsafe/bridge-tracker/pkg/app/http"
)

// Middleware requires a valid bearer token and stores its address in the
// request context. A nil issuer disables authentication.
func Middleware(issuer *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if issuer == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(errors.New("missing bearer token"), "missing bearer token"))
				return
			}
			address, err := issuer.Verify(token)
			if err != nil {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid bearer token"))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithAddress(r.Context(), address)))
		})
	}
}

// RequireOwner fails unless the authenticated address equals address.
// It always passes when auth is disabled.
func RequireOwner(r *http.Request, address string, enabled bool) error {
	if !enabled {
		return nil
	}
	owner, ok := AddressFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "authentication required")
	}
	if !strings.EqualFold(owner, address) {
		return apperrors.ForbiddenError(nil, "token does not belong to this address")
	}
	return nil
}
