// Package auth derives a request-scoped identity from a credential
// token. The token is a base64-encoded email address; anything that does
// not decode to a syntactically valid email yields an anonymous context
// rather than an error.
package auth

import (
	"context"
	"encoding/base64"
	"launch-gateway/internal/models"
	"launch-gateway/internal/store"
	"log"
	"net/http"
	"net/mail"
	"strings"
)

type contextKey struct{}

var userKey contextKey

// WithUser attaches the resolved user to the request context. A nil user
// marks the request anonymous.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFrom returns the user attached to the context, or nil for an
// anonymous request.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// MakeToken encodes an email address as a credential token. It reports
// false when the email is not syntactically valid.
func MakeToken(email string) (string, bool) {
	if !validEmail(email) {
		return "", false
	}
	return base64.StdEncoding.EncodeToString([]byte(email)), true
}

// ParseToken decodes a credential token back to an email address. It
// reports false for tokens that do not decode to a valid email.
func ParseToken(token string) (string, bool) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", false
	}
	email := string(decoded)
	if !validEmail(email) {
		return "", false
	}
	return email, true
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject display-name forms like "Name <a@b.c>"; the token carries a
	// bare address only.
	return addr.Address == email
}

// Middleware resolves the Authorization header into a user and attaches
// it to the request context. It runs once per operation; resolvers share
// the result read-only. A missing or malformed credential is anonymous,
// but a store failure aborts the operation.
func Middleware(users store.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get("Authorization"))
			token = strings.TrimPrefix(token, "Bearer ")

			email, ok := ParseToken(token)
			if !ok {
				next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), nil)))
				return
			}

			user, err := users.FindOrCreateUser(r.Context(), email)
			if err != nil {
				log.Printf("Error resolving user %q: %v", email, err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
