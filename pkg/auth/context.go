package auth

import (
	"context"

	apperrors "github.com/chainsafe/lime-api/pkg/app/errors"
)

// Context keys for authentication data
type contextKey string

// ContextKeySubject is the context key for the verified token subject
const ContextKeySubject contextKey = "subject"

// WithSubject adds the verified subject to the context
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, ContextKeySubject, subject)
}

// SubjectFromContext retrieves the verified subject from the context.
// The second return value is false for anonymous requests.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(ContextKeySubject).(string)
	return subject, ok && subject != ""
}

// RequireSubject returns the verified subject, or an unauthorized service
// error for anonymous requests.
func RequireSubject(ctx context.Context) (string, error) {
	subject, ok := SubjectFromContext(ctx)
	if !ok {
		return "", apperrors.UnAuthorizedError(ErrInvalidToken, "Invalid or missing AUTH_TOKEN")
	}
	return subject, nil
}
