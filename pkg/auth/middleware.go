package auth

import (
	"net/http"

	"go.uber.org/zap"
)

// HeaderAuthToken is the request header carrying the identity token
const HeaderAuthToken = "AUTH_TOKEN"

// Middleware attaches the subject of a valid AUTH_TOKEN header to the request
// context. Missing or invalid tokens leave the request anonymous; endpoints
// that need an identity check SubjectFromContext themselves.
func Middleware(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(HeaderAuthToken)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			subject, err := verifier.Verify(token)
			if err != nil {
				logger.Debug("Ignoring invalid auth token",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
		})
	}
}
