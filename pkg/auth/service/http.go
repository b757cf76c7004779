// Package service exposes token issuance over HTTP
package service

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chainsafe/lime-api/internal/metrics"
	apperrors "github.com/chainsafe/lime-api/pkg/app/errors"
	apphttp "github.com/chainsafe/lime-api/pkg/app/http"
	"github.com/chainsafe/lime-api/pkg/auth"
)

const maxBodySize = 1 << 20

// Issuer issues identity tokens for authenticated subjects
type Issuer interface {
	Issue(subject string) (string, error)
}

// AuthenticateRequest is the body of POST /lime/authenticate
type AuthenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthenticateResponse carries the issued token
type AuthenticateResponse struct {
	Token string `json:"token"`
}

// HTTP serves the authentication endpoint
type HTTP struct {
	issuer  Issuer
	checker auth.CredentialChecker
	logger  *zap.Logger
}

// RegisterRoutes registers the authentication endpoint on the given chi router
func RegisterRoutes(r chi.Router, issuer Issuer, checker auth.CredentialChecker, logger *zap.Logger) {
	h := &HTTP{
		issuer:  issuer,
		checker: checker,
		logger:  logger,
	}

	r.Post("/lime/authenticate", apphttp.HandleError(h.authenticate))
}

func (h *HTTP) authenticate(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req AuthenticateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	if !h.checker.Check(r.Context(), req.Username, req.Password) {
		metrics.TokensIssued.WithLabelValues("rejected").Inc()
		h.logger.Info("Authentication rejected", zap.String("username", req.Username))
		return apperrors.UnAuthorizedError(nil, "Invalid username or password")
	}

	token, err := h.issuer.Issue(req.Username)
	if err != nil {
		metrics.TokensIssued.WithLabelValues("error").Inc()
		h.logger.Error("Failed to issue token", zap.String("username", req.Username), zap.Error(err))
		return apperrors.InternalError(err, "Failed to create token")
	}

	metrics.TokensIssued.WithLabelValues("success").Inc()
	h.logger.Info("Token issued", zap.String("username", req.Username))
	apphttp.WriteJSON(w, http.StatusOK, &AuthenticateResponse{Token: token})
	return nil
}
