package service

import (
	"errors"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/lime-api/pkg/app/errors"
	apphttp "github.com/chainsafe/lime-api/pkg/app/http"
	"github.com/chainsafe/lime-api/pkg/auth"
	"github.com/chainsafe/lime-api/pkg/transaction"
)

// QueryParamHashes is the repeated query parameter carrying hashes on /lime/eth
const QueryParamHashes = "transactionHashes"

// HTTP serves the transaction lookup endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the transaction endpoints on the given chi router.
// The auth middleware must run first for identity attribution and /lime/my.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/lime/eth", apphttp.HandleError(h.resolveHashes))
	r.Get("/lime/eth/{rlphex}", apphttp.HandleError(h.resolveRLP))
	r.Get("/lime/all", apphttp.HandleError(h.listAll))
	r.Get("/lime/my", apphttp.HandleError(h.listMine))
}

func (h *HTTP) resolveHashes(w http.ResponseWriter, r *http.Request) error {
	raw := r.URL.Query()[QueryParamHashes]
	if len(raw) == 0 {
		return apperrors.BadRequestError(nil, QueryParamHashes+" is required")
	}

	hashes, err := transaction.ParseHashes(raw)
	if err != nil {
		return apperrors.BadRequestError(err, "Invalid Transaction Hash provided!")
	}

	return h.resolve(w, r, hashes)
}

func (h *HTTP) resolveRLP(w http.ResponseWriter, r *http.Request) error {
	hashes, err := transaction.DecodeRLPHex(chi.URLParam(r, "rlphex"))
	if err != nil {
		if errors.Is(err, transaction.ErrInvalidElementLength) {
			return apperrors.BadRequestError(err, "Invalid Hash Length")
		}
		return apperrors.BadRequestError(err, "Invalid Hex String")
	}

	return h.resolve(w, r, hashes)
}

func (h *HTTP) resolve(w http.ResponseWriter, r *http.Request, hashes []common.Hash) error {
	subject, _ := auth.SubjectFromContext(r.Context())

	txs, err := h.service.ResolveBatch(r.Context(), hashes, subject)
	if err != nil {
		return apperrors.InternalError(err, "Failed to resolve transactions")
	}

	apphttp.WriteJSON(w, http.StatusOK, transaction.NewListResponse(txs))
	return nil
}

func (h *HTTP) listAll(w http.ResponseWriter, r *http.Request) error {
	txs, err := h.service.ListAll(r.Context())
	if err != nil {
		return apperrors.InternalError(err, "Failed to fetch transactions")
	}

	apphttp.WriteJSON(w, http.StatusOK, transaction.NewListResponse(txs))
	return nil
}

func (h *HTTP) listMine(w http.ResponseWriter, r *http.Request) error {
	subject, err := auth.RequireSubject(r.Context())
	if err != nil {
		return err
	}

	txs, err := h.service.ListForSubject(r.Context(), subject)
	if err != nil {
		return apperrors.InternalError(err, "Failed to fetch user transactions")
	}

	apphttp.WriteJSON(w, http.StatusOK, transaction.NewListResponse(txs))
	return nil
}
