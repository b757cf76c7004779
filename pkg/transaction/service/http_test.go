package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/lime-api/pkg/auth"
	"github.com/chainsafe/lime-api/pkg/config"
	"github.com/chainsafe/lime-api/pkg/transaction"
	"github.com/chainsafe/lime-api/pkg/transaction/service/mocks"
)

// RLP list [hashA, hashB]
const rlpAB = "f842a06d61b62233334ebfb28515b4e2aa0e1011fdf542cf4948ef2831b65f0f1fe542a02f5bf15391119b4851c619f97d15ec9c0bd580eb034c29ce32e4c35bb3f288eb"

type routeFixture struct {
	router http.Handler
	svc    *mocks.Service
	issuer *auth.TokenIssuer
}

func newRouteFixture(t *testing.T) *routeFixture {
	t.Helper()

	issuer, err := auth.NewTokenIssuer(config.AuthConfig{JWTSecret: "route-secret", TokenTTL: time.Minute})
	if err != nil {
		t.Fatalf("NewTokenIssuer() failed: %v", err)
	}

	svc := mocks.NewService(t)
	r := chi.NewRouter()
	r.Use(auth.Middleware(issuer, zap.NewNop()))
	RegisterRoutes(r, svc, zap.NewNop())

	return &routeFixture{router: r, svc: svc, issuer: issuer}
}

func (f *routeFixture) get(t *testing.T, target, subject string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if subject != "" {
		token, err := f.issuer.Issue(subject)
		if err != nil {
			t.Fatalf("Issue() failed: %v", err)
		}
		req.Header.Set(auth.HeaderAuthToken, token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("expected status %d, got %d (%s)", status, rec.Code, rec.Body.String())
	}
	var got struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Error != message || got.Code != status {
		t.Fatalf("expected error %q/%d, got %q/%d", message, status, got.Error, got.Code)
	}
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []*transaction.Transaction {
	t.Helper()

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d (%s)", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got transaction.ListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got.Transactions
}

func TestResolveHashesHTTP_UnknownHashReturnsEmptyList(t *testing.T) {
	f := newRouteFixture(t)
	f.svc.EXPECT().ResolveBatch(mock.Anything, []common.Hash{hashA}, "").Return(nil, nil).Once()

	rec := f.get(t, "/lime/eth?transactionHashes="+hashA.Hex(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"transactions":[]}` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestResolveHashesHTTP_RepeatedParamsWithIdentity(t *testing.T) {
	f := newRouteFixture(t)
	want := []*transaction.Transaction{record(hashA), record(hashB)}
	f.svc.EXPECT().ResolveBatch(mock.Anything, []common.Hash{hashA, hashB}, "alice").Return(want, nil).Once()

	// Hashes without 0x and in upper case are accepted
	target := "/lime/eth?transactionHashes=" + hashA.Hex() +
		"&transactionHashes=" + strings.ToUpper(strings.TrimPrefix(hashB.Hex(), "0x"))
	got := decodeList(t, f.get(t, target, "alice"))
	if len(got) != 2 || got[0].TransactionHash != hashA.Hex() || got[1].TransactionHash != hashB.Hex() {
		t.Fatalf("unexpected transactions %v", hashesOf(got))
	}
}

func TestResolveHashesHTTP_InvalidInput(t *testing.T) {
	f := newRouteFixture(t)

	cases := map[string]struct {
		target  string
		message string
	}{
		"malformed hash": {
			target:  "/lime/eth?transactionHashes=" + hashA.Hex() + "&transactionHashes=0x1234",
			message: "Invalid Transaction Hash provided!",
		},
		"non hex hash": {
			target:  "/lime/eth?transactionHashes=0x" + strings.Repeat("zz", 32),
			message: "Invalid Transaction Hash provided!",
		},
		"missing parameter": {
			target:  "/lime/eth",
			message: "transactionHashes is required",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			expectError(t, f.get(t, tc.target, ""), http.StatusBadRequest, tc.message)
		})
	}
}

func TestResolveRLPHTTP(t *testing.T) {
	f := newRouteFixture(t)
	want := []*transaction.Transaction{record(hashA)}
	f.svc.EXPECT().ResolveBatch(mock.Anything, []common.Hash{hashA, hashB}, "bob").Return(want, nil).Once()

	got := decodeList(t, f.get(t, "/lime/eth/"+rlpAB, "bob"))
	if len(got) != 1 || got[0].TransactionHash != hashA.Hex() {
		t.Fatalf("unexpected transactions %v", hashesOf(got))
	}
}

func TestResolveRLPHTTP_InvalidInput(t *testing.T) {
	f := newRouteFixture(t)

	cases := map[string]struct {
		path    string
		message string
	}{
		"non hex":         {path: "zz", message: "Invalid Hex String"},
		"not a list":      {path: "8180", message: "Invalid Hex String"},
		"31 byte element": {path: "e09f" + strings.Repeat("11", 31), message: "Invalid Hash Length"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			expectError(t, f.get(t, "/lime/eth/"+tc.path, ""), http.StatusBadRequest, tc.message)
		})
	}
}

func TestResolveHTTP_ServiceFailure(t *testing.T) {
	f := newRouteFixture(t)
	f.svc.EXPECT().ResolveBatch(mock.Anything, []common.Hash{hashA}, "").Return(nil, errors.New("db down")).Once()

	expectError(t, f.get(t, "/lime/eth?transactionHashes="+hashA.Hex(), ""), http.StatusInternalServerError, "Failed to resolve transactions")
}

func TestListAllHTTP(t *testing.T) {
	f := newRouteFixture(t)
	f.svc.EXPECT().ListAll(mock.Anything).Return([]*transaction.Transaction{record(hashB), record(hashA)}, nil).Once()

	got := decodeList(t, f.get(t, "/lime/all", ""))
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(got))
	}

	f.svc.EXPECT().ListAll(mock.Anything).Return(nil, errors.New("db down")).Once()
	expectError(t, f.get(t, "/lime/all", ""), http.StatusInternalServerError, "Failed to fetch transactions")
}

func TestListMineHTTP(t *testing.T) {
	f := newRouteFixture(t)

	expectError(t, f.get(t, "/lime/my", ""), http.StatusUnauthorized, "Invalid or missing AUTH_TOKEN")

	req := httptest.NewRequest(http.MethodGet, "/lime/my", nil)
	req.Header.Set(auth.HeaderAuthToken, "not-a-token")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	expectError(t, rec, http.StatusUnauthorized, "Invalid or missing AUTH_TOKEN")

	f.svc.EXPECT().ListForSubject(mock.Anything, "carol").Return(nil, nil).Once()
	rec = f.get(t, "/lime/my", "carol")
	if body := strings.TrimSpace(rec.Body.String()); rec.Code != http.StatusOK || body != `{"transactions":[]}` {
		t.Fatalf("expected empty list, got %d %s", rec.Code, body)
	}

	f.svc.EXPECT().ListForSubject(mock.Anything, "dave").Return(nil, errors.New("db down")).Once()
	expectError(t, f.get(t, "/lime/my", "dave"), http.StatusInternalServerError, "Failed to fetch user transactions")
}
