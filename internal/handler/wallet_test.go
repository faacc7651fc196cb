package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wallet-ledger/internal/model"
	mocks "wallet-ledger/mocks/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.WalletService) {
	gin.SetMode(gin.TestMode)
	mockSvc := mocks.NewWalletService(t)
	h := NewHandler(mockSvc, zerolog.Nop())
	return h.SetupRoutes(), mockSvc
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body == "" {
		reader = &bytes.Buffer{}
	} else {
		reader = bytes.NewBufferString(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_GetBalance_Success(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	mockSvc.On("GetBalance", mock.Anything, "u1").Return(&model.WalletResponse{
		UserID:       "u1",
		TotalBalance: "2000.00",
	}, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/wallets/u1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	var resp model.WalletResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2000.00", resp.TotalBalance)
}

func TestHandler_Deposit_Success(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	mockSvc.On("Deposit", mock.Anything, "u1", decimal.RequireFromString("1000.00")).Return(&model.DepositResponse{
		EntryID:   "01JDEP",
		Tax:       "280.00",
		Bonus:     "1000.00",
		BonusKind: "first_deposit",
	}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/wallets/u1/deposit", `{"amount":"1000.00"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.DepositResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "280.00", resp.Tax)
	assert.Equal(t, "01JDEP", resp.EntryID)
}

func TestHandler_Deposit_InvalidAmount(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, amount := range []string{"abc", "0", "-10", "10.123"} {
		w := doJSON(router, http.MethodPost, "/api/v1/wallets/u1/deposit", fmt.Sprintf(`{"amount":%q}`, amount))

		assert.Equal(t, http.StatusBadRequest, w.Code, amount)
		assert.Equal(t, "INVALID_AMOUNT", decodeError(t, w).Code, amount)
	}
}

func TestHandler_Deposit_MissingBody(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/wallets/u1/deposit", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)
}

func TestHandler_Debit_PassesBonusPercentage(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	mockSvc.On("Debit", mock.Anything, mock.MatchedBy(func(req model.DebitRequest) bool {
		return req.UserID == "u1" &&
			req.Amount.Equal(decimal.NewFromInt(100)) &&
			req.BonusUsePercent.Equal(decimal.NewFromInt(50)) &&
			req.ContestID == "c1"
	})).Return(&model.DebitResponse{EntryID: "01JDEBIT"}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/wallets/u1/debit",
		`{"amount":"100","signup_bonus_percentage":"50","contest_id":"c1"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Debit_InsufficientBalance(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	mockSvc.On("Debit", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: short by 5.00", model.ErrInsufficientBalance))

	w := doJSON(router, http.MethodPost, "/api/v1/wallets/u1/debit", `{"amount":"100"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INSUFFICIENT_BALANCE", decodeError(t, w).Code)
}

func TestHandler_Debit_BadPercentage(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/wallets/u1/debit", `{"amount":"100","signup_bonus_percentage":"half"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)
}

func TestHandler_Credit_RejectsUnknownType(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/wallets/u1/credit", `{"type":"deposit","amount":"10"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Credit_Winning(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	mockSvc.On("Credit", mock.Anything, mock.MatchedBy(func(req model.CreditRequest) bool {
		return req.Type == model.EntryWinning && req.MatchID == "m1"
	})).Return(&model.WalletOperationResponse{Status: "success"}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/wallets/u1/credit", `{"type":"winning","amount":"250.00","match_id":"m1"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Refund_ReplayReturnsOK(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	mockSvc.On("Refund", mock.Anything, mock.MatchedBy(func(req model.RefundRequest) bool {
		return req.RefundedTransactionID == "tx-1" && req.Breakdown.Deposit.Equal(decimal.NewFromInt(50))
	})).Return(&model.WalletOperationResponse{Status: "already_processed"}, nil)

	body := `{"breakdown":{"deposit_balance":"50","cashback_balance":"0","withdrawal_balance":"0","signup_bonus_balance":"0"},"refunded_transaction_id":"tx-1"}`
	w := doJSON(router, http.MethodPost, "/api/v1/wallets/u1/refund", body)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Refund_NewRefundReturnsCreated(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	mockSvc.On("Refund", mock.Anything, mock.Anything).Return(&model.WalletOperationResponse{Status: "success"}, nil)

	body := `{"breakdown":{"deposit_balance":"50","cashback_balance":"10","withdrawal_balance":"0","signup_bonus_balance":"40"}}`
	w := doJSON(router, http.MethodPost, "/api/v1/wallets/u1/refund", body)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Refund_IncompleteBreakdown(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/wallets/u1/refund", `{"breakdown":{"deposit_balance":"50"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)
}

func TestHandler_ListTransactions_ParsesQuery(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	mockSvc.On("ListTransactions", mock.Anything, mock.MatchedBy(func(q model.HistoryQuery) bool {
		return q.UserID == "u1" &&
			q.Page == 2 &&
			q.Limit == 5 &&
			q.Type != nil && *q.Type == model.EntryDeposit &&
			q.SortBy == model.SortByAmount &&
			q.SortOrder == model.SortAsc
	})).Return(&model.TransactionListResponse{CurrentPage: 2, TotalPages: 3}, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/wallets/u1/transactions?page=2&limit=5&type=deposit&sort_by=amount&sort_order=asc", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListTransactions_BadSort(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/wallets/u1/transactions?sort_by=reason", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_SORT", decodeError(t, w).Code)
}

func TestHandler_SetWithdrawalStatus_Conflict(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	mockSvc.On("SetWithdrawalStatus", mock.Anything, "wd-1", model.WithdrawalFailed).
		Return(nil, fmt.Errorf("%w: Completed -> Failed", model.ErrInvalidStatusTransition))

	w := doJSON(router, http.MethodPost, "/api/v1/withdrawals/wd-1/status", `{"status":"Failed"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", decodeError(t, w).Code)
}

func TestHandler_SetWithdrawalStatus_UnknownStatus(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/withdrawals/wd-1/status", `{"status":"Cancelled"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_STATUS", decodeError(t, w).Code)
}

func TestHandler_ReferralBonus_UpstreamDown(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	mockSvc.On("ReferralBonus", mock.Anything, "u1", "u2").Return(nil, model.ErrUpstreamUnavailable)

	w := doJSON(router, http.MethodPost, "/api/v1/referrals/bonus", `{"referrer_id":"u1","referee_id":"u2"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", decodeError(t, w).Code)
}

func TestHandler_ConvertBonus_NotFound(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	mockSvc.On("ConvertBonus", mock.Anything, "ghost", decimal.RequireFromString("25.00"), "").Return(nil, model.ErrWalletNotFound)

	w := doJSON(router, http.MethodPost, "/api/v1/wallets/ghost/convert-bonus", `{"amount":"25.00"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "WALLET_NOT_FOUND", decodeError(t, w).Code)
}

func TestHandler_InternalErrorIsMasked(t *testing.T) {
	router, mockSvc := newTestRouter(t)
	mockSvc.On("GetBalance", mock.Anything, "u1").Return(nil, fmt.Errorf("get wallet: %w", assert.AnError))

	w := doJSON(router, http.MethodGet, "/api/v1/wallets/u1", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Code)
	assert.Equal(t, "internal server error", resp.Error)
}

func TestHandler_HealthAndMetrics(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "wallet_http_requests_total"))
}
