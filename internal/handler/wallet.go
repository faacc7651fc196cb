package handler

import (
	"net/http"
	"strconv"

	"wallet-ledger/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetBalance
// @Summary Get wallet balance
// @Description Returns the four sub-balances and their total
// @Tags wallets
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} model.WalletResponse
// @Failure 404 {object} model.ErrorResponse "Wallet not found"
// @Router /wallets/{userId} [get]
func (h *Handler) GetBalance(c *gin.Context) {
	resp, err := h.walletService.GetBalance(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Deposit
// @Summary Deposit money
// @Description Splits a gross deposit into GST cashback and deposit balance and applies the deposit bonus
// @Tags wallets
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param deposit body model.DepositRequest true "Gross deposit"
// @Success 201 {object} model.DepositResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /wallets/{userId}/deposit [post]
func (h *Handler) Deposit(c *gin.Context) {
	var req model.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	amount, err := model.ParseAmount(req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.walletService.Deposit(c.Request.Context(), c.Param("userId"), amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Debit
// @Summary Debit for a contest join
// @Description Takes the amount from signup bonus, cashback, deposit and withdrawal balances in that order
// @Tags wallets
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param debit body model.DebitRequestBody true "Debit details"
// @Success 201 {object} model.DebitResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Wallet not found"
// @Router /wallets/{userId}/debit [post]
func (h *Handler) Debit(c *gin.Context) {
	var req model.DebitRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	amount, err := model.ParseAmount(req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	percent := decimal.Zero
	if req.SignupBonusPercentage != "" {
		percent, err = decimal.NewFromString(req.SignupBonusPercentage)
		if err != nil {
			badRequest(c, "signup_bonus_percentage must be a number")
			return
		}
	}

	resp, err := h.walletService.Debit(c.Request.Context(), model.DebitRequest{
		UserID:          c.Param("userId"),
		Amount:          amount,
		BonusUsePercent: percent,
		Reason:          req.Reason,
		ContestID:       req.ContestID,
		MatchID:         req.MatchID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Withdraw
// @Summary Request a withdrawal
// @Description Withdraws from the withdrawal balance and withholds TDS on net winnings of the financial year
// @Tags wallets
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param withdrawal body model.WithdrawRequest true "Withdrawal amount"
// @Success 201 {object} model.WithdrawResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Wallet not found"
// @Router /wallets/{userId}/withdraw [post]
func (h *Handler) Withdraw(c *gin.Context) {
	var req model.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	amount, err := model.ParseAmount(req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.walletService.Withdraw(c.Request.Context(), c.Param("userId"), amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Credit
// @Summary Credit winnings, cashback or bonus
// @Tags wallets
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param credit body model.CreditRequestBody true "Credit details"
// @Success 201 {object} model.WalletOperationResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /wallets/{userId}/credit [post]
func (h *Handler) Credit(c *gin.Context) {
	var req model.CreditRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	entryType, err := model.ParseCreditType(req.Type)
	if err != nil {
		h.handleError(c, err)
		return
	}
	amount, err := model.ParseAmount(req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.walletService.Credit(c.Request.Context(), model.CreditRequest{
		UserID:    c.Param("userId"),
		Type:      entryType,
		Amount:    amount,
		Reason:    req.Reason,
		ContestID: req.ContestID,
		MatchID:   req.MatchID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Refund
// @Summary Refund a breakdown
// @Description Credits each sub-balance of the breakdown back. A refund referencing an already refunded transaction is answered with already_processed.
// @Tags wallets
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param refund body model.RefundRequestBody true "Refund details"
// @Success 200 {object} model.WalletOperationResponse "Already processed"
// @Success 201 {object} model.WalletOperationResponse "Created"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /wallets/{userId}/refund [post]
func (h *Handler) Refund(c *gin.Context) {
	var req model.RefundRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body, breakdown must contain all four balances")
		return
	}

	resp, err := h.walletService.Refund(c.Request.Context(), model.RefundRequest{
		UserID:                c.Param("userId"),
		Breakdown:             req.Breakdown.Breakdown(),
		Reason:                req.Reason,
		RefundedTransactionID: req.RefundedTransactionID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	created(c, resp.Status, resp)
}

// ConvertBonus
// @Summary Convert signup bonus to deposit
// @Tags wallets
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param conversion body model.ConvertBonusRequest true "Amount to convert"
// @Success 201 {object} model.WalletOperationResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Wallet not found"
// @Router /wallets/{userId}/convert-bonus [post]
func (h *Handler) ConvertBonus(c *gin.Context) {
	var req model.ConvertBonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	amount, err := model.ParseAmount(req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.walletService.ConvertBonus(c.Request.Context(), c.Param("userId"), amount, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListTransactions
// @Summary List wallet transactions
// @Description Returns a page of ledger entries with contest and match ids replaced by their names where possible
// @Tags transactions
// @Produce json
// @Param userId path string true "User ID"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(10)
// @Param type query string false "Entry type" Enums(deposit, withdraw, deduct, winning, cashback, bonus, refund, conversion, tds)
// @Param sort_by query string false "Sort field" Enums(created_at, amount) default(created_at)
// @Param sort_order query string false "Sort order" Enums(asc, desc) default(desc)
// @Success 200 {object} model.TransactionListResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /wallets/{userId}/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	sortBy, err := model.ParseSortField(c.Query("sort_by"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	sortOrder, err := model.ParseSortOrder(c.Query("sort_order"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	q := model.HistoryQuery{
		UserID:    c.Param("userId"),
		Page:      page,
		Limit:     limit,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}
	if raw := c.Query("type"); raw != "" {
		entryType, err := model.ParseEntryType(raw)
		if err != nil {
			h.handleError(c, err)
			return
		}
		q.Type = &entryType
	}

	resp, err := h.walletService.ListTransactions(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
