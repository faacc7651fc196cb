package handler

import (
	"errors"
	"net/http"

	"wallet-ledger/internal/model"
	"wallet-ledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	walletService service.WalletService
	logger        zerolog.Logger
}

func NewHandler(walletService service.WalletService, logger zerolog.Logger) *Handler {
	return &Handler{
		walletService: walletService,
		logger:        logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(h.logger),
		MetricsMiddleware(),
		gin.Recovery(),
	)

	// Swagger, metrics and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")

	wallets := v1.Group("/wallets/:userId")
	wallets.GET("", h.GetBalance)
	wallets.GET("/transactions", h.ListTransactions)
	wallets.POST("/deposit", h.Deposit)
	wallets.POST("/debit", h.Debit)
	wallets.POST("/withdraw", h.Withdraw)
	wallets.POST("/credit", h.Credit)
	wallets.POST("/refund", h.Refund)
	wallets.POST("/convert-bonus", h.ConvertBonus)

	v1.POST("/withdrawals/:transactionId/status", h.SetWithdrawalStatus)
	v1.POST("/referrals/bonus", h.ReferralBonus)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInsufficientBalance):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_BALANCE"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidBreakdown):
		status = http.StatusBadRequest
		code = "INVALID_BREAKDOWN"
	case errors.Is(err, model.ErrInvalidEntryType):
		status = http.StatusBadRequest
		code = "INVALID_TYPE"
	case errors.Is(err, model.ErrInvalidStatus):
		status = http.StatusBadRequest
		code = "INVALID_STATUS"
	case errors.Is(err, model.ErrInvalidSort):
		status = http.StatusBadRequest
		code = "INVALID_SORT"
	case errors.Is(err, model.ErrInvalidReferral):
		status = http.StatusBadRequest
		code = "INVALID_REFERRAL"
	case errors.Is(err, model.ErrWalletNotFound):
		status = http.StatusNotFound
		code = "WALLET_NOT_FOUND"
	case errors.Is(err, model.ErrTransactionNotFound):
		status = http.StatusNotFound
		code = "TRANSACTION_NOT_FOUND"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		code = "USER_NOT_FOUND"
	case errors.Is(err, model.ErrNotWithdrawal):
		status = http.StatusConflict
		code = "NOT_A_WITHDRAWAL"
	case errors.Is(err, model.ErrInvalidStatusTransition):
		status = http.StatusConflict
		code = "INVALID_STATUS_TRANSITION"
	case errors.Is(err, model.ErrUpstreamUnavailable):
		status = http.StatusServiceUnavailable
		code = "UPSTREAM_UNAVAILABLE"
		resp.Details = "A collaborating service did not answer, retry later"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
		resp.Error = "internal server error"
	}

	c.JSON(status, resp)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error: msg,
		Code:  "INVALID_REQUEST",
	})
}

// created answers 200 for a replayed operation and 201 otherwise.
func created(c *gin.Context, status string, resp any) {
	code := http.StatusCreated
	if status == "already_processed" {
		code = http.StatusOK
	}
	c.JSON(code, resp)
}
