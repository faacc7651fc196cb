package handler

import (
	"net/http"

	"wallet-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// SetWithdrawalStatus
// @Summary Update withdrawal status
// @Description Moves a withdrawal through Pending, Processing and a terminal status. Failed and Rejected refund the withdrawal balance.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param transactionId path string true "Withdrawal entry ID"
// @Param status body model.WithdrawalStatusRequest true "New status"
// @Success 200 {object} model.WalletOperationResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Transaction not found"
// @Failure 409 {object} model.ErrorResponse "Transition not allowed"
// @Router /withdrawals/{transactionId}/status [post]
func (h *Handler) SetWithdrawalStatus(c *gin.Context) {
	var req model.WithdrawalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	status, err := model.ParseWithdrawalStatus(req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.walletService.SetWithdrawalStatus(c.Request.Context(), c.Param("transactionId"), status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
