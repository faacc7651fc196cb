package handler

import (
	"net/http"

	"wallet-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// ReferralBonus
// @Summary Credit a referral bonus
// @Description Credits the referral bonus to both referrer and referee after checking both users exist
// @Tags referrals
// @Accept json
// @Produce json
// @Param referral body model.ReferralBonusRequest true "Referral participants"
// @Success 201 {object} model.ReferralBonusResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Failure 503 {object} model.ErrorResponse "Identity service unavailable"
// @Router /referrals/bonus [post]
func (h *Handler) ReferralBonus(c *gin.Context) {
	var req model.ReferralBonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.walletService.ReferralBonus(c.Request.Context(), req.ReferrerID, req.RefereeID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
