package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/naira_billpay/internal/apperrors"
	portssvc "github.com/SscSPs/naira_billpay/internal/core/ports/services"
	"github.com/SscSPs/naira_billpay/internal/dto"
	"github.com/SscSPs/naira_billpay/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler proxies bank lookups to the payments API.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// RegisterPaymentRoutes registers bank listing and account verification.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	useWireFieldNames()
	h := newPaymentHandler(paymentService)

	rg.GET("/banks", h.listBanks)
	rg.POST("/verify-account", h.verifyAccount)
}

// listBanks godoc
// @Summary List supported banks
// @Description Returns the banks the payments API can pay out to
// @Tags payments
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.BanksResponse}
// @Failure 500 {object} dto.Envelope "Failed to fetch banks"
// @Router /banks [get]
func (h *paymentHandler) listBanks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	banks, err := h.paymentService.ListBanks(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list banks", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to fetch banks")
		return
	}

	logger.Info("Banks listed", slog.Int("count", len(banks)))
	respondOK(c, http.StatusOK, dto.BanksResponse(banks))
}

// verifyAccount godoc
// @Summary Verify a bank account
// @Description Resolves the account holder name for a bank code and account number
// @Tags payments
// @Accept json
// @Produce json
// @Param request body dto.VerifyAccountRequest true "Account to verify"
// @Success 200 {object} dto.Envelope{data=dto.AccountDetailsResponse}
// @Failure 400 {object} dto.Envelope "Missing fields or account rejected by the payments API"
// @Failure 500 {object} dto.Envelope "Failed to verify account"
// @Router /verify-account [post]
func (h *paymentHandler) verifyAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.VerifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for VerifyAccount", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	details, err := h.paymentService.VerifyAccount(c.Request.Context(), req.BankCode, req.AccountNumber)
	if err != nil {
		var upstreamErr *apperrors.UpstreamError
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error verifying account", slog.String("error", err.Error()))
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.As(err, &upstreamErr) && upstreamErr.Rejected():
			logger.Warn("Payments API rejected account", slog.String("error", err.Error()))
			respondError(c, http.StatusBadRequest, upstreamErr.Message)
		default:
			logger.Error("Failed to verify account", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Failed to verify account")
		}
		return
	}

	respondOK(c, http.StatusOK, dto.ToAccountDetailsResponse(details))
}
