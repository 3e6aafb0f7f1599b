package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/naira_billpay/internal/apperrors"
	"github.com/SscSPs/naira_billpay/internal/core/domain"
	portssvc "github.com/SscSPs/naira_billpay/internal/core/ports/services"
	"github.com/SscSPs/naira_billpay/internal/dto"
	"github.com/SscSPs/naira_billpay/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pricingHandler exposes price lookups, bill quotes and balance formatting.
type pricingHandler struct {
	pricingService portssvc.PricingSvcFacade
}

func newPricingHandler(ps portssvc.PricingSvcFacade) *pricingHandler {
	return &pricingHandler{pricingService: ps}
}

// RegisterPricingRoutes registers price, quote and balance routes.
func RegisterPricingRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade) {
	useWireFieldNames()
	h := newPricingHandler(pricingService)

	rg.GET("/prices/:token", h.getTokenPrice)
	rg.POST("/quote", h.quoteBill)
	rg.GET("/balances/format", h.formatBalance)
}

// pricingErrorStatus maps pricing errors to an HTTP status and client message.
func pricingErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrConversion),
		errors.Is(err, apperrors.ErrFormat):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrLookup):
		return http.StatusInternalServerError, "Failed to fetch token price"
	default:
		return http.StatusInternalServerError, "Unexpected error"
	}
}

// getTokenPrice godoc
// @Summary Get a token price
// @Description Returns the fiat price of one unit of a supported token. Symbols other than USDC resolve to USDT.
// @Tags pricing
// @Produce json
// @Param token path string true "Token symbol, e.g. USDC"
// @Success 200 {object} dto.Envelope{data=dto.TokenPriceResponse}
// @Failure 500 {object} dto.Envelope "Failed to fetch token price"
// @Router /prices/{token} [get]
func (h *pricingHandler) getTokenPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	symbol := c.Param("token")

	price, err := h.pricingService.GetTokenPrice(c.Request.Context(), symbol)
	if err != nil {
		status, msg := pricingErrorStatus(err)
		logger.Error("Failed to get token price", slog.String("token", symbol), slog.String("error", err.Error()))
		respondError(c, status, msg)
		return
	}

	respondOK(c, http.StatusOK, dto.ToTokenPriceResponse(price))
}

// quoteBill godoc
// @Summary Quote a bill in tokens
// @Description Converts a fiat bill amount into the token base units to debit
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Bill to quote"
// @Success 200 {object} dto.Envelope{data=dto.QuoteResponse}
// @Failure 400 {object} dto.Envelope "Invalid amount or price"
// @Failure 500 {object} dto.Envelope "Failed to fetch token price"
// @Router /quote [post]
func (h *pricingHandler) quoteBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for QuoteBill", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	price, amount, err := h.pricingService.QuoteBill(c.Request.Context(), *req.FiatAmount, req.Token)
	if err != nil {
		status, msg := pricingErrorStatus(err)
		logger.Warn("Failed to quote bill", slog.String("token", req.Token), slog.String("error", err.Error()))
		respondError(c, status, msg)
		return
	}

	display, err := h.pricingService.FormatBalance(strconv.FormatInt(amount.BaseUnits, 10), int(amount.Token.Decimals()))
	if err != nil {
		logger.Error("Failed to format quoted amount", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Unexpected error")
		return
	}

	respondOK(c, http.StatusOK, dto.QuoteResponse{
		Token:       amount.Token,
		OracleID:    amount.OracleID,
		Currency:    price.Currency,
		FiatAmount:  *req.FiatAmount,
		TokenPrice:  price.Price,
		BaseUnits:   amount.BaseUnits,
		TokenAmount: display,
	})
}

// formatBalance godoc
// @Summary Format a raw balance
// @Description Renders a base-unit balance with two decimals and thousands separators
// @Tags pricing
// @Produce json
// @Param balance query string true "Raw balance in base units"
// @Param decimals query int false "Token decimals (default 6)"
// @Success 200 {object} dto.Envelope{data=dto.FormatBalanceResponse}
// @Failure 400 {object} dto.Envelope "Unparseable balance"
// @Router /balances/format [get]
func (h *pricingHandler) formatBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.FormatBalanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query for FormatBalance", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	decimals := domain.TokenDecimals
	if q.Decimals != nil {
		decimals = *q.Decimals
	}

	formatted, err := h.pricingService.FormatBalance(q.Balance, decimals)
	if err != nil {
		status, msg := pricingErrorStatus(err)
		logger.Warn("Failed to format balance", slog.String("error", err.Error()))
		respondError(c, status, msg)
		return
	}

	respondOK(c, http.StatusOK, dto.FormatBalanceResponse{
		Balance:   q.Balance,
		Decimals:  decimals,
		Formatted: formatted,
	})
}
