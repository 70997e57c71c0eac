package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cambiolabs/cotacao-api/internal/apperrors"
	portssvc "github.com/cambiolabs/cotacao-api/internal/core/ports/services"
	"github.com/cambiolabs/cotacao-api/internal/dto"
	"github.com/cambiolabs/cotacao-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transacaoHandler handles HTTP requests related to simulated trades.
type transacaoHandler struct {
	transacaoService portssvc.TransacaoSvcFacade
}

func newTransacaoHandler(ts portssvc.TransacaoSvcFacade) *transacaoHandler {
	return &transacaoHandler{transacaoService: ts}
}

// registerTransacaoRoutes registers routes related to trades.
func registerTransacaoRoutes(r *gin.Engine, transacaoService portssvc.TransacaoSvcFacade) {
	h := newTransacaoHandler(transacaoService)

	transacoes := r.Group("/transacoes")
	{
		transacoes.POST("/compra", h.comprarDolar)
		transacoes.POST("/venda", h.venderDolar)
		transacoes.GET("/:id", h.getTransacao)
		transacoes.GET("/usuario/:user_id", h.getTransacoesUsuario)
		transacoes.GET("/usuario/:user_id/saldo", h.getSaldoUsuario)
	}
}

// comprarDolar godoc
// @Summary Register a USD purchase
// @Description Converts valor_brl into USD at the live rate and records the purchase
// @Tags transacoes
// @Produce json
// @Param user_id query int true "User id"
// @Param valor_brl query number true "BRL amount to spend"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Missing/invalid params, validation or persistence failure"
// @Failure 500 {object} map[string]string "Live quote unavailable"
// @Router /transacoes/compra [post]
func (h *transacaoHandler) comprarDolar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.PurchaseParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Malformed purchase params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Formato inválido para user_id ou valor_brl"})
		return
	}
	if params.UserID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Campo obrigatório ausente: user_id"})
		return
	}
	if params.ValorBRL == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Campo obrigatório ausente: valor_brl"})
		return
	}

	txn, err := h.transacaoService.RegisterPurchase(c.Request.Context(), *params.UserID, *params.ValorBRL)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Purchase rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, apperrors.ErrUpstreamUnavailable):
			logger.Error("Live quote unavailable for purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao obter cotação do dólar"})
		default:
			logger.Error("Failed to register purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"message": "Erro ao registrar compra: " + err.Error()})
		}
		return
	}

	logger.Info("Purchase registered", slog.Int64("user_id", txn.UserID), slog.Int64("transaction_id", txn.ID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// venderDolar godoc
// @Summary Register a USD sale
// @Description Converts quantidade_usd into BRL at the live rate and records the sale, enforcing the user's balance
// @Tags transacoes
// @Produce json
// @Param user_id query int true "User id"
// @Param quantidade_usd query number true "USD quantity to sell"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Missing/invalid params, validation or persistence failure"
// @Failure 500 {object} map[string]string "Live quote unavailable"
// @Router /transacoes/venda [post]
func (h *transacaoHandler) venderDolar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SaleParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Malformed sale params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Formato inválido para user_id ou quantidade_usd"})
		return
	}
	if params.UserID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Campo obrigatório ausente: user_id"})
		return
	}
	if params.QuantidadeUSD == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Campo obrigatório ausente: quantidade_usd"})
		return
	}

	txn, err := h.transacaoService.RegisterSale(c.Request.Context(), *params.UserID, *params.QuantidadeUSD)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Sale rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, apperrors.ErrUpstreamUnavailable):
			logger.Error("Live quote unavailable for sale", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao obter cotação do dólar"})
		default:
			logger.Error("Failed to register sale", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"message": "Erro ao registrar venda: " + err.Error()})
		}
		return
	}

	logger.Info("Sale registered", slog.Int64("user_id", txn.UserID), slog.Int64("transaction_id", txn.ID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransacao godoc
// @Summary Get one transaction
// @Tags transacoes
// @Produce json
// @Param id path int true "Transaction id"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Lookup failure"
// @Router /transacoes/{id} [get]
func (h *transacaoHandler) getTransacao(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transação não encontrada"})
		return
	}

	txn, err := h.transacaoService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Transação não encontrada"})
			return
		}
		logger.Error("Failed to get transaction", slog.Int64("transaction_id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao consultar transação"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// getTransacoesUsuario godoc
// @Summary List a user's transactions
// @Tags transacoes
// @Produce json
// @Param user_id path int true "User id"
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} map[string]string "Listing failure"
// @Router /transacoes/usuario/{user_id} [get]
func (h *transacaoHandler) getTransacoesUsuario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Usuário inválido"})
		return
	}

	txns, err := h.transacaoService.ListUserTransactions(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list user transactions", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao consultar transações do usuário"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionListResponse(txns))
}

// getSaldoUsuario godoc
// @Summary Get a user's USD balance
// @Tags transacoes
// @Produce json
// @Param user_id path int true "User id"
// @Success 200 {object} dto.SaldoResponse
// @Failure 500 {object} map[string]string "Balance calculation failure"
// @Router /transacoes/usuario/{user_id}/saldo [get]
func (h *transacaoHandler) getSaldoUsuario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Usuário inválido"})
		return
	}

	saldo, err := h.transacaoService.CalculateUserBalance(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to calculate balance", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao calcular saldo"})
		return
	}

	c.JSON(http.StatusOK, dto.SaldoResponse{SaldoUSD: saldo})
}
