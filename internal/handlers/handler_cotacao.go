package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cambiolabs/cotacao-api/internal/apperrors"
	portssvc "github.com/cambiolabs/cotacao-api/internal/core/ports/services"
	"github.com/cambiolabs/cotacao-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cotacaoHandler handles HTTP requests related to exchange rate quotes.
type cotacaoHandler struct {
	cotacaoService portssvc.CotacaoSvcFacade
}

func newCotacaoHandler(cs portssvc.CotacaoSvcFacade) *cotacaoHandler {
	return &cotacaoHandler{cotacaoService: cs}
}

// registerCotacaoRoutes registers routes related to quotes.
func registerCotacaoRoutes(r *gin.Engine, cotacaoService portssvc.CotacaoSvcFacade) {
	h := newCotacaoHandler(cotacaoService)

	cotacao := r.Group("/cotacao")
	{
		cotacao.GET("/", h.getCotacao)
		cotacao.POST("/", h.addCotacao)
		cotacao.GET("/historico", h.getHistorico)
	}
}

// getCotacao godoc
// @Summary Current USD/BRL quote
// @Description Returns today's stored quote when available, otherwise the live external quote without persisting it
// @Tags cotacao
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 500 {object} map[string]string "Upstream quote service unavailable"
// @Router /cotacao/ [get]
func (h *cotacaoHandler) getCotacao(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	quote, err := h.cotacaoService.GetCurrentQuote(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			logger.Error("External quote service unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao consultar cotação externa"})
			return
		}
		logger.Error("Failed to get current quote", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao consultar cotação"})
		return
	}

	c.JSON(http.StatusOK, quote)
}

// addCotacao godoc
// @Summary Persist the current USD/BRL quote
// @Description Fetches the live quote and stores every parsed rate record in one transaction
// @Tags cotacao
// @Produce json
// @Success 201 {object} dto.QuoteResponse
// @Failure 500 {object} map[string]string "Fetch, parse or persistence failure"
// @Router /cotacao/ [post]
func (h *cotacaoHandler) addCotacao(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	quote, err := h.cotacaoService.SaveCurrentQuote(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUpstreamUnavailable):
			logger.Error("External quote service unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao consultar cotação externa"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Error("Unusable quote payload", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao processar dados de cotação"})
		default:
			logger.Error("Failed to save quote", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao salvar cotação: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, quote)
}

// getHistorico godoc
// @Summary Quote history
// @Description Returns all stored quotes ordered by date descending
// @Tags cotacao
// @Produce json
// @Success 200 {array} dto.QuoteHistoryItem
// @Failure 500 {object} map[string]string "Failed to list quote history"
// @Router /cotacao/historico [get]
func (h *cotacaoHandler) getHistorico(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	history, err := h.cotacaoService.ListQuoteHistory(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list quote history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao consultar histórico de cotações"})
		return
	}

	c.JSON(http.StatusOK, history)
}
