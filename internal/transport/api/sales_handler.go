package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/service"
)

type SalesHandler struct {
	saleSvs SaleServicer
}

func NewSalesHandler(saleSvs SaleServicer) *SalesHandler {
	return &SalesHandler{
		saleSvs: saleSvs,
	}
}

type CreateSaleParams struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `binding:"max_bytes=500" json:"description"`
}

// Create POST RouteGroup + SalesRoute. Записывает продажу текущего пользователя.
func (h *SalesHandler) Create(c *gin.Context) {
	var params CreateSaleParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.saleSvs.Record(reqCtx, service.RecordSaleArgs{
		UserID:      getUserIDFromContext(c),
		Amount:      params.Amount,
		Description: params.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			abortPublic(c, http.StatusBadRequest, "Valid amount is required")
		case errors.Is(err, domain.ErrRecordNotFound):
			abortPublic(c, http.StatusUnauthorized, "User not found")
		default:
			abortInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, RecordSaleResponse{
		Sale: newSaleResponse(res.Sale),
		UserStats: UserStatsResponse{
			TotalEarnings: res.TotalEarnings.InexactFloat64(),
			TotalDeals:    res.TotalDeals,
		},
		NewAchievements: badgePayloads(res.NewAchievements),
	})
}

// Delete DELETE RouteGroup + SaleRoute. Удаляет собственную продажу.
func (h *SalesHandler) Delete(c *gin.Context) {
	saleID, ok := paramID(c, "saleId")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.saleSvs.Delete(reqCtx, getUserIDFromContext(c), saleID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			abortPublic(c, http.StatusNotFound, "Sale not found or not authorized")
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UserSales GET RouteGroup + UserSalesRoute. Последние продажи пользователя.
func (h *SalesHandler) UserSales(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	sales, err := h.saleSvs.ListByUser(reqCtx, userID, queryLimit(c))
	if err != nil {
		abortInternal(c, err)
		return
	}

	response := make([]SaleResponse, len(sales))
	for i := range sales {
		response[i] = newSaleResponse(&sales[i])
	}
	c.JSON(http.StatusOK, gin.H{"sales": response})
}
