package directory

import (
	"database/sql"
	"errors"
	"net/http"

	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	res "github.com/ChokeGuy/exchange-office/pkg/http_response"
	"github.com/ChokeGuy/exchange-office/pkg/middlewares/actor"
	sv "github.com/ChokeGuy/exchange-office/server"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DirectoryHandler struct {
	*sv.Server
}

func NewDirectoryHandler(server *sv.Server) *DirectoryHandler {
	return &DirectoryHandler{Server: server}
}

func (h *DirectoryHandler) MapRoutes() {
	router := h.Router

	actorRoutes := router.Group("/").Use(actor.ActorMiddleWare())

	actorRoutes.GET("/currencies", h.listCurrencies)
	actorRoutes.GET("/branches", h.listBranches)
	actorRoutes.GET("/vaults", h.listVaults)
	actorRoutes.GET("/balances", h.getBalance)
	actorRoutes.GET("/rates", h.listRates)
}

func (h *DirectoryHandler) listCurrencies(ctx *gin.Context) {
	currencies, err := h.Store.ListActiveCurrencies(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, res.ErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(currencies, "Currencies retrieved successfully"))
}

func (h *DirectoryHandler) listBranches(ctx *gin.Context) {
	branches, err := h.Store.ListBranches(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, res.ErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(branches, "Branches retrieved successfully"))
}

func (h *DirectoryHandler) listVaults(ctx *gin.Context) {
	vaults, err := h.Store.ListVaults(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, res.ErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(vaults, "Vaults retrieved successfully"))
}

type getBalanceRequest struct {
	HolderID   string `form:"holderId" binding:"required,uuid"`
	CurrencyID string `form:"currencyId" binding:"required,uuid"`
}

func (h *DirectoryHandler) getBalance(ctx *gin.Context) {
	var req getBalanceRequest

	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, res.ErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	balance, err := h.Store.GetBalance(ctx, db.GetBalanceParams{
		HolderID:   uuid.MustParse(req.HolderID),
		CurrencyID: uuid.MustParse(req.CurrencyID),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, res.ErrorResponse(http.StatusNotFound, "balance not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, res.ErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(gin.H{
		"holderId":   balance.HolderID,
		"currencyId": balance.CurrencyID,
		"balance":    balance.Balance,
		"reserved":   balance.Reserved,
		"available":  balance.Available(),
		"updatedAt":  balance.UpdatedAt,
	}, "Balance retrieved successfully"))
}

type listRatesRequest struct {
	Base string `form:"base" binding:"required,currencycode"`
}

func (h *DirectoryHandler) listRates(ctx *gin.Context) {
	var req listRatesRequest

	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, res.ErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	rates, err := h.Store.ListActiveExchangeRates(ctx, req.Base)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, res.ErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(rates, "Exchange rates retrieved successfully"))
}
