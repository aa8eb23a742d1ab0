package ratesync

import (
	"errors"
	"io"
	"net/http"

	dto "github.com/ChokeGuy/exchange-office/api/ratesync/dto"
	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	"github.com/ChokeGuy/exchange-office/engine"
	res "github.com/ChokeGuy/exchange-office/pkg/http_response"
	"github.com/ChokeGuy/exchange-office/pkg/middlewares/actor"
	sv "github.com/ChokeGuy/exchange-office/server"
	"github.com/ChokeGuy/exchange-office/validations"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RateSyncHandler struct {
	*sv.Server
}

func NewRateSyncHandler(server *sv.Server) *RateSyncHandler {
	return &RateSyncHandler{Server: server}
}

func (h *RateSyncHandler) MapRoutes() {
	router := h.Router

	actorRoutes := router.Group("/").Use(actor.ActorMiddleWare())

	actorRoutes.POST("/rate-sync", h.initiateSync)
	actorRoutes.GET("/rate-sync/:id", h.getSyncRequest)
	actorRoutes.POST("/rate-sync/:id/approve", h.approveSync)
	actorRoutes.POST("/rate-sync/:id/reject", h.rejectSync)
}

func (h *RateSyncHandler) initiateSync(ctx *gin.Context) {
	var req dto.InitiateSyncRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		validations.HandleValidationError(ctx, err)
		return
	}

	result, err := h.RateSync.InitiateSync(ctx, req.BaseCurrency, req.Source, actor.FromContext(ctx), req.TargetCurrencies)
	if err != nil {
		h.handleEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, res.CreatedResponse(result, "Rate sync initiated successfully"))
}

func (h *RateSyncHandler) getSyncRequest(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, res.ErrorResponse(http.StatusBadRequest, "invalid request id"))
		return
	}

	result, err := h.RateSync.GetSyncRequest(ctx, id)
	if err != nil {
		h.handleEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(result, "Rate sync request retrieved successfully"))
}

func (h *RateSyncHandler) approveSync(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, res.ErrorResponse(http.StatusBadRequest, "invalid request id"))
		return
	}

	var req dto.ApproveSyncRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		validations.HandleValidationError(ctx, err)
		return
	}

	var spread decimal.NullDecimal
	if req.SpreadPercentage != nil {
		spread = decimal.NullDecimal{Decimal: *req.SpreadPercentage, Valid: true}
	}

	request, applied, err := h.RateSync.ApproveSync(ctx, id, actor.FromContext(ctx), req.Notes, spread)
	if err != nil {
		h.handleEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(gin.H{
		"request": request,
		"rates":   applied,
	}, "Rate sync approved successfully"))
}

func (h *RateSyncHandler) rejectSync(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, res.ErrorResponse(http.StatusBadRequest, "invalid request id"))
		return
	}

	var req dto.RejectSyncRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		validations.HandleValidationError(ctx, err)
		return
	}

	request, err := h.RateSync.RejectSync(ctx, id, actor.FromContext(ctx), req.Notes)
	if err != nil {
		h.handleEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(request, "Rate sync rejected successfully"))
}

func (h *RateSyncHandler) handleEngineError(ctx *gin.Context, err error) {
	var (
		fieldErr      engine.ValidationError
		badTransition *engine.InvalidTransitionError
		concurrent    *engine.ConcurrentModificationError
		expired       *engine.ExpiredRequestError
	)

	switch {
	case errors.As(err, &fieldErr):
		ctx.JSON(http.StatusBadRequest, res.ValidationErrorResponse(http.StatusBadRequest, fieldErr))
	case errors.Is(err, db.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, res.ErrorResponse(http.StatusNotFound, "rate sync request not found"))
	case errors.As(err, &expired):
		ctx.JSON(http.StatusGone, res.ErrorResponse(http.StatusGone, err.Error()))
	case errors.As(err, &badTransition):
		ctx.JSON(http.StatusConflict, res.ErrorResponse(http.StatusConflict, err.Error()))
	case errors.As(err, &concurrent):
		ctx.JSON(http.StatusConflict, res.ErrorResponse(http.StatusConflict, err.Error()))
	default:
		ctx.JSON(http.StatusInternalServerError, res.ErrorResponse(http.StatusInternalServerError, err.Error()))
	}
}
