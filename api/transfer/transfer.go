package transfer

import (
	"errors"
	"io"
	"net/http"
	"time"

	dto "github.com/ChokeGuy/exchange-office/api/transfer/dto"
	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	"github.com/ChokeGuy/exchange-office/engine"
	res "github.com/ChokeGuy/exchange-office/pkg/http_response"
	"github.com/ChokeGuy/exchange-office/pkg/middlewares/actor"
	sv "github.com/ChokeGuy/exchange-office/server"
	"github.com/ChokeGuy/exchange-office/validations"
	"github.com/ChokeGuy/exchange-office/worker"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

type TransferHandler struct {
	*sv.Server
}

func NewTransferHandler(server *sv.Server) *TransferHandler {
	return &TransferHandler{Server: server}
}

func (h *TransferHandler) MapRoutes() {
	router := h.Router

	actorRoutes := router.Group("/").Use(actor.ActorMiddleWare())

	actorRoutes.POST("/transfers", h.createTransfer)
	actorRoutes.GET("/transfers", h.listTransfers)
	actorRoutes.GET("/transfers/awaiting-approval", h.listAwaitingApproval)
	actorRoutes.GET("/transfers/:id", h.getTransfer)
	actorRoutes.POST("/transfers/:id/approve", h.approveTransfer)
	actorRoutes.POST("/transfers/:id/reject", h.rejectTransfer)
	actorRoutes.POST("/transfers/:id/cancel", h.cancelTransfer)
	actorRoutes.POST("/transfers/:id/dispatch", h.dispatchTransfer)
	actorRoutes.POST("/transfers/:id/complete", h.completeTransfer)
}

func (h *TransferHandler) createTransfer(ctx *gin.Context) {
	var req dto.CreateTransferRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		validations.HandleValidationError(ctx, err)
		return
	}

	arg := engine.CreateTransferParams{
		Payload:         buildPayload(req),
		CurrencyID:      mustUUID(req.CurrencyID),
		Amount:          req.Amount,
		Description:     req.Description,
		Notes:           req.Notes,
		ReferenceNumber: req.ReferenceNumber,
		InitiatedBy:     actor.FromContext(ctx),
	}

	transfer, err := h.Transfers.CreateTransfer(ctx, arg)
	if err != nil {
		h.handleEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, res.CreatedResponse(transfer, "Transfer created successfully"))
}

func (h *TransferHandler) getTransfer(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, res.ErrorResponse(http.StatusBadRequest, "invalid transfer id"))
		return
	}

	transfer, err := h.Transfers.GetTransfer(ctx, id)
	if err != nil {
		h.handleEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(transfer, "Transfer retrieved successfully"))
}

func (h *TransferHandler) listTransfers(ctx *gin.Context) {
	var req dto.ListTransfersRequest

	if err := ctx.ShouldBindQuery(&req); err != nil {
		validations.HandleValidationError(ctx, err)
		return
	}

	filter := engine.TransferFilter{
		Status:       db.TransferStatus(req.Status),
		TransferType: db.TransferType(req.TransferType),
		InitiatedBy:  req.InitiatedBy,
		Limit:        req.Limit,
		Offset:       req.Offset,
	}
	if req.HolderID != "" {
		filter.HolderID = mustUUID(req.HolderID)
	}

	transfers, err := h.Transfers.ListTransfers(ctx, filter)
	if err != nil {
		h.handleEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(transfers, "Transfers retrieved successfully"))
}

func (h *TransferHandler) listAwaitingApproval(ctx *gin.Context) {
	var req dto.ListTransfersRequest

	if err := ctx.ShouldBindQuery(&req); err != nil {
		validations.HandleValidationError(ctx, err)
		return
	}

	transfers, err := h.Transfers.ListAwaitingApproval(ctx, actor.FromContext(ctx), req.Limit, req.Offset)
	if err != nil {
		h.handleEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(transfers, "Transfers retrieved successfully"))
}

func (h *TransferHandler) approveTransfer(ctx *gin.Context) {
	h.transition(ctx, func(id uuid.UUID, act, notes string) (db.Transfer, error) {
		return h.Transfers.ApproveTransfer(ctx, id, act, notes)
	}, "Transfer approved successfully")
}

func (h *TransferHandler) rejectTransfer(ctx *gin.Context) {
	h.transition(ctx, func(id uuid.UUID, act, notes string) (db.Transfer, error) {
		return h.Transfers.RejectTransfer(ctx, id, act, notes)
	}, "Transfer rejected successfully")
}

func (h *TransferHandler) dispatchTransfer(ctx *gin.Context) {
	h.transition(ctx, func(id uuid.UUID, act, notes string) (db.Transfer, error) {
		return h.Transfers.DispatchTransfer(ctx, id, act, notes)
	}, "Transfer dispatched successfully")
}

func (h *TransferHandler) cancelTransfer(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, res.ErrorResponse(http.StatusBadRequest, "invalid transfer id"))
		return
	}

	// The body is optional; cancelling without a reason is allowed.
	var req dto.CancelTransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		validations.HandleValidationError(ctx, err)
		return
	}

	transfer, err := h.Transfers.CancelTransfer(ctx, id, actor.FromContext(ctx), req.Reason)
	if err != nil {
		h.handleEngineError(ctx, err)
		return
	}

	h.notifyStatusChange(ctx, transfer)
	ctx.JSON(http.StatusOK, res.SuccessResponse(transfer, "Transfer cancelled successfully"))
}

func (h *TransferHandler) completeTransfer(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, res.ErrorResponse(http.StatusBadRequest, "invalid transfer id"))
		return
	}

	transfer, err := h.Transfers.CompleteTransfer(ctx, id, actor.FromContext(ctx))
	if err != nil {
		h.handleEngineError(ctx, err)
		return
	}

	h.notifyStatusChange(ctx, transfer)
	ctx.JSON(http.StatusOK, res.SuccessResponse(transfer, "Transfer completed successfully"))
}

func (h *TransferHandler) transition(ctx *gin.Context, apply func(uuid.UUID, string, string) (db.Transfer, error), message string) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, res.ErrorResponse(http.StatusBadRequest, "invalid transfer id"))
		return
	}

	var req dto.TransferActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		validations.HandleValidationError(ctx, err)
		return
	}

	transfer, err := apply(id, actor.FromContext(ctx), req.Notes)
	if err != nil {
		h.handleEngineError(ctx, err)
		return
	}

	h.notifyStatusChange(ctx, transfer)
	ctx.JSON(http.StatusOK, res.SuccessResponse(transfer, message))
}

// notifyStatusChange enqueues the branch notification email; a failed
// enqueue never fails the transition itself.
func (h *TransferHandler) notifyStatusChange(ctx *gin.Context, transfer db.Transfer) {
	if h.TaskDistributor == nil {
		return
	}

	payload := &worker.PayloadNotifyTransferStatus{
		TransferID: transfer.ID,
		Status:     string(transfer.Status),
	}
	opts := []asynq.Option{
		asynq.MaxRetry(10),
		asynq.ProcessIn(5 * time.Second),
		asynq.Queue(worker.QueueDefault),
	}
	if err := h.TaskDistributor.DistributeTaskNotifyTransferStatus(ctx, payload, opts...); err != nil {
		log.Error().Err(err).
			Str("transfer_id", transfer.ID.String()).
			Msg("fail to enqueue transfer notification")
	}
}

func (h *TransferHandler) handleEngineError(ctx *gin.Context, err error) {
	var (
		fieldErr      engine.ValidationError
		sameEndpoint  *engine.SameEndpointError
		badTransition *engine.InvalidTransitionError
		concurrent    *engine.ConcurrentModificationError
		noFunds       *engine.InsufficientFundsError
	)

	switch {
	case errors.As(err, &fieldErr):
		ctx.JSON(http.StatusBadRequest, res.ValidationErrorResponse(http.StatusBadRequest, fieldErr))
	case errors.As(err, &sameEndpoint):
		ctx.JSON(http.StatusBadRequest, res.ErrorResponse(http.StatusBadRequest, err.Error()))
	case errors.Is(err, db.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, res.ErrorResponse(http.StatusNotFound, "transfer not found"))
	case errors.As(err, &badTransition):
		ctx.JSON(http.StatusConflict, res.ErrorResponse(http.StatusConflict, err.Error()))
	case errors.As(err, &concurrent):
		ctx.JSON(http.StatusConflict, res.ErrorResponse(http.StatusConflict, err.Error()))
	case errors.As(err, &noFunds):
		ctx.JSON(http.StatusBadRequest, res.ErrorResponse(http.StatusBadRequest, err.Error()))
	default:
		ctx.JSON(http.StatusInternalServerError, res.ErrorResponse(http.StatusInternalServerError, err.Error()))
	}
}

// buildPayload folds the flat request into the tagged payload variant.
func buildPayload(req dto.CreateTransferRequest) engine.TransferPayload {
	switch db.TransferType(req.TransferType) {
	case db.TransferTypeBranchToBranch:
		return engine.BranchToBranchPayload{
			FromBranchID: mustUUID(req.FromBranchID),
			ToBranchID:   mustUUID(req.ToBranchID),
		}
	case db.TransferTypeVaultToBranch:
		return engine.VaultToBranchPayload{
			VaultID:  mustUUID(req.VaultID),
			BranchID: mustUUID(req.BranchID),
		}
	case db.TransferTypeBranchToVault:
		return engine.BranchToVaultPayload{
			BranchID: mustUUID(req.BranchID),
			VaultID:  mustUUID(req.VaultID),
		}
	case db.TransferTypeVaultToVault:
		return engine.VaultToVaultPayload{
			FromVaultID: mustUUID(req.FromVaultID),
			ToVaultID:   mustUUID(req.ToVaultID),
		}
	default:
		return nil
	}
}

// mustUUID parses ids the binding layer already format-checked; anything
// else comes back as uuid.Nil for the engine validator to flag.
func mustUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
