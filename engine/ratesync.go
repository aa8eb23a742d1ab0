package engine

import (
	"context"
	"errors"
	"strings"
	"time"

	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RateSource values accepted on a rate-sync request.
const (
	RateSourceAuto   = "auto"
	RateSourceManual = "manual"
)

// RateFetcher pulls comparison rates for the targets against the base
// currency from an external source.
type RateFetcher interface {
	Fetch(ctx context.Context, base string, targets []string) (map[string]decimal.Decimal, error)
}

// RateSyncResult is a rate-sync request together with its per-pair items.
type RateSyncResult struct {
	Request db.RateSyncRequest `json:"request"`
	Items   []db.RateSyncItem  `json:"items"`
}

// RateSyncCoordinator holds proposed exchange rates as pending requests with
// an expiry, and applies or discards them on approval or rejection.
type RateSyncCoordinator struct {
	store   db.Store
	dir     *Directory
	fetcher RateFetcher
	ttl     time.Duration
}

func NewRateSyncCoordinator(store db.Store, dir *Directory, fetcher RateFetcher, ttl time.Duration) *RateSyncCoordinator {
	return &RateSyncCoordinator{store: store, dir: dir, fetcher: fetcher, ttl: ttl}
}

// InitiateSync fetches comparison rates for every target against the base
// currency and persists them as a pending request. Active rates are not
// touched until approval.
func (c *RateSyncCoordinator) InitiateSync(ctx context.Context, base, source, initiatedBy string, targets []string) (RateSyncResult, error) {
	fields := ValidationError{}

	if source != RateSourceAuto && source != RateSourceManual {
		fields["source"] = "source must be auto or manual"
	}
	if initiatedBy == "" {
		fields["initiated_by"] = "initiating actor is required"
	}

	if _, ok, err := c.dir.CurrencyByCode(ctx, base); err != nil {
		return RateSyncResult{}, err
	} else if !ok {
		fields["base_currency"] = "base currency is not an active currency"
	}

	if len(targets) == 0 {
		fields["target_currencies"] = "at least one target currency is required"
	}
	seen := map[string]bool{}
	for _, target := range targets {
		if target == base {
			fields["target_currencies"] = "target currencies must not include the base"
			break
		}
		if seen[target] {
			fields["target_currencies"] = "target currencies must be unique"
			break
		}
		seen[target] = true
		if _, ok, err := c.dir.CurrencyByCode(ctx, target); err != nil {
			return RateSyncResult{}, err
		} else if !ok {
			fields["target_currencies"] = "unknown target currency " + target
			break
		}
	}

	if len(fields) > 0 {
		return RateSyncResult{}, fields
	}

	fetched, err := c.fetcher.Fetch(ctx, base, targets)
	if err != nil {
		return RateSyncResult{}, err
	}

	// Every item is built and checked before anything is written; the tx
	// then persists request and items together, so a failure can never
	// leave an approvable request with a partial rate set.
	items := make([]db.CreateRateSyncItemParams, 0, len(targets))
	for _, target := range targets {
		rate, ok := fetched[target]
		if !ok {
			return RateSyncResult{}, ValidationError{"target_currencies": "rate source returned no rate for " + target}
		}

		item := db.CreateRateSyncItemParams{
			TargetCode:  target,
			FetchedRate: rate,
			Change:      rate,
			Source:      source,
		}
		current, err := c.store.GetActiveExchangeRate(ctx, db.GetActiveExchangeRateParams{
			BaseCode:   base,
			TargetCode: target,
		})
		switch {
		case err == nil:
			item.CurrentRate = decimal.NullDecimal{Decimal: current.Rate, Valid: true}
			item.Change = rate.Sub(current.Rate)
			if !current.Rate.IsZero() {
				item.ChangePercentage = item.Change.Div(current.Rate).Mul(decimal.NewFromInt(100)).Round(6)
			}
		case errors.Is(err, db.ErrRecordNotFound):
			// First rate for this pair; the whole fetched value is
			// the change.
		default:
			return RateSyncResult{}, err
		}
		items = append(items, item)
	}

	created, err := c.store.InitiateRateSyncTx(ctx, db.InitiateRateSyncTxParams{
		Request: db.CreateRateSyncRequestParams{
			BaseCode:    base,
			Source:      source,
			InitiatedBy: initiatedBy,
			ExpiresAt:   time.Now().Add(c.ttl),
		},
		Items: items,
	})
	if err != nil {
		return RateSyncResult{}, err
	}

	log.Info().
		Str("request_id", created.Request.ID.String()).
		Str("base", base).
		Int("targets", len(targets)).
		Msg("rate sync initiated")
	return RateSyncResult{Request: created.Request, Items: created.Items}, nil
}

// GetSyncRequest returns a request with its rate items.
func (c *RateSyncCoordinator) GetSyncRequest(ctx context.Context, id uuid.UUID) (RateSyncResult, error) {
	request, err := c.store.GetRateSyncRequest(ctx, id)
	if err != nil {
		return RateSyncResult{}, err
	}
	items, err := c.store.ListRateSyncItems(ctx, id)
	if err != nil {
		return RateSyncResult{}, err
	}
	return RateSyncResult{Request: request, Items: items}, nil
}

// ApproveSync applies a pending, unexpired request: one new active exchange
// rate per target currency, each keeping its predecessor for audit history.
// The expiry check runs inside the same atomic step that applies the rates.
func (c *RateSyncCoordinator) ApproveSync(ctx context.Context, id uuid.UUID, actor, notes string, spread decimal.NullDecimal) (db.RateSyncRequest, []db.ExchangeRate, error) {
	request, err := c.store.GetRateSyncRequest(ctx, id)
	if err != nil {
		return db.RateSyncRequest{}, nil, err
	}
	if actor == "" {
		return db.RateSyncRequest{}, nil, ValidationError{"actor": "acting user is required"}
	}
	notes = strings.TrimSpace(notes)
	if len(notes) > MaxNoteLength {
		return db.RateSyncRequest{}, nil, ValidationError{"notes": "notes must be at most 500 characters"}
	}
	if spread.Valid && spread.Decimal.IsNegative() {
		return db.RateSyncRequest{}, nil, ValidationError{"spread_percentage": "spread percentage must not be negative"}
	}
	if err := c.checkActionable(request, ActionApprove); err != nil {
		return db.RateSyncRequest{}, nil, err
	}

	result, err := c.store.ApproveRateSyncTx(ctx, db.ApproveRateSyncTxParams{
		Approval: db.ApproveRateSyncRequestParams{
			ID:               request.ID,
			Version:          request.Version,
			Actor:            actor,
			Notes:            textOrNull(notes),
			SpreadPercentage: spread,
		},
	})
	if err != nil {
		return db.RateSyncRequest{}, nil, c.mapSyncError(ctx, request, ActionApprove, err)
	}

	log.Info().
		Str("request_id", request.ID.String()).
		Int("rates_applied", len(result.Rates)).
		Str("approved_by", actor).
		Msg("rate sync approved")
	return result.Request, result.Rates, nil
}

// RejectSync discards a pending request without touching active rates.
func (c *RateSyncCoordinator) RejectSync(ctx context.Context, id uuid.UUID, actor, notes string) (db.RateSyncRequest, error) {
	request, err := c.store.GetRateSyncRequest(ctx, id)
	if err != nil {
		return db.RateSyncRequest{}, err
	}
	if actor == "" {
		return db.RateSyncRequest{}, ValidationError{"actor": "acting user is required"}
	}
	notes = strings.TrimSpace(notes)
	if len(notes) > MaxNoteLength {
		return db.RateSyncRequest{}, ValidationError{"notes": "notes must be at most 500 characters"}
	}
	if err := c.checkActionable(request, ActionReject); err != nil {
		return db.RateSyncRequest{}, err
	}

	updated, err := c.store.RejectRateSyncRequest(ctx, db.RejectRateSyncRequestParams{
		ID:      request.ID,
		Version: request.Version,
		Actor:   actor,
		Notes:   textOrNull(notes),
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = db.ErrVersionConflict
		}
		return db.RateSyncRequest{}, c.mapSyncError(ctx, request, ActionReject, err)
	}
	return updated, nil
}

// CleanupExpiredSync transitions every pending request past its expiry to
// expired. Safe to run repeatedly and concurrently with approvals.
func (c *RateSyncCoordinator) CleanupExpiredSync(ctx context.Context) (int64, error) {
	expired, err := c.store.ExpireRateSyncRequests(ctx)
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		log.Info().Int64("expired", expired).Msg("expired stale rate sync requests")
	}
	return expired, nil
}

// checkActionable rejects actions on settled or expired requests up front;
// the store-level preconditions still decide races.
func (c *RateSyncCoordinator) checkActionable(request db.RateSyncRequest, action Action) error {
	if request.Status != db.RateSyncStatusPending {
		return &InvalidTransitionError{Current: string(request.Status), Action: action}
	}
	if !request.ExpiresAt.After(time.Now()) {
		return &ExpiredRequestError{RequestID: request.ID, ExpiredAt: request.ExpiresAt}
	}
	return nil
}

func (c *RateSyncCoordinator) mapSyncError(ctx context.Context, request db.RateSyncRequest, action Action, err error) error {
	switch {
	case errors.Is(err, db.ErrRequestExpired):
		return &ExpiredRequestError{RequestID: request.ID, ExpiredAt: request.ExpiresAt}
	case errors.Is(err, db.ErrVersionConflict):
		current, getErr := c.store.GetRateSyncRequest(ctx, request.ID)
		if getErr != nil {
			return getErr
		}
		if current.Status == db.RateSyncStatusExpired {
			return &ExpiredRequestError{RequestID: request.ID, ExpiredAt: current.ExpiresAt}
		}
		if current.Status != db.RateSyncStatusPending {
			return &InvalidTransitionError{Current: string(current.Status), Action: action}
		}
		return &ConcurrentModificationError{EntityID: request.ID}
	default:
		return err
	}
}
