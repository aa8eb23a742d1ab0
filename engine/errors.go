package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidationError is a field-keyed map of human-readable messages. A request
// must not be resubmitted until the map would come back empty.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// SameEndpointError rejects a transfer whose source and destination are the
// same holder.
type SameEndpointError struct {
	TransferType db.TransferType
	HolderID     uuid.UUID
}

func (e *SameEndpointError) Error() string {
	return fmt.Sprintf("%s transfer: source and destination are the same holder %s", e.TransferType, e.HolderID)
}

// InvalidTransitionError names the current status and the action that does
// not apply to it. Current is the status string of either entity kind the
// engine manages.
type InvalidTransitionError struct {
	Current string
	Action  Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s from status %q", e.Action, e.Current)
}

// InsufficientFundsError is raised at approve/complete time, never at
// creation; the transfer stays in its prior status.
type InsufficientFundsError struct {
	HolderID   uuid.UUID
	CurrencyID uuid.UUID
	Requested  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("holder %s has insufficient available balance for %s of currency %s",
		e.HolderID, e.Requested, e.CurrencyID)
}

// ExpiredRequestError means a rate-sync approval arrived past expiry; the
// caller must initiate a fresh request.
type ExpiredRequestError struct {
	RequestID uuid.UUID
	ExpiredAt time.Time
}

func (e *ExpiredRequestError) Error() string {
	return fmt.Sprintf("rate sync request %s expired at %s", e.RequestID, e.ExpiredAt.Format(time.RFC3339))
}

// ConcurrentModificationError means the caller lost a race on a shared
// transition; re-fetch current state before retrying.
type ConcurrentModificationError struct {
	EntityID uuid.UUID
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("entity %s was modified concurrently, re-fetch and retry", e.EntityID)
}
