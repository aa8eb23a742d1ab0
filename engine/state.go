package engine

import (
	db "github.com/ChokeGuy/exchange-office/db/sqlc"
)

// Action is a lifecycle operation on a transfer.
type Action string

const (
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionCancel   Action = "cancel"
	ActionDispatch Action = "dispatch"
	ActionComplete Action = "complete"
)

// transitions is the single source of truth for the transfer lifecycle.
// Statuses absent from the outer map are terminal.
var transitions = map[db.TransferStatus]map[Action]db.TransferStatus{
	db.TransferStatusPending: {
		ActionApprove: db.TransferStatusApproved,
		ActionReject:  db.TransferStatusRejected,
		ActionCancel:  db.TransferStatusCancelled,
	},
	db.TransferStatusApproved: {
		ActionDispatch: db.TransferStatusInTransit,
		ActionComplete: db.TransferStatusCompleted,
		ActionCancel:   db.TransferStatusCancelled,
	},
	db.TransferStatusInTransit: {
		ActionComplete: db.TransferStatusCompleted,
	},
}

// NextStatus resolves an action against the transition table.
func NextStatus(current db.TransferStatus, action Action) (db.TransferStatus, error) {
	next, ok := transitions[current][action]
	if !ok {
		return "", &InvalidTransitionError{Current: string(current), Action: action}
	}
	return next, nil
}

// IsTerminal reports whether no further transition is permitted.
func IsTerminal(status db.TransferStatus) bool {
	return len(transitions[status]) == 0
}

// InvolvesVault reports whether the source or destination of a transfer type
// is a vault. Vault-involving transfers earmark funds at approval and may
// pass through in_transit.
func InvolvesVault(t db.TransferType) bool {
	return t != db.TransferTypeBranchToBranch
}

// ReservesAtApproval reports whether approving a transfer of this type
// reserves the amount against the source holder.
func ReservesAtApproval(t db.TransferType) bool {
	return InvolvesVault(t)
}
