package ledger

import (
	"fmt"

	"wallet-ledger/internal/model"
)

var withdrawalTransitions = map[model.WithdrawalStatus][]model.WithdrawalStatus{
	model.WithdrawalPending: {
		model.WithdrawalProcessing,
		model.WithdrawalCompleted,
		model.WithdrawalFailed,
		model.WithdrawalRejected,
	},
	model.WithdrawalProcessing: {
		model.WithdrawalCompleted,
		model.WithdrawalFailed,
		model.WithdrawalRejected,
	},
}

// CanTransition reports whether a withdrawal may move from one status to another.
func CanTransition(from, to model.WithdrawalStatus) bool {
	for _, next := range withdrawalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition validates a status change. Re-applying the current status is
// a no-op and reported through noop rather than as an error.
func CheckTransition(from, to model.WithdrawalStatus) (noop bool, err error) {
	if from == to {
		return true, nil
	}
	if !CanTransition(from, to) {
		return false, fmt.Errorf("%w: %s -> %s", model.ErrInvalidStatusTransition, from, to)
	}
	return false, nil
}
