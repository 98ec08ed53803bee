// Package booking contains domain-level rules for the job lifecycle.
// It is pure: no storage, no transport, no clock.
package booking

import (
	"github.com/dtapi/booking-go/internal/domain/model"
)

// Operation identifies a lifecycle transition request.
type Operation string

const (
	// OpAccept confirms a translator on an open job.
	OpAccept Operation = "accept"
	// OpCancel cancels a job before or after acceptance.
	OpCancel Operation = "cancel"
	// OpStart moves an accepted job into its live session.
	OpStart Operation = "start"
	// OpEnd completes a running or accepted job.
	OpEnd Operation = "end"
	// OpNotCall records a customer no-show on an accepted job.
	OpNotCall Operation = "not_call"
	// OpReopen returns a terminal job to the bidding pool.
	OpReopen Operation = "reopen"
)

// Rule describes one row of the transition table: the states an operation may
// start from and the state it lands in.
type Rule struct {
	Sources []model.JobStatus
	Target  model.JobStatus
}

// transitions is the complete lifecycle table. Every operation the engine
// exposes must be a row here; anything else is an invalid transition.
var transitions = map[Operation]Rule{
	OpAccept: {
		Sources: []model.JobStatus{model.JobStatusPending, model.JobStatusAssigned},
		Target:  model.JobStatusAccepted,
	},
	OpCancel: {
		Sources: []model.JobStatus{model.JobStatusPending, model.JobStatusAssigned, model.JobStatusAccepted},
		Target:  model.JobStatusCancelled,
	},
	OpStart: {
		Sources: []model.JobStatus{model.JobStatusAccepted},
		Target:  model.JobStatusInProgress,
	},
	OpEnd: {
		Sources: []model.JobStatus{model.JobStatusInProgress, model.JobStatusAccepted},
		Target:  model.JobStatusCompleted,
	},
	OpNotCall: {
		Sources: []model.JobStatus{model.JobStatusAccepted},
		Target:  model.JobStatusNotCalled,
	},
	OpReopen: {
		Sources: []model.JobStatus{model.JobStatusCancelled, model.JobStatusNotCalled},
		Target:  model.JobStatusPending,
	},
}

// RuleFor returns the transition rule for an operation.
func RuleFor(op Operation) (Rule, bool) {
	rule, ok := transitions[op]
	return rule, ok
}

// Allowed reports whether the operation is legal from the given state.
func Allowed(op Operation, from model.JobStatus) bool {
	rule, ok := transitions[op]
	if !ok {
		return false
	}
	for _, s := range rule.Sources {
		if s == from {
			return true
		}
	}
	return false
}

// Target returns the destination state of an operation, or "" for an unknown operation.
func Target(op Operation) model.JobStatus {
	return transitions[op].Target
}

// Operations returns all defined lifecycle operations. Primarily for
// exhaustive table tests.
func Operations() []Operation {
	return []Operation{OpAccept, OpCancel, OpStart, OpEnd, OpNotCall, OpReopen}
}
