package service

// Outcome classifies how an operation ended. Services return outcomes and
// structured detail; rendering them into user-facing text is the command
// layer's job.
type Outcome int

const (
	// OutcomeOK means the operation succeeded and mutated state.
	OutcomeOK Outcome = iota
	// OutcomeAlreadyInState means the requested state already held; nothing
	// changed and nothing failed.
	OutcomeAlreadyInState
	// OutcomeForbidden means the requester lacks the required ownership or
	// admin right. No mutation was attempted.
	OutcomeForbidden
	// OutcomeConflict means a racing operation won first, e.g. a claim on a
	// channel another member claimed concurrently.
	OutcomeConflict
	// OutcomeNotFound means the referenced channel, template or member is
	// absent or not tracked.
	OutcomeNotFound
	// OutcomeExternalFailure means a platform or store call failed; the
	// accompanying error carries detail for the log.
	OutcomeExternalFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeAlreadyInState:
		return "already-in-state"
	case OutcomeForbidden:
		return "forbidden"
	case OutcomeConflict:
		return "conflict"
	case OutcomeNotFound:
		return "not-found"
	case OutcomeExternalFailure:
		return "external-failure"
	}
	return "unknown"
}
