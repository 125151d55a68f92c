package attendance

// Progress is the full input to the progression rules: which check events are
// already recorded for the day, whether a leave or early-leave exists, and
// whether the user's department performs the field leg.
//
// The same function runs on every submission server-side; clients may mirror
// it for UI hints, but the server never trusts a client-sent action kind.
type Progress struct {
	Field bool

	HasCheckIn       bool
	HasFieldCheckIn  bool
	HasFieldCheckOut bool
	HasCheckOut      bool

	HasLeave      bool
	HasEarlyLeave bool
}

// DayState is the derived state of an attendance day. It is never stored.
type DayState string

const (
	StateNotStarted            DayState = "NotStarted"
	StateAwaitingFieldCheckIn  DayState = "AwaitingFieldCheckIn"
	StateAwaitingFieldCheckOut DayState = "AwaitingFieldCheckOut"
	StateAwaitingCheckOut      DayState = "AwaitingCheckOut"
	StateDone                  DayState = "Done"
	StateOnLeave               DayState = "OnLeave"
	StateOnEarlyLeave          DayState = "OnEarlyLeave"
)

// NextAction returns the only check event kind that may be recorded next, or
// false when no check action is permitted (leave recorded, or day done).
//
// An early-leave does not block the remaining progression: a user who leaves
// early may still check out, so the sequence continues underneath it.
func NextAction(p Progress) (EventKind, bool) {
	if p.HasLeave {
		return "", false
	}

	if !p.HasCheckIn {
		return EventCheckIn, true
	}

	if p.Field {
		if !p.HasFieldCheckIn {
			return EventFieldCheckIn, true
		}
		if !p.HasFieldCheckOut {
			return EventFieldCheckOut, true
		}
	}

	if !p.HasCheckOut {
		return EventCheckOut, true
	}

	return "", false
}

// StateOf derives the display state for a day. A leave day is always OnLeave;
// an early-leave only labels a day that is still in progress, since the user
// may still check out and close it. NextAction stays authoritative for what
// is allowed.
func StateOf(p Progress) DayState {
	if p.HasLeave {
		return StateOnLeave
	}

	next, ok := NextAction(p)
	if !ok {
		return StateDone
	}

	if p.HasEarlyLeave {
		return StateOnEarlyLeave
	}

	switch next {
	case EventCheckIn:
		return StateNotStarted
	case EventFieldCheckIn:
		return StateAwaitingFieldCheckIn
	case EventFieldCheckOut:
		return StateAwaitingFieldCheckOut
	default:
		return StateAwaitingCheckOut
	}
}

// recorded reports whether kind k is already present in p.
func (p Progress) recorded(k EventKind) bool {
	switch k {
	case EventCheckIn:
		return p.HasCheckIn
	case EventFieldCheckIn:
		return p.HasFieldCheckIn
	case EventFieldCheckOut:
		return p.HasFieldCheckOut
	case EventCheckOut:
		return p.HasCheckOut
	}
	return false
}

// ValidateEvent is the transition guard: an event of kind k may be recorded
// only when k is exactly the next permitted action.
func ValidateEvent(p Progress, k EventKind) error {
	if p.HasLeave {
		return ErrDayOnLeave
	}
	if p.recorded(k) {
		return ErrAlreadyRecorded
	}

	next, ok := NextAction(p)
	if !ok || next != k {
		return ErrOutOfSequence
	}

	return nil
}

// ValidateLeave guards whole-day leave: only allowed while nothing else has
// been recorded for the day.
func ValidateLeave(p Progress) error {
	if p.HasLeave {
		return ErrAlreadyRecorded
	}
	if p.HasCheckIn || p.HasFieldCheckIn || p.HasFieldCheckOut || p.HasCheckOut {
		return ErrLeaveAfterCheckIn
	}
	return nil
}

// ValidateEarlyLeave guards the mid-day exception: at most one per day, and
// never on a day already marked as leave. Any department may submit one.
func ValidateEarlyLeave(p Progress) error {
	if p.HasLeave {
		return ErrDayOnLeave
	}
	if p.HasEarlyLeave {
		return ErrAlreadyRecorded
	}
	return nil
}
