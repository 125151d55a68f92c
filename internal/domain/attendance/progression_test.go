package attendance

import (
	"errors"
	"testing"
)

func office(recorded ...EventKind) Progress {
	return progressOf(false, recorded...)
}

func field(recorded ...EventKind) Progress {
	return progressOf(true, recorded...)
}

func progressOf(isField bool, recorded ...EventKind) Progress {
	p := Progress{Field: isField}
	for _, k := range recorded {
		switch k {
		case EventCheckIn:
			p.HasCheckIn = true
		case EventFieldCheckIn:
			p.HasFieldCheckIn = true
		case EventFieldCheckOut:
			p.HasFieldCheckOut = true
		case EventCheckOut:
			p.HasCheckOut = true
		}
	}
	return p
}

func TestNextAction_Office(t *testing.T) {
	cases := []struct {
		name string
		p    Progress
		want EventKind
		ok   bool
	}{
		{"fresh day", office(), EventCheckIn, true},
		{"after check-in", office(EventCheckIn), EventCheckOut, true},
		{"after check-out", office(EventCheckIn, EventCheckOut), "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := NextAction(c.p)
			if ok != c.ok || got != c.want {
				t.Errorf("NextAction = (%q, %v), want (%q, %v)", got, ok, c.want, c.ok)
			}
		})
	}
}

func TestNextAction_Field(t *testing.T) {
	cases := []struct {
		name string
		p    Progress
		want EventKind
		ok   bool
	}{
		{"fresh day", field(), EventCheckIn, true},
		{"after check-in", field(EventCheckIn), EventFieldCheckIn, true},
		{"after field check-in", field(EventCheckIn, EventFieldCheckIn), EventFieldCheckOut, true},
		{"after field check-out", field(EventCheckIn, EventFieldCheckIn, EventFieldCheckOut), EventCheckOut, true},
		{"all four", field(EventCheckIn, EventFieldCheckIn, EventFieldCheckOut, EventCheckOut), "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := NextAction(c.p)
			if ok != c.ok || got != c.want {
				t.Errorf("NextAction = (%q, %v), want (%q, %v)", got, ok, c.want, c.ok)
			}
		})
	}
}

func TestNextAction_LeaveIsTerminal(t *testing.T) {
	p := office()
	p.HasLeave = true

	if _, ok := NextAction(p); ok {
		t.Error("no check action may be offered on a leave day")
	}
	if got := StateOf(p); got != StateOnLeave {
		t.Errorf("StateOf = %q, want %q", got, StateOnLeave)
	}
}

func TestNextAction_EarlyLeaveDoesNotBlockCheckOut(t *testing.T) {
	p := office(EventCheckIn)
	p.HasEarlyLeave = true

	got, ok := NextAction(p)
	if !ok || got != EventCheckOut {
		t.Errorf("NextAction = (%q, %v), want (%q, true)", got, ok, EventCheckOut)
	}
	if err := ValidateEvent(p, EventCheckOut); err != nil {
		t.Errorf("ValidateEvent(CheckOut) = %v, want nil", err)
	}
}

func TestStateOf(t *testing.T) {
	onLeave := office()
	onLeave.HasLeave = true
	onEarlyLeave := field(EventCheckIn)
	onEarlyLeave.HasEarlyLeave = true
	earlyLeaveDone := office(EventCheckIn, EventCheckOut)
	earlyLeaveDone.HasEarlyLeave = true

	cases := []struct {
		name string
		p    Progress
		want DayState
	}{
		{"office fresh", office(), StateNotStarted},
		{"office awaiting check-out", office(EventCheckIn), StateAwaitingCheckOut},
		{"office done", office(EventCheckIn, EventCheckOut), StateDone},
		{"field awaiting field check-in", field(EventCheckIn), StateAwaitingFieldCheckIn},
		{"field awaiting field check-out", field(EventCheckIn, EventFieldCheckIn), StateAwaitingFieldCheckOut},
		{"field awaiting check-out", field(EventCheckIn, EventFieldCheckIn, EventFieldCheckOut), StateAwaitingCheckOut},
		{"field done", field(EventCheckIn, EventFieldCheckIn, EventFieldCheckOut, EventCheckOut), StateDone},
		{"on leave", onLeave, StateOnLeave},
		{"on early leave", onEarlyLeave, StateOnEarlyLeave},
		{"early leave then checked out", earlyLeaveDone, StateDone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := StateOf(c.p); got != c.want {
				t.Errorf("StateOf = %q, want %q", got, c.want)
			}
		})
	}
}

func TestValidateEvent_DuplicateKind(t *testing.T) {
	if err := ValidateEvent(office(EventCheckIn), EventCheckIn); !errors.Is(err, ErrAlreadyRecorded) {
		t.Errorf("duplicate CheckIn = %v, want ErrAlreadyRecorded", err)
	}

	done := field(EventCheckIn, EventFieldCheckIn, EventFieldCheckOut, EventCheckOut)
	if err := ValidateEvent(done, EventCheckOut); !errors.Is(err, ErrAlreadyRecorded) {
		t.Errorf("duplicate CheckOut = %v, want ErrAlreadyRecorded", err)
	}
}

func TestValidateEvent_OutOfSequence(t *testing.T) {
	cases := []struct {
		name string
		p    Progress
		kind EventKind
	}{
		{"check-out before check-in", office(), EventCheckOut},
		{"field check-out skipping field check-in", field(EventCheckIn), EventFieldCheckOut},
		{"field check-in before check-in", field(), EventFieldCheckIn},
		{"field leg for office user", office(EventCheckIn), EventFieldCheckIn},
		{"check-out before field leg complete", field(EventCheckIn, EventFieldCheckIn), EventCheckOut},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := ValidateEvent(c.p, c.kind); !errors.Is(err, ErrOutOfSequence) {
				t.Errorf("ValidateEvent(%q) = %v, want ErrOutOfSequence", c.kind, err)
			}
		})
	}
}

func TestValidateEvent_RejectionKeepsState(t *testing.T) {
	// A rejected out-of-order attempt must leave the derived state unchanged.
	p := field(EventCheckIn)

	if err := ValidateEvent(p, EventFieldCheckOut); !errors.Is(err, ErrOutOfSequence) {
		t.Fatalf("ValidateEvent = %v, want ErrOutOfSequence", err)
	}
	if got := StateOf(p); got != StateAwaitingFieldCheckIn {
		t.Errorf("StateOf after rejection = %q, want %q", got, StateAwaitingFieldCheckIn)
	}
}

func TestValidateEvent_OnLeave(t *testing.T) {
	p := office()
	p.HasLeave = true

	for _, k := range []EventKind{EventCheckIn, EventFieldCheckIn, EventFieldCheckOut, EventCheckOut} {
		if err := ValidateEvent(p, k); !errors.Is(err, ErrDayOnLeave) {
			t.Errorf("ValidateEvent(%q) on leave day = %v, want ErrDayOnLeave", k, err)
		}
	}
}

func TestValidateEvent_FullFieldSequence(t *testing.T) {
	// Walk the only valid order; at every step exactly one kind is accepted.
	order := []EventKind{EventCheckIn, EventFieldCheckIn, EventFieldCheckOut, EventCheckOut}

	p := field()
	for i, k := range order {
		for _, other := range order {
			err := ValidateEvent(p, other)
			if other == k {
				if err != nil {
					t.Fatalf("step %d: ValidateEvent(%q) = %v, want nil", i, other, err)
				}
			} else if err == nil {
				t.Fatalf("step %d: ValidateEvent(%q) accepted, want rejection", i, other)
			}
		}
		p = progressOf(true, order[:i+1]...)
	}

	if _, ok := NextAction(p); ok {
		t.Error("completed day must offer no next action")
	}
}

func TestValidateLeave(t *testing.T) {
	if err := ValidateLeave(office()); err != nil {
		t.Errorf("leave on empty day = %v, want nil", err)
	}

	if err := ValidateLeave(office(EventCheckIn)); !errors.Is(err, ErrLeaveAfterCheckIn) {
		t.Errorf("leave after check-in = %v, want ErrLeaveAfterCheckIn", err)
	}

	p := office()
	p.HasLeave = true
	if err := ValidateLeave(p); !errors.Is(err, ErrAlreadyRecorded) {
		t.Errorf("second leave = %v, want ErrAlreadyRecorded", err)
	}
}

func TestValidateEarlyLeave(t *testing.T) {
	if err := ValidateEarlyLeave(office()); err != nil {
		t.Errorf("early leave on empty day = %v, want nil", err)
	}
	if err := ValidateEarlyLeave(office(EventCheckIn)); err != nil {
		t.Errorf("early leave after check-in = %v, want nil", err)
	}

	p := office()
	p.HasEarlyLeave = true
	if err := ValidateEarlyLeave(p); !errors.Is(err, ErrAlreadyRecorded) {
		t.Errorf("second early leave = %v, want ErrAlreadyRecorded", err)
	}

	p = office()
	p.HasLeave = true
	if err := ValidateEarlyLeave(p); !errors.Is(err, ErrDayOnLeave) {
		t.Errorf("early leave on leave day = %v, want ErrDayOnLeave", err)
	}
}

func TestSnapshotProgress(t *testing.T) {
	snap := &DaySnapshot{
		Day: AttendanceDay{ID: "day-1", UserID: "user-1"},
		Events: []CheckEvent{
			{Kind: EventCheckIn},
			{Kind: EventFieldCheckIn},
		},
	}

	p := snap.Progress(true)
	if !p.HasCheckIn || !p.HasFieldCheckIn || p.HasFieldCheckOut || p.HasCheckOut {
		t.Errorf("unexpected progress from snapshot: %+v", p)
	}
	if got := StateOf(p); got != StateAwaitingFieldCheckOut {
		t.Errorf("StateOf = %q, want %q", got, StateAwaitingFieldCheckOut)
	}

	var nilSnap *DaySnapshot
	if got := StateOf(nilSnap.Progress(false)); got != StateNotStarted {
		t.Errorf("StateOf(nil snapshot) = %q, want %q", got, StateNotStarted)
	}
}
