// Package feedback tracks busy state for interactive targets (submit
// buttons, forms) so a client can render the right label and disable the
// trigger while an operation is in flight.
package feedback

type targetState struct {
	busy     bool
	label    string
	saved    string
	hasSaved bool
}

// Tracker keeps per-target busy state. It is not safe for concurrent use;
// each checkout session owns its own Tracker.
type Tracker struct {
	targets map[string]*targetState
}

func NewTracker() *Tracker {
	return &Tracker{targets: make(map[string]*targetState)}
}

// ShowBusy marks the target busy with the given label, saving the currently
// visible label for a later Restore. A repeated ShowBusy keeps the
// originally saved label rather than overwriting it with a busy one.
func (t *Tracker) ShowBusy(target, label string) {
	st := t.targets[target]
	if st == nil {
		st = &targetState{}
		t.targets[target] = st
	}
	if !st.busy {
		st.saved = st.label
		st.hasSaved = st.label != ""
	}
	st.busy = true
	st.label = label
}

// Restore re-enables the target with the saved label, or the fallback when
// nothing was saved. Restoring a target that was never busy is a no-op
// besides setting the fallback label.
func (t *Tracker) Restore(target, fallback string) {
	st := t.targets[target]
	if st == nil {
		st = &targetState{}
		t.targets[target] = st
	}
	st.busy = false
	if st.hasSaved {
		st.label = st.saved
	} else {
		st.label = fallback
	}
	st.saved = ""
	st.hasSaved = false
}

func (t *Tracker) IsBusy(target string) bool {
	if st := t.targets[target]; st != nil {
		return st.busy
	}
	return false
}

func (t *Tracker) Label(target string) string {
	if st := t.targets[target]; st != nil {
		return st.label
	}
	return ""
}
