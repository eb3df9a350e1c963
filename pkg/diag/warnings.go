package diag

// Warnings is an ordered collection of non-fatal Msg values accumulated over
// the course of a single transform call. Order matters: callers display them
// in the sequence they were raised, not grouped by category.
type Warnings struct {
	msgs []Msg
}

// NewWarnings returns an empty Warnings collection.
func NewWarnings() *Warnings {
	return &Warnings{}
}

// Push appends a diagnostic.
func (w *Warnings) Push(m Msg) {
	w.msgs = append(w.msgs, m)
}

// Extend appends every message from other, in order.
func (w *Warnings) Extend(other *Warnings) {
	if other == nil {
		return
	}
	w.msgs = append(w.msgs, other.msgs...)
}

// Len reports how many diagnostics have been collected.
func (w *Warnings) Len() int {
	if w == nil {
		return 0
	}
	return len(w.msgs)
}

// IsEmpty reports whether no diagnostics were raised.
func (w *Warnings) IsEmpty() bool {
	return w.Len() == 0
}

// Messages returns the collected diagnostics in raise order. The returned
// slice is owned by the caller; it is a defensive copy.
func (w *Warnings) Messages() []Msg {
	if w == nil {
		return nil
	}
	out := make([]Msg, len(w.msgs))
	copy(out, w.msgs)
	return out
}

// Strings renders every diagnostic via Msg.Error, for logging.
func (w *Warnings) Strings() []string {
	if w == nil {
		return nil
	}
	out := make([]string, len(w.msgs))
	for i, m := range w.msgs {
		out[i] = m.Error()
	}
	return out
}
