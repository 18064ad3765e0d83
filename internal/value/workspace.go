package value

// Workspace is the single caller-owned buffer described in spec §3: a
// bounded array used as two disjoint regions sharing one allocation.
// During compilation the output stack grows from index 0 upward and the
// operator stack grows from the high end downward; the invariant
// OutLen()+OpLen() <= cap(buf) is checked on every push. The same type
// is reused, reset, as the plain operand stack during evaluation.
type Workspace struct {
	buf    []Value
	outLen int
	opLen  int
}

// NewWorkspace allocates a Workspace with the given reserved capacity.
// The caller owns this allocation; the core never grows it.
func NewWorkspace(capacity int) *Workspace {
	return &Workspace{buf: make([]Value, capacity)}
}

// Cap returns the reserved capacity.
func (w *Workspace) Cap() int { return len(w.buf) }

// OutLen returns the number of entries on the output stack.
func (w *Workspace) OutLen() int { return w.outLen }

// OpLen returns the number of entries on the operator stack.
func (w *Workspace) OpLen() int { return w.opLen }

// Reset empties both regions without releasing the backing array.
func (w *Workspace) Reset() {
	w.outLen = 0
	w.opLen = 0
}

// PushOutput appends v to the output stack. It reports ok=false (out of
// memory) if doing so would violate OutLen()+OpLen() <= Cap().
func (w *Workspace) PushOutput(v Value) bool {
	if w.outLen+w.opLen >= len(w.buf) {
		return false
	}
	w.buf[w.outLen] = v
	w.outLen++
	return true
}

// Output returns the output-stack entries in push order. The returned
// slice aliases the Workspace's backing array and is only valid until
// the next mutating call.
func (w *Workspace) Output() []Value { return w.buf[:w.outLen] }

// TopOutput returns the entry at the top of the output stack.
func (w *Workspace) TopOutput() (Value, bool) {
	if w.outLen == 0 {
		return Value{}, false
	}
	return w.buf[w.outLen-1], true
}

// SetOutput overwrites the top n entries of the output stack starting at
// index outLen-n with replacement, used by the simplifier to collapse a
// folded function call into its literal result (spec §4.5).
func (w *Workspace) SetOutput(n int, replacement Value) {
	w.outLen -= n
	w.buf[w.outLen] = replacement
	w.outLen++
}

// PopOutput removes and returns the top of the output stack.
func (w *Workspace) PopOutput() (Value, bool) {
	if w.outLen == 0 {
		return Value{}, false
	}
	w.outLen--
	return w.buf[w.outLen], true
}

// Mark snapshots both stack lengths for the generic dispatcher's
// checkpoint/rollback (spec §4.3, §9 "must be implemented with explicit
// state snapshot, not exceptions").
func (w *Workspace) Mark() (outLen, opLen int) { return w.outLen, w.opLen }

// Restore resets both stack lengths to a previously taken Mark, discarding
// any entries pushed since.
func (w *Workspace) Restore(outLen, opLen int) {
	w.outLen = outLen
	w.opLen = opLen
}

// PushOperator pushes an operator, function, or '(' sentinel to the
// operator stack (which grows from the high end of buf downward).
func (w *Workspace) PushOperator(v Value) bool {
	if w.outLen+w.opLen >= len(w.buf) {
		return false
	}
	w.opLen++
	w.buf[len(w.buf)-w.opLen] = v
	return true
}

// TopOperator returns the entry at the top of the operator stack.
func (w *Workspace) TopOperator() (Value, bool) {
	if w.opLen == 0 {
		return Value{}, false
	}
	return w.buf[len(w.buf)-w.opLen], true
}

// PopOperator removes and returns the top of the operator stack.
func (w *Workspace) PopOperator() (Value, bool) {
	if w.opLen == 0 {
		return Value{}, false
	}
	v := w.buf[len(w.buf)-w.opLen]
	w.opLen--
	return v, true
}
