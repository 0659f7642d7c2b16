package tracker

// Ledger holds the checked state of every completion key a tracker has ever
// touched. Absent keys read as false. The ledger only shrinks on a full reset.
type Ledger map[string]bool

// Toggle flips the state at key and returns the resulting value.
func (l Ledger) Toggle(key string) bool {
	next := !l[key]
	l[key] = next
	return next
}

// IsSet reports whether key is currently checked.
func (l Ledger) IsSet(key string) bool {
	return l[key]
}

// CountChecked returns how many of the given keys are currently checked.
func (l Ledger) CountChecked(keys []string) int {
	n := 0
	for _, k := range keys {
		if l[k] {
			n++
		}
	}
	return n
}

// Clone returns a shallow copy, used for snapshots handed to callers.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
