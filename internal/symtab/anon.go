package symtab

import "github.com/pbaxter/sixasm/internal/source"

// anonEntry records one anonymous label definition: where it was defined and the address it
// currently resolves to.
type anonEntry struct {
	pos   source.Pos
	value int
}

// AnonLabels resolves the assembler's anonymous "+"/"-" labels, a mechanism kept entirely
// separate from the named symbol Table because anonymous labels are addressed by relative
// position ("the second '+' label after here") rather than by name. Grounded on AnonLabels.h/.cpp.
type AnonLabels struct {
	forward  []anonEntry
	backward []anonEntry
	changed  bool
}

// NewAnonLabels creates an empty anonymous-label set.
func NewAnonLabels() *AnonLabels {
	return &AnonLabels{}
}

// Define records an anonymous label of the given direction at pos with the given value. If a
// label at the same position was already recorded with a different value, Changed is set so the
// pass driver knows to run another pass.
func (a *AnonLabels) Define(pos source.Pos, forward bool, value int) {
	labels := &a.backward
	if forward {
		labels = &a.forward
	}

	for i := range *labels {
		if (*labels)[i].pos == pos {
			if (*labels)[i].value != value {
				a.changed = true
				(*labels)[i].value = value
			}

			return
		}
	}

	*labels = append(*labels, anonEntry{pos: pos, value: value})
	a.changed = true
}

// Find returns the value of the count'th anonymous label of the given direction relative to pos
// (the 1st "+" strictly after pos, the 2nd, and so on; symmetrically for "-" before pos), and
// whether such a label exists yet.
func (a *AnonLabels) Find(pos source.Pos, forward bool, count int) (int, bool) {
	if forward {
		found := 0

		for _, e := range a.forward {
			if e.pos.File != pos.File || e.pos.Line <= pos.Line {
				continue
			}

			found++
			if found == count {
				return e.value, true
			}
		}

		return 0, false
	}

	found := 0

	for i := len(a.backward) - 1; i >= 0; i-- {
		e := a.backward[i]
		if e.pos.File != pos.File || e.pos.Line >= pos.Line {
			continue
		}

		found++
		if found == count {
			return e.value, true
		}
	}

	return 0, false
}

// Changed reports whether any Define call has altered the set since the last Reset.
func (a *AnonLabels) Changed() bool { return a.changed }

// Reset clears the changed flag at the start of a new pass.
func (a *AnonLabels) Reset() { a.changed = false }
