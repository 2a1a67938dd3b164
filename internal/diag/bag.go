package diag

// Bag collects the diagnostics of a single run in insertion order. It is
// never shared between independent applications of the transformation.
type Bag struct {
	items []Diagnostic
}

func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether at least one error-severity diagnostic was
// collected.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}

	return false
}

// Items returns the collected diagnostics. The returned slice aliases the
// bag's storage and must not be modified.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends all diagnostics of other, preserving both insertion orders.
func (b *Bag) Merge(other *Bag) {
	b.items = append(b.items, other.items...)
}
