package experiment

import "github.com/ignitiondata/respecth/quantity"

// Component is one species entry of an initial composition. Amount is
// the mole/mass fraction exactly as written in the source document;
// downstream consumers may need the original formatting, so it is
// never parsed to a float here.
type Component struct {
	Species string `yaml:"species"`
	Amount  string `yaml:"amount"`
}

// Composition is an initial mixture composition as an ordered list of
// species entries, preserving document order.
type Composition []Component

// Set adds or replaces the entry for species. A duplicate species
// keeps its original position; the last amount seen wins.
func (c Composition) Set(species, amount string) Composition {
	for i := range c {
		if c[i].Species == species {
			c[i].Amount = amount
			return c
		}
	}
	return append(c, Component{Species: species, Amount: amount})
}

// Get returns the amount string for species, and whether it is present.
func (c Composition) Get(species string) (string, bool) {
	for i := range c {
		if c[i].Species == species {
			return c[i].Amount, true
		}
	}
	return "", false
}

// Equal reports whether the two compositions hold the same species and
// amounts in the same order.
func (c Composition) Equal(o Composition) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

// Properties is the flat property mapping threaded through the
// extraction stages. One field per known property key; a nil quantity
// pointer means the document does not carry that property. Stages only
// fill fields, never clear them.
type Properties struct {
	// Kind is set by Classify.
	Kind Kind

	// Set by CommonProperties.
	Pressure     *quantity.Quantity
	PressureRise *quantity.Quantity
	Composition  Composition

	// Set by IgnitionDescriptor.
	IgnitionTarget      string
	IgnitionType        string
	IgnitionTargetValue *quantity.Quantity

	// Set by DataGroups. Pressure is shared with CommonProperties: a
	// data group pressure column fills the same field for documents
	// that state pressure per point instead of as a common property.
	Temperature   *quantity.Quantity
	IgnitionDelay *quantity.Quantity
	Time          *quantity.Quantity
	Volume        *quantity.Quantity
}
