package schema

// Set is the ordered collection of registries known to the parser together
// with the cutoff patterns they share.
type Set struct {
	Registries []*Registry
	Cutoff     CutoffSet
}

// Default returns the built-in registries in classification priority order:
// checking/savings first, then credit card.
func Default() *Set {
	return &Set{
		Registries: []*Registry{Account(), CreditCard()},
		Cutoff:     DefaultCutoff(),
	}
}

// Lookup returns the registry with the given type.
func (s *Set) Lookup(docType string) (*Registry, bool) {
	for _, r := range s.Registries {
		if r.Type == docType {
			return r, true
		}
	}
	return nil, false
}
