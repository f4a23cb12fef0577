package proof

import "github.com/alethic/tableaux/internal/domain"

// Model is the branch-reader contract of section 4.6. Each logic
// supplies its own implementation carrying whatever value lattice,
// frame, or domain-of-constants representation it needs. Each concrete
// model also has a ValueOf(s) method, a total function for any sentence
// given the model's universe; it returns the logic's own value type
// (manyvalued.Value or modal.Value), so it is called on the concrete
// model rather than through this interface.
type Model interface {
	// ReadBranch populates the model from assertions on an open branch.
	ReadBranch(branch *Branch)

	// IsCountermodelTo reports whether the model maps every premise to a
	// designated value and the conclusion to a non-designated value.
	IsCountermodelTo(arg domain.Argument) bool
}
