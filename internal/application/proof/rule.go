package proof

import "github.com/alethic/tableaux/internal/domain"

// Rule is a declarative tableau rule: it finds targets on a branch and
// describes what to add when applied (section 4.3). Rules are stateless
// except for the per-branch helper caches reached through the Branch
// argument itself (section 4.4) — there is no separate helper-object
// wiring step, which simplifies the "attach helpers to each rule
// instance" initialization sequence of section 4.5 into "call the
// branch", since every helper cache is already keyed by branch and rule
// name.
type Rule interface {
	// Name identifies the rule for AppliedNodes/QuantifierInstantiations
	// keys, history entries and target.Rule.
	Name() string

	// Branching reports whether this rule ever splits a branch when
	// applied. Used as the static rank-optimization score of section
	// 4.5 ("prefer non-branching over branching rules").
	Branching() bool

	// Ticks reports whether the source node should be ticked once this
	// rule has been applied to it.
	Ticks() bool

	// Applies returns every current target on branch. Implementations
	// filter on branch.Unticked() and branch.HasApplied themselves; this
	// folds section 4.3's two alternative shapes (applies(branch) vs.
	// applies_to_node(node, branch)) into one, since a per-node rule is
	// just a rule whose Applies loops over branch.Unticked().
	Applies(branch *Branch) []Target

	// Apply returns the adds description for target.
	Apply(target Target) (Adds, error)

	// ExampleNodes returns a minimal node bundle for documentation use
	// (section 4.3).
	ExampleNodes() []domain.NodeProps
}

// ClosureRule detects branch closure. Applies returns a target and true
// the moment branch should close; application appends a flag="closure"
// sentinel node (section 4.3).
type ClosureRule interface {
	Name() string
	Applies(branch *Branch) (Target, bool)
}
