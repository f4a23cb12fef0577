package modal

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/proof"
)

func accessNode(w1, w2 int) domain.NodeProps {
	return domain.NodeProps{World1: domain.WorldP(w1), World2: domain.WorldP(w2)}
}

// SerialRule (D's frame property): every world has at least one
// accessible world. Grounded directly on the original D implementation's
// Serial rule, which picks any world not yet the source of an access
// edge and adds an edge from it to a fresh world.
type SerialRule struct{}

func (SerialRule) Name() string    { return "Serial" }
func (SerialRule) Branching() bool { return false }
func (SerialRule) Ticks() bool     { return false }

func (r SerialRule) Applies(branch *proof.Branch) []proof.Target {
	hasOutgoing := make(map[int]bool)
	for _, pair := range branch.AccessPairs() {
		hasOutgoing[pair[0]] = true
	}
	for _, w := range branch.Worlds() {
		if !hasOutgoing[w] {
			return []proof.Target{{Branch: branch, World: w, HasWorld: true, Rule: r.Name()}}
		}
	}
	return nil
}

func (r SerialRule) Apply(target proof.Target) (proof.Adds, error) {
	w2 := target.Branch.NextWorld()
	return proof.Adds{{accessNode(target.World, w2)}}, nil
}

func (SerialRule) ExampleNodes() []domain.NodeProps {
	return []domain.NodeProps{accessNode(0, 1)}
}

// ReflexiveRule (T's frame property): every world accesses itself.
type ReflexiveRule struct{}

func (ReflexiveRule) Name() string    { return "Reflexive" }
func (ReflexiveRule) Branching() bool { return false }
func (ReflexiveRule) Ticks() bool     { return false }

func (r ReflexiveRule) Applies(branch *proof.Branch) []proof.Target {
	var targets []proof.Target
	for _, w := range branch.Worlds() {
		if !branch.HasAccess(w, w) {
			targets = append(targets, proof.Target{Branch: branch, World: w, HasWorld: true, Rule: r.Name()})
		}
	}
	return targets
}

func (r ReflexiveRule) Apply(target proof.Target) (proof.Adds, error) {
	return proof.Adds{{accessNode(target.World, target.World)}}, nil
}

func (ReflexiveRule) ExampleNodes() []domain.NodeProps {
	return []domain.NodeProps{accessNode(0, 0)}
}

// TransitiveRule (S4's frame property): w1 R w2 and w2 R w3 implies
// w1 R w3.
type TransitiveRule struct{}

func (TransitiveRule) Name() string    { return "Transitive" }
func (TransitiveRule) Branching() bool { return false }
func (TransitiveRule) Ticks() bool     { return false }

func (r TransitiveRule) Applies(branch *proof.Branch) []proof.Target {
	pairs := branch.AccessPairs()
	var targets []proof.Target
	for _, p1 := range pairs {
		for _, p2 := range pairs {
			if p1[1] != p2[0] {
				continue
			}
			if branch.HasAccess(p1[0], p2[1]) {
				continue
			}
			targets = append(targets, proof.Target{Branch: branch, World1: p1[0], World2: p2[1], Rule: r.Name()})
		}
	}
	return targets
}

func (r TransitiveRule) Apply(target proof.Target) (proof.Adds, error) {
	return proof.Adds{{accessNode(target.World1, target.World2)}}, nil
}

func (TransitiveRule) ExampleNodes() []domain.NodeProps {
	return []domain.NodeProps{accessNode(0, 1)}
}

// SymmetricRule (S5's frame property, alongside Reflexive/Transitive):
// w1 R w2 implies w2 R w1.
type SymmetricRule struct{}

func (SymmetricRule) Name() string    { return "Symmetric" }
func (SymmetricRule) Branching() bool { return false }
func (SymmetricRule) Ticks() bool     { return false }

func (r SymmetricRule) Applies(branch *proof.Branch) []proof.Target {
	var targets []proof.Target
	for _, pair := range branch.AccessPairs() {
		if branch.HasAccess(pair[1], pair[0]) {
			continue
		}
		targets = append(targets, proof.Target{Branch: branch, World1: pair[1], World2: pair[0], Rule: r.Name()})
	}
	return targets
}

func (r SymmetricRule) Apply(target proof.Target) (proof.Adds, error) {
	return proof.Adds{{accessNode(target.World1, target.World2)}}, nil
}

func (SymmetricRule) ExampleNodes() []domain.NodeProps {
	return []domain.NodeProps{accessNode(0, 1)}
}
