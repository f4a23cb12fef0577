package manyvalued

import (
	"github.com/alethic/tableaux/internal/domain"

	"github.com/alethic/tableaux/internal/application/proof"
)

// DesignationClosure closes a branch the moment some sentence appears
// both designated and undesignated: the two statuses partition the
// logic's value set (section 4.6), so holding both is contradictory in
// every designation-based logic, regardless of how many truth values it
// has.
type DesignationClosure struct{}

func (DesignationClosure) Name() string { return "DesignationClosure" }

func (DesignationClosure) Applies(branch *proof.Branch) (proof.Target, bool) {
	f := false
	for _, n := range branch.Nodes() {
		if !n.HasSentence() || n.Designated == nil || !*n.Designated {
			continue
		}
		if branch.HasSentence(n.Sentence, &f) {
			return proof.Target{Branch: branch, Sentence: n.Sentence}, true
		}
	}
	return proof.Target{}, false
}

// GlutClosure additionally closes a branch when a sentence and its
// negation are both designated, forbidding the "Both" value (section
// 4.6: K3 and CPL exclude it, FDE and LP permit it).
type GlutClosure struct{}

func (GlutClosure) Name() string { return "GlutClosure" }

func (GlutClosure) Applies(branch *proof.Branch) (proof.Target, bool) {
	t := true
	for _, n := range branch.Nodes() {
		if !n.HasSentence() || n.Designated == nil || !*n.Designated {
			continue
		}
		neg := domain.Negate(n.Sentence)
		if branch.HasSentence(neg, &t) {
			return proof.Target{Branch: branch, Sentence: n.Sentence}, true
		}
	}
	return proof.Target{}, false
}

// GapClosure additionally closes a branch when a sentence and its
// negation are both undesignated, forbidding the "Neither" value
// (section 4.6: K3 and FDE permit it, LP and CPL exclude it).
type GapClosure struct{}

func (GapClosure) Name() string { return "GapClosure" }

func (GapClosure) Applies(branch *proof.Branch) (proof.Target, bool) {
	f := false
	for _, n := range branch.Nodes() {
		if !n.HasSentence() || n.Designated == nil || *n.Designated {
			continue
		}
		neg := domain.Negate(n.Sentence)
		if branch.HasSentence(neg, &f) {
			return proof.Target{Branch: branch, Sentence: n.Sentence}, true
		}
	}
	return proof.Target{}, false
}
